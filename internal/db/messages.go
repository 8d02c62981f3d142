package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// inserts msg and fills in its ID and CreatedAt.
func (s *pgStore) CreateContactMessage(msg *model.ContactMessage) error {
	const q = `
	INSERT INTO contact_messages (name, email, phone, subject, message, attachment_url, remote_addr, created_at)
	VALUES (:name, :email, :phone, :subject, :message, :attachment_url, :remote_addr, now())
	RETURNING id, created_at;`

	rows, err := s.db.NamedQuery(q, msg)
	if err != nil {
		log.Error().Err(err).Msg("CreateContactMessage failed")
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return errors.New("insert returned no row")
	}
	return rows.Scan(&msg.ID, &msg.CreatedAt)
}

// newest first
func (s *pgStore) ListContactMessages(limit, offset int) ([]model.ContactMessage, error) {
	out := []model.ContactMessage{}
	const q = `
	SELECT id, name, email, phone, subject, message, attachment_url, remote_addr, created_at
	  FROM contact_messages
	 ORDER BY created_at DESC, id DESC
	 LIMIT $1 OFFSET $2;`
	if err := s.db.Select(&out, q, limit, offset); err != nil {
		log.Error().Err(err).Msg("ListContactMessages failed")
		return nil, err
	}
	return out, nil
}

// returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetContactMessage(id int) (*model.ContactMessage, error) {
	var m model.ContactMessage
	const q = `
	SELECT id, name, email, phone, subject, message, attachment_url, remote_addr, created_at
	  FROM contact_messages
	 WHERE id = $1;`
	if err := s.db.Get(&m, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Int("message_id", id).Msg("GetContactMessage failed")
		return nil, err
	}
	return &m, nil
}
