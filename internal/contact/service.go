package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// Repository persists accepted messages.
type Repository interface {
	CreateContactMessage(msg *model.ContactMessage) error
}

// AttachmentStore saves an uploaded file and returns where it can be fetched.
type AttachmentStore interface {
	SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error)
}

// Notifier tells staff that a message arrived.
type Notifier interface {
	Publish(payload []byte) error
}

// Notification is the payload published for each accepted message.
type Notification struct {
	Type      string `json:"type"`
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Timestamp int64  `json:"timestamp"`
}

type Service struct {
	repo        Repository
	attachments AttachmentStore
	notifier    Notifier
}

// NewService wires the contact flow. attachments and notifier may be nil.
func NewService(repo Repository, attachments AttachmentStore, notifier Notifier) *Service {
	return &Service{repo: repo, attachments: attachments, notifier: notifier}
}

// Submit validates, stores, and announces a message. A *ValidationError is
// returned for bad input; any other error means the message was not saved.
func (s *Service) Submit(ctx context.Context, sub Submission, attachment *multipart.FileHeader, remoteAddr string) (*model.ContactMessage, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		Name:       sub.Name,
		Email:      sub.Email,
		Subject:    sub.Subject,
		Message:    sub.Message,
		RemoteAddr: remoteAddr,
	}
	if sub.Phone != "" {
		msg.Phone = &sub.Phone
	}

	if attachment != nil {
		if s.attachments == nil {
			return nil, fmt.Errorf("attachments are not enabled")
		}
		url, err := s.attachments.SaveFile(attachment, attachment.Filename)
		if err != nil {
			return nil, fmt.Errorf("save attachment: %w", err)
		}
		msg.AttachmentURL = &url
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateContactMessage(msg); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	log.Info().Int("id", msg.ID).Str("subject", msg.Subject).Msg("contact message received")
	s.notify(msg)
	return msg, nil
}

func (s *Service) notify(msg *model.ContactMessage) {
	if s.notifier == nil {
		return
	}
	payload, err := json.Marshal(Notification{
		Type:      "contact_message",
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode contact notification")
		return
	}
	if err := s.notifier.Publish(payload); err != nil {
		log.Warn().Err(err).Int("id", msg.ID).Msg("failed to publish contact notification")
	}
}
