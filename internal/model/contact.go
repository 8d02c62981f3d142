package model

import "time"

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ID            int       `db:"id"             json:"id"`
	Name          string    `db:"name"           json:"name"`
	Email         string    `db:"email"          json:"email"`
	Phone         *string   `db:"phone"          json:"phone,omitempty"`
	Subject       string    `db:"subject"        json:"subject"`
	Message       string    `db:"message"        json:"message"`
	AttachmentURL *string   `db:"attachment_url" json:"attachment_url,omitempty"`
	RemoteAddr    string    `db:"remote_addr"    json:"remote_addr"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
}
