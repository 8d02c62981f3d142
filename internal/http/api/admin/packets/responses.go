package packets

// RESPONSES FOR /api/admin/messages/*

// MessageResponse mirrors model.ContactMessage but flattens time to RFC3339
type MessageResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	Subject       string  `json:"subject"`
	Message       string  `json:"message"`
	AttachmentURL *string `json:"attachment_url"`
	RemoteAddr    string  `json:"remote_addr"`
	CreatedAt     string  `json:"created_at"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
