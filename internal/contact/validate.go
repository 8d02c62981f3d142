package contact

import (
	"regexp"
	"strings"
)

const (
	MsgMissingFields = "Please fill in all required fields."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgSent          = "Thank you for your message. We will get back to you soon."
	MsgFailed        = "Something went wrong. Please try again."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is the contact form as posted.
type Submission struct {
	Name    string `json:"name"    form:"name"`
	Email   string `json:"email"   form:"email"`
	Phone   string `json:"phone"   form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ValidationError carries the user-facing message for a rejected submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate trims the fields in place and checks them. Phone is optional.
func (s *Submission) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)

	if s.Name == "" || s.Email == "" || s.Subject == "" || s.Message == "" {
		return &ValidationError{Message: MsgMissingFields}
	}
	if !emailPattern.MatchString(s.Email) {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	return nil
}
