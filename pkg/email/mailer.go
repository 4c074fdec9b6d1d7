package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender represents an interface for sending emails.
// SendEmail returns the provider-assigned message identifier on success.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) (string, error)
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`            // Email address of the recipient
	ReplyTo  string `json:"reply_to,omitempty"` // Optional reply-to address; sender identity is used when empty
	Subject  string `json:"subject"`            // Subject of the email
	BodyHTML string `json:"body_html"`          // HTML body of the email
	Tag      string `json:"tag,omitempty"`      // Optional
}

// emailRegex is a permissive shape check (local@domain.tld). It does not
// validate deliverability.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks that the parameters describe a sendable email.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.ReplyTo != "" && !emailRegex.MatchString(p.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// ValidAddress reports whether the given string matches the permissive
// email shape used across the service.
func ValidAddress(addr string) bool {
	return emailRegex.MatchString(addr)
}
