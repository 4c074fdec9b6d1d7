package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kit678/blaide-bolt/pkg/email"
	"github.com/kit678/blaide-bolt/pkg/logger"
)

const (
	tagAdminNotification = "contact-admin"
	tagConfirmation      = "contact-confirmation"

	confirmationSubject = "Thank you for contacting Blaide"
)

// Relay sends the two emails derived from one contact submission: the
// admin notification first, then a best-effort confirmation to the
// submitter. The confirmation is only attempted once the notification has
// been accepted by the provider; a confirmation without the admin being
// notified would be misleading.
type Relay struct {
	sender     email.EmailSender
	adminEmail string
	log        *slog.Logger
}

// NewRelay creates a Relay. A nil sender is allowed and makes every
// dispatch fail with ErrConfiguration, which lets the rest of the site run
// when the email provider credential is absent.
func NewRelay(sender email.EmailSender, adminEmail string, log *slog.Logger) *Relay {
	return &Relay{sender: sender, adminEmail: adminEmail, log: log}
}

// Dispatch sends the admin notification and, if that succeeds, the
// confirmation. It returns the provider-assigned identifier of the admin
// notification. A confirmation failure is logged and does not affect the
// result. No retries: re-invoking with the same input sends duplicate emails.
func (r *Relay) Dispatch(ctx context.Context, in SubmitInput) (string, error) {
	if r.sender == nil {
		return "", errors.Join(ErrConfiguration, errors.New("email sender is not configured"))
	}

	adminBody, err := renderAdminNotification(in)
	if err != nil {
		return "", &dispatchError{reason: err}
	}

	adminID, err := r.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   r.adminEmail,
		ReplyTo:  in.Email,
		Subject:  "New Contact Form Submission: " + in.subjectOrDefault(),
		BodyHTML: adminBody,
		Tag:      tagAdminNotification,
	})
	if err != nil {
		return "", &dispatchError{reason: err}
	}

	confirmationBody, err := renderConfirmation(in.Name)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to render confirmation email", logger.Error(err))
		return adminID, nil
	}

	if _, err := r.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   in.Email,
		Subject:  confirmationSubject,
		BodyHTML: confirmationBody,
		Tag:      tagConfirmation,
	}); err != nil {
		// The admin has been notified and the message is stored; losing the
		// acknowledgement copy does not fail the submission.
		r.log.ErrorContext(ctx, "Failed to send confirmation email",
			logger.Error(err), logger.Recipient(in.Email))
	}

	return adminID, nil
}
