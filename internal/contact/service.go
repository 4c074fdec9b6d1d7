package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kit678/blaide-bolt/pkg/logger"
	"github.com/kit678/blaide-bolt/pkg/validator"
)

// SubmitInput is the raw contact form payload. Name, Email, and Message are
// required; the rest is optional. Subject is used only for the notification
// email and is not persisted.
type SubmitInput struct {
	Name     string
	Email    string
	Phone    string
	Division string
	Subject  string
	Message  string
}

func (in SubmitInput) subjectOrDefault() string {
	if in.Subject != "" {
		return in.Subject
	}
	return "General Inquiry"
}

// SubmitResult reports a successful submission: the stored document ID and
// the provider identifier of the admin notification email.
type SubmitResult struct {
	MessageID  string
	ProviderID string
}

// Service implements the contact submission pipeline:
// validate, persist, then dispatch email. Storage is the durability
// boundary - email is only attempted once the write has succeeded, and a
// storage failure aborts the whole operation.
type Service struct {
	store MessageStore
	relay *Relay
	log   *slog.Logger
}

func NewService(store MessageStore, relay *Relay, log *slog.Logger) *Service {
	return &Service{store: store, relay: relay, log: log}
}

// Submit runs one submission through the pipeline. The three stages are
// strictly sequenced: a validation failure performs no write and no send,
// and a persistence failure performs no send. There are no retries; the
// user resubmitting the form is the retry mechanism.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	if err := s.validate(in); err != nil {
		return SubmitResult{}, err
	}

	msg, err := s.store.Insert(ctx, Message{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Division: in.Division,
		Message:  in.Message,
	})
	if err != nil {
		if errors.Is(err, ErrPersistence) {
			return SubmitResult{}, err
		}
		return SubmitResult{}, errors.Join(ErrPersistence, err)
	}

	providerID, err := s.relay.Dispatch(ctx, in)
	if err != nil {
		// The message is stored and recoverable by the admin reviewing the
		// store directly, but the operational goal - the admin being
		// notified - was not met, so the submission is reported failed.
		s.log.ErrorContext(ctx, "Admin notification failed for stored message",
			logger.Error(err), logger.MessageID(msg.ID.Hex()))
		return SubmitResult{}, err
	}

	s.log.InfoContext(ctx, "Contact submission processed",
		logger.MessageID(msg.ID.Hex()), logger.Event("contact_submitted"))

	return SubmitResult{MessageID: msg.ID.Hex(), ProviderID: providerID}, nil
}

// maxMessageLen caps the free-text body; anything longer than this is not a
// genuine inquiry and bloats the stored document.
const maxMessageLen = 5000

// validate fails fast with the first failing field. The email check is a
// permissive shape check; deliverability is the provider's problem.
func (s *Service) validate(in SubmitInput) error {
	err := validator.ApplyFirst(
		validator.RequiredString("name", in.Name),
		validator.RequiredString("email", in.Email),
		validator.EmailShape("email", in.Email),
		validator.RequiredString("message", in.Message),
		validator.MaxLenString("message", in.Message, maxMessageLen),
		validator.OneOf("division", in.Division, Divisions...),
	)
	if err != nil {
		return errors.Join(ErrValidation, err)
	}
	return nil
}
