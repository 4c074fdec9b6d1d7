package contact

import "errors"

var (
	// ErrValidation indicates a malformed or incomplete submission.
	// No storage write or email send happens after it.
	ErrValidation = errors.New("contact.errors.validation")

	// ErrConfiguration indicates the email dispatch path is not configured.
	// Surfaced to the end user as a generic service-unavailable message.
	ErrConfiguration = errors.New("contact.errors.configuration")

	// ErrPersistence indicates the document-store write failed.
	// The submission is aborted; email is never attempted afterwards.
	ErrPersistence = errors.New("contact.errors.persistence")

	// ErrDispatch indicates the admin notification failed after the message
	// was stored. The message remains recoverable in the store.
	ErrDispatch = errors.New("contact.errors.dispatch")

	// ErrNotFound indicates the requested message does not exist.
	ErrNotFound = errors.New("contact.errors.not_found")
)

// dispatchError matches ErrDispatch under errors.Is while its Error text
// stays the provider-facing reason alone. The sentinel never reaches the
// HTTP response body.
type dispatchError struct {
	reason error
}

func (e *dispatchError) Error() string {
	return e.reason.Error()
}

func (e *dispatchError) Unwrap() []error {
	return []error{ErrDispatch, e.reason}
}
