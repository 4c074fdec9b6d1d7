package contact_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kit678/blaide-bolt/internal/contact"
	"github.com/kit678/blaide-bolt/pkg/email"
)

const validBody = `{
	"to": "spoofed@attacker.example",
	"from_email": "ada@example.com",
	"from_name": "Ada Lovelace",
	"division": "Noos",
	"subject": "Partnership",
	"message": "I would like to talk about a collaboration.",
	"phone": "+1 555 0100"
}`

func newTestHandler(store *mockStore, sender email.EmailSender) http.Handler {
	log := testLogger()
	relay := contact.NewRelay(sender, "contact@blaidelabs.com", log)
	svc := contact.NewService(store, relay, log)
	return contact.NewHandler(svc, log).Routes()
}

func postSendEmail(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/sendEmail", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleSendEmail_Success(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	sender := new(mockSender)
	store.On("Insert", mock.Anything, mock.Anything).Return(storedMessage(), nil)
	sender.On("SendEmail", mock.Anything, mock.Anything).Return("abc123", nil)

	rec := postSendEmail(t, newTestHandler(store, sender), validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":"abc123"}`, rec.Body.String())
}

func TestHandleSendEmail_ClientToFieldIgnored(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	sender := new(mockSender)
	store.On("Insert", mock.Anything, mock.Anything).Return(storedMessage(), nil)

	var recipients []string
	sender.On("SendEmail", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recipients = append(recipients, args.Get(1).(email.SendEmailParams).SendTo)
		}).Return("abc123", nil)

	postSendEmail(t, newTestHandler(store, sender), validBody)

	require.Len(t, recipients, 2)
	assert.Equal(t, "contact@blaidelabs.com", recipients[0], "admin recipient comes from configuration")
	assert.NotContains(t, recipients, "spoofed@attacker.example")
}

func TestHandleSendEmail_NonPostRejected(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	sender := new(mockSender)
	h := newTestHandler(store, sender)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		req := httptest.NewRequest(method, "/sendEmail", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String(), method)
	}

	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestRoutes_UnknownPathIsJSON404(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	sender := new(mockSender)

	rec := httptest.NewRecorder()
	newTestHandler(store, sender).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestHandleSendEmail_ValidationFailure(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	sender := new(mockSender)

	body := `{"from_email": "ada@example.com", "from_name": "", "message": "hi"}`
	rec := postSendEmail(t, newTestHandler(store, sender), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestHandleSendEmail_InvalidJSON(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	sender := new(mockSender)

	rec := postSendEmail(t, newTestHandler(store, sender), "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestHandleSendEmail_MissingProviderCredential(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	store.On("Insert", mock.Anything, mock.Anything).Return(storedMessage(), nil)

	// A nil sender models the missing provider API key.
	rec := postSendEmail(t, newTestHandler(store, nil), validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Email service is not configured"}`, rec.Body.String())
}

func TestHandleSendEmail_PersistenceFailure(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	sender := new(mockSender)
	store.On("Insert", mock.Anything, mock.Anything).
		Return(contact.Message{}, errors.Join(contact.ErrPersistence, errors.New("connection reset")))

	rec := postSendEmail(t, newTestHandler(store, sender), validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to store your message, please try again"}`, rec.Body.String())
	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestHandleSendEmail_DispatchFailureSurfacesProviderMessage(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	sender := new(mockSender)
	store.On("Insert", mock.Anything, mock.Anything).Return(storedMessage(), nil)
	sender.On("SendEmail", mock.Anything, mock.Anything).
		Return("", errors.New("postmark error: 406 - inactive recipient")).Once()

	rec := postSendEmail(t, newTestHandler(store, sender), validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"postmark error: 406 - inactive recipient"}`, rec.Body.String(),
		"the client sees the provider reason and nothing else")
}
