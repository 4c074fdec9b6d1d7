package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kit678/blaide-bolt/internal/web"
	"github.com/kit678/blaide-bolt/pkg/logger"
	"github.com/kit678/blaide-bolt/pkg/validator"
)

// sendEmailRequest is the wire shape the contact form posts. The optional
// "to" field is accepted for compatibility with older clients but never
// trusted: the admin recipient always comes from server configuration.
type sendEmailRequest struct {
	To        string `json:"to,omitempty"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	Division  string `json:"division"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Phone     string `json:"phone,omitempty"`
}

type sendEmailResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Handler exposes the contact submission pipeline over HTTP.
type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes returns the contact endpoints. Non-POST verbs on registered paths
// get the shared JSON 405, and unknown paths the shared JSON 404.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(web.NotFound)
	r.MethodNotAllowed(web.MethodNotAllowed)
	r.Post("/sendEmail", h.HandleSendEmail)
	return r
}

// HandleSendEmail is exported so the local development alias can mount the
// same handler outside the /api prefix.
func (h *Handler) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.svc.Submit(r.Context(), SubmitInput{
		Name:     req.FromName,
		Email:    req.FromEmail,
		Phone:    req.Phone,
		Division: req.Division,
		Subject:  req.Subject,
		Message:  req.Message,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	web.JSON(w, http.StatusOK, sendEmailResponse{Success: true, ID: result.ProviderID})
}

// respondError maps pipeline errors onto the uniform JSON error shape.
// Configuration detail stays in the server log; the client only learns the
// service is unavailable.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		message := "Invalid submission"
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			message = verrs.Error()
		}
		web.Error(w, http.StatusBadRequest, message)
	case errors.Is(err, ErrConfiguration):
		h.log.ErrorContext(r.Context(), "Contact pipeline misconfigured", logger.Error(err))
		web.Error(w, http.StatusInternalServerError, "Email service is not configured")
	case errors.Is(err, ErrPersistence):
		h.log.ErrorContext(r.Context(), "Failed to store contact message", logger.Error(err))
		web.Error(w, http.StatusInternalServerError, "Failed to store your message, please try again")
	case errors.Is(err, ErrDispatch):
		h.log.ErrorContext(r.Context(), "Failed to send admin notification", logger.Error(err))
		web.Error(w, http.StatusInternalServerError, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "Unexpected error handling contact submission", logger.Error(err))
		web.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
