// Package admin implements the data plane behind the admin console:
// listing contact messages, marking them read, and editing site settings.
// Console authentication is handled by the frontend and is out of scope here.
package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kit678/blaide-bolt/internal/contact"
	"github.com/kit678/blaide-bolt/internal/web"
	"github.com/kit678/blaide-bolt/pkg/email"
	"github.com/kit678/blaide-bolt/pkg/logger"
)

// Handler exposes the admin console API.
type Handler struct {
	messages contact.MessageStore
	settings SettingsStore
	log      *slog.Logger
}

func NewHandler(messages contact.MessageStore, settings SettingsStore, log *slog.Logger) *Handler {
	return &Handler{messages: messages, settings: settings, log: log}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(web.MethodNotAllowed)
	r.Get("/messages", h.handleListMessages)
	r.Post("/messages/{id}/read", h.handleMarkRead)
	r.Get("/settings", h.handleGetSettings)
	r.Put("/settings", h.handleUpdateSettings)
	return r
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.List(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to list contact messages", logger.Error(err))
		web.Error(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}
	if messages == nil {
		messages = []contact.Message{}
	}
	web.JSON(w, http.StatusOK, messages)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.messages.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			web.Error(w, http.StatusNotFound, "Message not found")
			return
		}
		h.log.ErrorContext(r.Context(), "Failed to mark message as read",
			logger.Error(err), logger.MessageID(id))
		web.Error(w, http.StatusInternalServerError, "Failed to mark message as read")
		return
	}

	web.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to load settings", logger.Error(err))
		web.Error(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	web.JSON(w, http.StatusOK, settings)
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if settings.ContactEmail != "" && !email.ValidAddress(settings.ContactEmail) {
		web.Error(w, http.StatusBadRequest, "contact_email must be a valid email address")
		return
	}

	if err := h.settings.Update(r.Context(), settings); err != nil {
		h.log.ErrorContext(r.Context(), "Failed to update settings", logger.Error(err))
		web.Error(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	web.JSON(w, http.StatusOK, settings)
}
