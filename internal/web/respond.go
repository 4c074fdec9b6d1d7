// Package web holds the small HTTP plumbing shared by the site's handlers:
// JSON response writers matching the public wire shape, and middleware that
// keeps panics from crossing the network boundary unconverted.
package web

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform JSON error shape returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the uniform JSON error shape with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// MethodNotAllowed is the shared 405 handler; chi routes non-matching verbs
// here so every endpoint rejects them with the same JSON body.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// NotFound is the shared JSON 404 handler.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusNotFound, "Not found")
}
