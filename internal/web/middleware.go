package web

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/kit678/blaide-bolt/pkg/logger"
)

// Recoverer converts panics into the uniform JSON 500 response. The panic
// value and stack are logged server-side only; the client sees a generic
// message.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.ErrorContext(r.Context(), "Panic recovered in HTTP handler",
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
						logger.Component("web"),
					)
					Error(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
