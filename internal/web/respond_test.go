package web_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kit678/blaide-bolt/internal/web"
	"github.com/kit678/blaide-bolt/pkg/logger"
)

func TestError_Shape(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	web.Error(rec, http.StatusInternalServerError, "something broke")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"something broke"}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	web.MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestRecoverer_ConvertsPanicToJSON(t *testing.T) {
	t.Parallel()

	log := logger.New(logger.WithOutput(io.Discard))
	h := web.Recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("boom"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestRecoverer_PassesThrough(t *testing.T) {
	t.Parallel()

	log := logger.New(logger.WithOutput(io.Discard))
	h := web.Recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		web.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
