package contact_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okoval/calyna/internal/contact"
)

func newContactRouter(mailer contact.Mailer) http.Handler {
	service := contact.NewService(mailer, nil, "owner@example.com", "site@example.com", slog.New(slog.DiscardHandler))
	router := chi.NewRouter()
	router.Route("/contact", contact.NewHandler(service).RegisterRoutes)
	return router
}

type okMailer struct{}

func (okMailer) Send(context.Context, contact.Email) error { return nil }

/*
TestHandler_Submit checks the wire contract: {"success":true} on relay,
the error envelope with success:false and an HTTP status in {400,500}
otherwise.
*/
func TestHandler_Submit(t *testing.T) {
	t.Run("success_shape", func(t *testing.T) {
		router := newContactRouter(okMailer{})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"name":"Olena","email":"a@b.com","message":"hi"}`)))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
	})

	t.Run("validation_failure_is_400", func(t *testing.T) {
		router := newContactRouter(okMailer{})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"name":"","email":"a@b.com","message":"hi"}`)))

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"success":false`)
		assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("misconfigured_relay_is_500", func(t *testing.T) {
		router := newContactRouter(nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"name":"Olena","email":"a@b.com","message":"hi"}`)))

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "RELAY_MISCONFIGURED")
	})

	t.Run("invalid_json_is_400", func(t *testing.T) {
		router := newContactRouter(okMailer{})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{not json`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
