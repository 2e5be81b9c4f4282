package contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestTurnstileVerifier_Verify checks the siteverify call: form fields on the
way out, success and error-code handling on the way back.
*/
func TestTurnstileVerifier_Verify(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		var gotForm map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseForm())
			gotForm = map[string]string{
				"secret":   request.PostFormValue("secret"),
				"response": request.PostFormValue("response"),
				"remoteip": request.PostFormValue("remoteip"),
			}
			assert.Equal(t, "/turnstile/v0/siteverify", request.URL.Path)
			_, _ = writer.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		verifier := &TurnstileVerifier{secret: "sec", baseURL: server.URL, client: server.Client()}

		require.NoError(t, verifier.Verify(context.Background(), "tok", "203.0.113.7"))
		assert.Equal(t, "sec", gotForm["secret"])
		assert.Equal(t, "tok", gotForm["response"])
		assert.Equal(t, "203.0.113.7", gotForm["remoteip"])
	})

	t.Run("declined", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		}))
		defer server.Close()

		verifier := &TurnstileVerifier{secret: "sec", baseURL: server.URL, client: server.Client()}

		err := verifier.Verify(context.Background(), "tok", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVerificationFailed)
		assert.Contains(t, err.Error(), "invalid-input-response")
	})
}
