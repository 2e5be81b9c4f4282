package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/okoval/calyna/internal/platform/constants"
)

const turnstileBaseURL = "https://challenges.cloudflare.com"

// ErrVerificationFailed is returned when the verification service declines
// a token.
var ErrVerificationFailed = errors.New("bot verification failed")

// TurnstileVerifier validates bot-check tokens against Cloudflare
// Turnstile's siteverify endpoint.
type TurnstileVerifier struct {
	secret  string
	baseURL string
	client  *http.Client
}

// NewTurnstileVerifier builds a verifier with a bounded request timeout.
func NewTurnstileVerifier(secret string) *TurnstileVerifier {
	return &TurnstileVerifier{
		secret:  secret,
		baseURL: turnstileBaseURL,
		client:  &http.Client{Timeout: constants.RelayRequestTimeout},
	}
}

// Verify implements [Verifier].
func (verifier *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	form := url.Values{
		"secret":   {verifier.secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		verifier.baseURL+"/turnstile/v0/siteverify", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("turnstile: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := verifier.client.Do(request)
	if err != nil {
		return fmt.Errorf("turnstile: verify: %w", err)
	}
	defer response.Body.Close()

	var result struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return fmt.Errorf("turnstile: decode response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(result.ErrorCodes, ", "))
	}
	return nil
}
