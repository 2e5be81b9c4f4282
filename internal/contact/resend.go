package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/okoval/calyna/internal/platform/constants"
)

const resendBaseURL = "https://api.resend.com"

// ResendMailer sends email through the Resend transactional API
// (POST /emails). One JSON call per submission, no SDK needed.
type ResendMailer struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewResendMailer builds a mailer with a bounded request timeout.
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{
		apiKey:  apiKey,
		baseURL: resendBaseURL,
		client:  &http.Client{Timeout: constants.RelayRequestTimeout},
	}
}

// resendPayload mirrors Resend's POST /emails request schema.
type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send implements [Mailer].
func (mailer *ResendMailer) Send(ctx context.Context, email Email) error {
	payload, err := json.Marshal(resendPayload{
		From:    email.From,
		To:      []string{email.To},
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend: encode payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, mailer.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("resend: build request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+mailer.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := mailer.client.Do(request)
	if err != nil {
		return fmt.Errorf("resend: send: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		// The body carries Resend's error description; keep it short for the logs.
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("resend: status %d: %s", response.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
