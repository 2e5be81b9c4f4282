package contact

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/okoval/calyna/internal/platform/apperr"
	"github.com/okoval/calyna/internal/platform/constants"
	"github.com/okoval/calyna/internal/platform/validate"
)

// Service implements the contact relay pipeline:
// validate → honeypot → optional bot check → forward via email provider.
type Service struct {
	mailer   Mailer
	verifier Verifier
	to       string
	from     string
	logger   *slog.Logger
}

// NewService wires the relay. mailer may be nil when no provider API key
// is configured and verifier may be nil when bot checks are disabled;
// both degrade at submission time, never at startup.
func NewService(mailer Mailer, verifier Verifier, to, from string, logger *slog.Logger) *Service {
	return &Service{
		mailer:   mailer,
		verifier: verifier,
		to:       to,
		from:     from,
		logger:   logger,
	}
}

// Submit processes one contact-form submission. remoteIP is forwarded to
// the verification service when bot checks are enabled.
//
// A nil return means the message was relayed (or silently dropped for a
// honeypot hit — bots get a success response on purpose).
func (service *Service) Submit(ctx context.Context, submission Submission, remoteIP string) error {

	// Honeypot hit: pretend everything went fine and drop the message.
	if submission.BotField != "" {
		service.logger.InfoContext(ctx, "contact_honeypot_dropped")
		return nil
	}

	name := strings.TrimSpace(submission.Name)
	email := strings.TrimSpace(submission.Email)
	message := strings.TrimSpace(submission.Message)

	v := &validate.Validator{}
	if err := v.
		Required("name", name).
		MaxLen("name", name, constants.MaxNameLength).
		Required("email", email).
		Required("message", message).
		MaxLen("message", message, constants.MaxMessageLength).
		Err(); err != nil {
		return err
	}
	// Only check the format once presence has passed, to keep one clean
	// error per missing field.
	if err := (&validate.Validator{}).Email("email", email).Err(); err != nil {
		return err
	}

	if service.verifier != nil {
		if submission.Token == "" {
			return validate.RequiredError("token", "Verification token is required")
		}
		if err := service.verifier.Verify(ctx, submission.Token, remoteIP); err != nil {
			if errors.Is(err, ErrVerificationFailed) {
				return apperr.RelayRejected("Verification failed", http.StatusBadRequest, err)
			}
			return apperr.RelayRejected("Verification unavailable", http.StatusInternalServerError, err)
		}
	}

	if service.mailer == nil || service.to == "" {
		return apperr.RelayMisconfigured("contact relay missing RESEND_API_KEY or CONTACT_TO")
	}

	if err := service.mailer.Send(ctx, Email{
		From:    service.from,
		To:      service.to,
		ReplyTo: email,
		Subject: "New contact form message from " + name,
		HTML:    renderBody(name, email, message),
	}); err != nil {
		return apperr.RelayRejected("Failed to send message", http.StatusInternalServerError, err)
	}

	service.logger.InfoContext(ctx, "contact_message_relayed",
		slog.String("language", submission.Language),
	)
	return nil
}

// renderBody builds the notification email. Visitor input is escaped:
// the message lands in the site owner's inbox as HTML.
func renderBody(name, email, message string) string {
	escaped := html.EscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")

	return fmt.Sprintf(
		"<h2>New contact message</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Message:</strong></p>"+
			"<p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(email),
		escaped,
	)
}
