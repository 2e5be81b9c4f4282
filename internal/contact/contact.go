package contact

import "context"

// Submission is one contact-form post from a visitor.
//
// BotField is the hidden honeypot input: humans never see it, so a
// non-empty value means an automated submission.
type Submission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Language string `json:"language"`
	Token    string `json:"token"`
	BotField string `json:"bot_field"`
}

// Email is one outbound message handed to the [Mailer].
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer sends one email through a transactional provider. There is no
// retry at any layer: a transient provider failure surfaces to the
// visitor as an error.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// Verifier checks a bot-check token against a third-party verification
// service. A nil Verifier on the service means verification is disabled.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}
