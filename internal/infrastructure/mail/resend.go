// Package mail delivers outbound email through the Resend API.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// Config holds the Resend transport settings.
type Config struct {
	APIKey     string
	FromEmail  string
	SenderName string
}

// Sender implements ports.Mailer on top of Resend.
type Sender struct {
	client *resend.Client
	from   string
}

func NewSender(cfg Config) *Sender {
	from := cfg.FromEmail
	if cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.FromEmail)
	}
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		from:   from,
	}
}

func (s *Sender) Send(ctx context.Context, to, subject, html string) error {
	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: send email: %w", err)
	}
	return nil
}
