// Package email delivers one-time passwords by email through Resend.
package email

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const otpSubject = "Your OTP for Central Ring"

// Mailer sends transactional email through the Resend API.
type Mailer struct {
	client *resend.Client
	from   string
	log    *slog.Logger
}

// NewMailer creates a mailer. An empty baseURL keeps the Resend default.
func NewMailer(apiKey, from, baseURL string, logger *slog.Logger) (*Mailer, error) {
	client := resend.NewCustomClient(&http.Client{Timeout: 10 * time.Second}, apiKey)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parse resend base url: %w", err)
		}
		client.BaseURL = u
	}

	return &Mailer{
		client: client,
		from:   from,
		log:    logger.With("adapter", "resend"),
	}, nil
}

// SendOTP emails code to the given address.
func (m *Mailer) SendOTP(ctx context.Context, to, code string) error {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: otpSubject,
		Html:    otpBody(code),
	})
	if err != nil {
		m.log.ErrorContext(ctx, "otp email failed", slog.String("error", err.Error()))
		return domain.NewUpstreamError("email", err)
	}

	m.log.InfoContext(ctx, "otp email sent", slog.String("message_id", sent.Id))
	return nil
}

func otpBody(code string) string {
	return "<p>Your One-Time Password (OTP) is: <strong>" + html.EscapeString(code) +
		"</strong></p><p>This OTP is valid for 5 minutes.</p>"
}
