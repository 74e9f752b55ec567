// Package notification delivers the post-submission confirmation email.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"github.com/quickfunds/loanflow_backend/internal/core/ports"
)

// SMTPConfig carries the mail relay settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// EmailSender sends the confirmation email over SMTP. When no relay host
// is configured it logs the confirmation instead of failing, so local
// environments work without a mail server.
type EmailSender struct {
	cfg    SMTPConfig
	logger *slog.Logger
}

// NewEmailSender creates an EmailSender.
func NewEmailSender(cfg SMTPConfig, logger *slog.Logger) *EmailSender {
	return &EmailSender{cfg: cfg, logger: logger}
}

var _ ports.ConfirmationSender = (*EmailSender)(nil)

// SendConfirmation delivers the confirmation email. The context deadline
// bounds the SMTP dial; callers treat failures as non-fatal.
func (s *EmailSender) SendConfirmation(ctx context.Context, email, firstName, referenceNumber string) error {
	if s.cfg.Host == "" {
		s.logger.Info("SMTP not configured, logging confirmation instead",
			slog.String("email", email),
			slog.String("reference_number", referenceNumber),
		)
		return nil
	}

	msg := buildConfirmationMessage(s.cfg.From, email, firstName, referenceNumber)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(nil); err != nil {
			return fmt.Errorf("failed to start tls: %w", err)
		}
	}
	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate with smtp server: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(email); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message body: %w", err)
	}
	return client.Quit()
}

func buildConfirmationMessage(from, to, firstName, referenceNumber string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: Your loan application %s\r\n", referenceNumber)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", firstName)
	fmt.Fprintf(&b, "We received your loan application. Your reference number is %s.\r\n", referenceNumber)
	b.WriteString("Keep it handy when contacting us about your application.\r\n")
	return b.String()
}
