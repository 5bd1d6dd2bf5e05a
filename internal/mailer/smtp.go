// Package mailer delivers composed emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/dtroode/videoflix-server/internal/model"
)

// Config holds SMTP connection parameters.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	AuthType string
	From     string
	SSL      bool
	Timeout  time.Duration
}

// SMTP sends plain-text emails through a single SMTP relay.
type SMTP struct {
	client *mail.Client
	from   string
}

func NewSMTP(cfg Config) (*SMTP, error) {
	var options []mail.Option

	if cfg.Port != 0 {
		options = append(options, mail.WithPort(cfg.Port))
	}
	if cfg.AuthType != "" {
		options = append(options, mail.WithSMTPAuth(mail.SMTPAuthType(strings.ToUpper(cfg.AuthType))))
		options = append(options, mail.WithUsername(cfg.Username))
		options = append(options, mail.WithPassword(cfg.Password))
	}
	if cfg.SSL {
		options = append(options, mail.WithSSLPort(true))
	} else {
		options = append(options, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.Timeout > 0 {
		options = append(options, mail.WithTimeout(cfg.Timeout))
	}

	client, err := mail.NewClient(cfg.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTP{client: client, from: cfg.From}, nil
}

func (s *SMTP) Send(ctx context.Context, email model.EmailMessage) error {
	msg, err := s.buildMsg(email)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *SMTP) buildMsg(email model.EmailMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(s.from); err != nil {
		return nil, fmt.Errorf("failed to set sender %q: %w", s.from, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("failed to set recipient %q: %w", email.To, err)
	}

	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)

	return msg, nil
}
