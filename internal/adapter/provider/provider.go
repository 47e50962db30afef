// Package provider contains the outbound email providers. Each provider
// classifies its failures into port.SendError where the wire protocol
// allows it.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"outreach/internal/config/configs"
	"outreach/internal/core/port"
)

// New builds the provider selected by cfg.Kind.
func New(ctx context.Context, cfg configs.Provider, logger *slog.Logger) (port.Sender, error) {
	from := mail.Address{Name: cfg.FromName, Address: cfg.FromEmail}
	switch strings.ToLower(cfg.Kind) {
	case "smtp":
		s, err := NewSMTPSender(cfg.SMTP, from, cfg.ReplyTo, cfg.SendTimeout)
		if err != nil {
			return nil, fmt.Errorf("smtp provider: %w", err)
		}
		return s, nil
	case "ses":
		s, err := NewSESSender(ctx, cfg.SES, from, cfg.ReplyTo, cfg.SendTimeout)
		if err != nil {
			return nil, fmt.Errorf("ses provider: %w", err)
		}
		return s, nil
	case "log", "":
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Kind)
	}
}
