package provider

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"outreach/internal/core/domain"
	"outreach/internal/pkg/logger"
)

// LogSender accepts every message and only logs it. It is meant for local
// development.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(l *slog.Logger) *LogSender {
	if l == nil {
		l = slog.Default()
	}
	return &LogSender{logger: l}
}

func (s *LogSender) Send(_ context.Context, msg domain.EmailMessage) (string, error) {
	id := "log-" + uuid.NewString()
	s.logger.Info("email accepted by log provider",
		slog.String("message_id", id),
		slog.String("campaign_id", msg.CampaignID),
		slog.String("lead_id", msg.LeadID),
		logger.Email(msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return id, nil
}
