package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

// Tracker implements port.TrackingUseCase on top of the send log.
type Tracker struct {
	sendLog port.SendLogRepository
	events  port.EventPublisher
	clock   port.Clock
	logger  *slog.Logger
}

var _ port.TrackingUseCase = (*Tracker)(nil)

func NewTracker(sendLog port.SendLogRepository, events port.EventPublisher, clock port.Clock, logger *slog.Logger) *Tracker {
	if events == nil {
		events = nopPublisher{}
	}
	if clock == nil {
		clock = systemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{sendLog: sendLog, events: events, clock: clock, logger: logger}
}

// RecordOpen marks the lead's latest unopened sent record as opened.
func (t *Tracker) RecordOpen(ctx context.Context, leadID string) error {
	if _, err := uuid.Parse(leadID); err != nil {
		return port.ErrUnknownLead
	}
	rec, err := t.sendLog.MarkLatestOpened(ctx, leadID, t.clock.Now())
	if err != nil {
		return fmt.Errorf("mark opened: %w", err)
	}
	if rec != nil {
		t.publish(ctx, domain.EventOpened, rec)
	}
	return nil
}

// RecordClick marks the lead's latest sent or opened record as clicked.
func (t *Tracker) RecordClick(ctx context.Context, leadID string) error {
	if _, err := uuid.Parse(leadID); err != nil {
		return port.ErrUnknownLead
	}
	rec, err := t.sendLog.MarkLatestClicked(ctx, leadID, t.clock.Now())
	if err != nil {
		return fmt.Errorf("mark clicked: %w", err)
	}
	if rec != nil {
		t.publish(ctx, domain.EventClicked, rec)
	}
	return nil
}

func (t *Tracker) publish(ctx context.Context, typ domain.SendEventType, rec *domain.SendRecord) {
	t.events.Publish(context.WithoutCancel(ctx), domain.SendEvent{
		Type:         typ,
		SendRecordID: rec.ID,
		CampaignID:   rec.CampaignID,
		LeadID:       rec.LeadID,
		Kind:         rec.Kind,
		OccurredAt:   t.clock.Now(),
	})
}
