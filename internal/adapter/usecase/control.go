package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
	"outreach/internal/pkg/logger"
)

// Pause asks a running dispatch to stop. Pausing a paused campaign is a
// no-op.
func (d *Dispatcher) Pause(ctx context.Context, campaignID string) error {
	moved, err := d.campaigns.TransitionStatus(ctx, campaignID,
		[]domain.CampaignStatus{domain.CampaignSending}, domain.CampaignPaused)
	if err != nil {
		return fmt.Errorf("pause campaign: %w", err)
	}
	if moved {
		d.logger.Info("campaign paused", slog.String("campaign_id", campaignID))
		return nil
	}
	status, err := d.campaigns.GetCampaignStatus(ctx, campaignID)
	if err != nil {
		return err
	}
	if status == domain.CampaignPaused {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, status, domain.CampaignPaused)
}

// Resume moves a paused campaign to draft or active.
func (d *Dispatcher) Resume(ctx context.Context, campaignID string, to domain.CampaignStatus) error {
	if !domain.CampaignPaused.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, domain.CampaignPaused, to)
	}
	moved, err := d.campaigns.TransitionStatus(ctx, campaignID,
		[]domain.CampaignStatus{domain.CampaignPaused}, to)
	if err != nil {
		return fmt.Errorf("resume campaign: %w", err)
	}
	if moved {
		d.logger.Info("campaign resumed", slog.String("campaign_id", campaignID), slog.String("status", string(to)))
		return nil
	}
	status, err := d.campaigns.GetCampaignStatus(ctx, campaignID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, status, to)
}

// Preview reports the segment and quota figures Send would use.
func (d *Dispatcher) Preview(ctx context.Context, campaignID string) (*port.Preview, error) {
	c, err := d.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	seg, err := d.resolveSegment(ctx, c)
	if err != nil {
		return nil, err
	}
	used, err := d.sentToday(ctx)
	if err != nil {
		return nil, err
	}
	remaining := max(d.opts.DailyLimit-used, 0)
	return &port.Preview{
		CampaignID:      c.ID,
		TotalLeads:      len(seg.Matching),
		AvailableLeads:  len(seg.Eligible),
		EmailsSentToday: used,
		DailyLimit:      d.opts.DailyLimit,
		RemainingQuota:  remaining,
		WillSend:        min(len(seg.Eligible), remaining),
	}, nil
}

// TestSend renders the campaign for a synthetic lead and mails it. The
// send log and the quota are not touched.
func (d *Dispatcher) TestSend(ctx context.Context, campaignID, email string) error {
	if !domain.IsValidEmail(email) {
		return port.ErrInvalidEmail
	}
	c, err := d.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return port.ErrCampaignNotFound
	}
	lead := domain.Lead{
		ID:           "test-lead-" + uuid.NewString(),
		Email:        email,
		BusinessName: "Test Business",
		City:         "Test City",
		State:        "Test State",
		Category:     "Test Category",
	}
	if err := d.sendToLead(ctx, c.Subject, c.Body, lead, c.ID); err != nil {
		return fmt.Errorf("send test email: %w", err)
	}
	d.logger.Info("test email sent", slog.String("campaign_id", c.ID), logger.Email(email))
	return nil
}

// GetStats returns send record counts for a period.
func (d *Dispatcher) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return d.sendLog.GetStats(ctx, req)
}
