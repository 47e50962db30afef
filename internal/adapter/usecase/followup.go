package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

const (
	reasonFollowUpNotConfigured = "follow-up email not configured"
	reasonFollowUpOrphaned      = "campaign or lead no longer exists"
)

// scheduleFollowUps creates a job per configured slot after a successful
// primary send. Failures are logged and never affect the send.
func (d *Dispatcher) scheduleFollowUps(ctx context.Context, c *domain.Campaign, leadID, recordID string, sentAt time.Time) {
	for _, typ := range domain.FollowUpTypes {
		tpl := c.FollowUp(typ)
		if !tpl.Schedulable() {
			continue
		}
		job := &domain.FollowUpJob{
			CampaignID:   c.ID,
			LeadID:       leadID,
			SendRecordID: recordID,
			Type:         typ,
			ScheduledFor: sentAt.Add(time.Duration(tpl.DelayDays) * 24 * time.Hour),
			Status:       domain.FollowUpPending,
		}
		if err := d.bookkeep(ctx, "create follow-up job", func(ctx context.Context) error {
			return d.followUps.CreateJob(ctx, job)
		}); err != nil {
			d.logger.Warn("schedule follow-up",
				slog.String("campaign_id", c.ID),
				slog.String("lead_id", leadID),
				slog.String("type", string(typ)),
				slog.Any("error", err),
			)
		}
	}
}

type sweepOutcome int

const (
	sweepSent sweepOutcome = iota
	sweepFailed
	sweepDeferred
)

// SweepFollowUps sends every pending job that is due. Slot content is
// read from the campaign as it is now, not as it was when scheduled.
func (d *Dispatcher) SweepFollowUps(ctx context.Context) (*port.SweepResult, error) {
	jobs, err := d.followUps.DueJobs(ctx, d.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list due follow-ups: %w", err)
	}
	res := &port.SweepResult{Total: len(jobs)}
	campaigns := make(map[string]*domain.Campaign)

	for i, job := range jobs {
		if i > 0 {
			if err := d.sleep(ctx, d.opts.EmailDelay); err != nil {
				return res, err
			}
		}
		switch d.sendFollowUp(ctx, job, campaigns) {
		case sweepSent:
			res.Sent++
		case sweepFailed:
			res.Failed++
		}
	}
	d.logger.Info("follow-up sweep finished",
		slog.Int("total", res.Total),
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

func (d *Dispatcher) sendFollowUp(ctx context.Context, job domain.FollowUpJob, campaigns map[string]*domain.Campaign) sweepOutcome {
	log := d.logger.With(slog.String("job_id", job.ID), slog.String("campaign_id", job.CampaignID))

	c, ok := campaigns[job.CampaignID]
	if !ok {
		var err error
		c, err = d.campaigns.GetCampaign(ctx, job.CampaignID)
		if err != nil {
			log.Warn("load follow-up campaign", slog.Any("error", err))
			return sweepDeferred
		}
		campaigns[job.CampaignID] = c
	}
	lead, err := d.leads.GetLead(ctx, job.LeadID)
	if err != nil {
		log.Warn("load follow-up lead", slog.Any("error", err))
		return sweepDeferred
	}
	if c == nil || lead == nil {
		d.failJob(ctx, job.ID, reasonFollowUpOrphaned)
		return sweepFailed
	}
	tpl := c.FollowUp(job.Type)
	if !tpl.HasContent() {
		d.failJob(ctx, job.ID, reasonFollowUpNotConfigured)
		return sweepFailed
	}

	jobID := job.ID
	rec := &domain.SendRecord{
		CampaignID: job.CampaignID,
		LeadID:     job.LeadID,
		Kind:       domain.SendFollowUp,
		FollowUpID: &jobID,
		Status:     domain.SendPending,
	}
	if err := d.bookkeep(ctx, "create follow-up record", func(ctx context.Context) error {
		return d.sendLog.CreateRecord(ctx, rec)
	}); err != nil {
		log.Error("create follow-up record", slog.Any("error", err))
		return sweepDeferred
	}

	sentAt, err := d.deliver(ctx, tpl.Subject, tpl.Body, *lead, rec)
	if err != nil {
		d.failJob(ctx, job.ID, err.Error())
		return sweepFailed
	}
	if err := d.bookkeep(ctx, "mark follow-up sent", func(ctx context.Context) error {
		return d.followUps.MarkJobSent(ctx, job.ID, sentAt)
	}); err != nil {
		log.Error("mark follow-up sent", slog.Any("error", err))
	}
	return sweepSent
}

func (d *Dispatcher) failJob(ctx context.Context, id, reason string) {
	if err := d.bookkeep(ctx, "mark follow-up failed", func(ctx context.Context) error {
		return d.followUps.MarkJobFailed(ctx, id, reason)
	}); err != nil {
		d.logger.Error("mark follow-up failed", slog.String("job_id", id), slog.Any("error", err))
	}
}
