package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
	"outreach/internal/pkg/logger"
	"outreach/internal/pkg/retry"
)

// Options tunes pacing, quota and retry behaviour of a Dispatcher.
type Options struct {
	DailyLimit int
	BatchSize  int
	EmailDelay time.Duration
	BatchDelay time.Duration

	MaxSendRetries int
	RetryDelay     time.Duration

	StatusUpdateAttempts int
	StatusUpdateDelay    time.Duration

	TrackingBaseURL string
	Location        *time.Location
}

// DefaultOptions mirrors the production pacing.
func DefaultOptions() Options {
	return Options{
		DailyLimit:           700,
		BatchSize:            20,
		EmailDelay:           3 * time.Second,
		BatchDelay:           10 * time.Second,
		MaxSendRetries:       3,
		RetryDelay:           2 * time.Second,
		StatusUpdateAttempts: 3,
		StatusUpdateDelay:    500 * time.Millisecond,
		TrackingBaseURL:      "http://localhost:8080",
		Location:             time.Local,
	}
}

// Deps are the outbound ports a Dispatcher drives. Locker, Events and
// Clock are optional.
type Deps struct {
	Campaigns port.CampaignRepository
	Leads     port.LeadRepository
	SendLog   port.SendLogRepository
	FollowUps port.FollowUpRepository
	Sender    port.Sender
	Locker    port.Locker
	Events    port.EventPublisher
	Clock     port.Clock
}

// Dispatcher implements port.DispatchUseCase. A run walks the eligible
// leads sequentially in batches, writing a pending send record before
// every provider call.
type Dispatcher struct {
	campaigns port.CampaignRepository
	leads     port.LeadRepository
	sendLog   port.SendLogRepository
	followUps port.FollowUpRepository
	sender    port.Sender
	locker    port.Locker
	events    port.EventPublisher
	clock     port.Clock

	opts   Options
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

var _ port.DispatchUseCase = (*Dispatcher)(nil)

func NewDispatcher(deps Deps, opts Options, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		campaigns: deps.Campaigns,
		leads:     deps.Leads,
		sendLog:   deps.SendLog,
		followUps: deps.FollowUps,
		sender:    deps.Sender,
		locker:    deps.Locker,
		events:    deps.Events,
		clock:     deps.Clock,
		opts:      opts,
		logger:    logger,
		sleep:     retry.Sleep,
	}
	if d.locker == nil {
		d.locker = nopLocker{}
	}
	if d.events == nil {
		d.events = nopPublisher{}
	}
	if d.clock == nil {
		d.clock = systemClock{}
	}
	if d.opts.BatchSize <= 0 {
		d.opts.BatchSize = 1
	}
	if d.opts.Location == nil {
		d.opts.Location = time.Local
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Send dispatches the campaign to its eligible leads. Refusals return
// before the campaign status changes.
func (d *Dispatcher) Send(ctx context.Context, campaignID string) (*port.DispatchResult, error) {
	c, err := d.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	switch c.Status {
	case domain.CampaignSending:
		return nil, port.ErrAlreadySending
	case domain.CampaignPaused:
		return nil, fmt.Errorf("%w: campaign is paused, resume it first", port.ErrInvalidTransition)
	}

	remaining, err := d.remainingQuota(ctx)
	if err != nil {
		return nil, err
	}
	if remaining <= 0 {
		return nil, port.ErrQuotaExhausted
	}
	seg, err := d.resolveSegment(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(seg.Eligible) == 0 {
		return nil, port.ErrNoEligibleLeads
	}

	unlock, ok, err := d.locker.TryLock(ctx, "dispatch:"+c.ID)
	if err != nil {
		return nil, fmt.Errorf("acquire dispatch lock: %w", err)
	}
	if !ok {
		return nil, port.ErrAlreadySending
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			d.logger.Warn("release dispatch lock", slog.String("campaign_id", c.ID), slog.Any("error", err))
		}
	}()

	moved, err := d.campaigns.TransitionStatus(ctx, c.ID, domain.SourcesOf(domain.CampaignSending), domain.CampaignSending)
	if err != nil {
		return nil, fmt.Errorf("start campaign: %w", err)
	}
	if !moved {
		return nil, d.refusedStart(ctx, c.ID)
	}

	// The segment is read again under the sending status so a run that
	// just finished cannot leave stale candidates behind.
	leads, remaining, err := d.admit(ctx, c)
	if err != nil {
		d.transition(ctx, c.ID, c.Status)
		return nil, err
	}

	log := d.logger.With(slog.String("campaign_id", c.ID))
	log.Info("dispatch started", slog.Int("leads", len(leads)), slog.Int("quota_remaining", remaining))

	res := &port.DispatchResult{CampaignID: c.ID}
	runErr := d.run(ctx, c, leads, res)

	final := domain.CampaignDraft
	if res.Sent > 0 {
		final = domain.CampaignActive
	}
	if runErr != nil && ctx.Err() == nil {
		final = domain.CampaignDraft
	}
	d.transition(ctx, c.ID, final)

	res.DailyQuotaRemaining = max(remaining-res.Sent, 0)
	log.Info("dispatch finished",
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed),
		slog.Int("total", res.Total),
		slog.Bool("paused", res.Paused),
	)
	if runErr != nil {
		log.Error("dispatch interrupted", slog.Any("error", runErr))
		return res, runErr
	}
	return res, nil
}

// admit resolves the leads of this run and the quota that bounds it.
func (d *Dispatcher) admit(ctx context.Context, c *domain.Campaign) ([]domain.Lead, int, error) {
	remaining, err := d.remainingQuota(ctx)
	if err != nil {
		return nil, 0, err
	}
	if remaining <= 0 {
		return nil, 0, port.ErrQuotaExhausted
	}
	seg, err := d.resolveSegment(ctx, c)
	if err != nil {
		return nil, 0, err
	}
	if len(seg.Eligible) == 0 {
		return nil, 0, port.ErrNoEligibleLeads
	}
	return seg.Eligible[:min(len(seg.Eligible), remaining)], remaining, nil
}

func (d *Dispatcher) refusedStart(ctx context.Context, id string) error {
	status, err := d.campaigns.GetCampaignStatus(ctx, id)
	if err != nil {
		return err
	}
	if status == domain.CampaignSending {
		return port.ErrAlreadySending
	}
	return fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, status, domain.CampaignSending)
}

// transition leaves the sending state. A campaign paused meanwhile keeps
// its paused status.
func (d *Dispatcher) transition(ctx context.Context, id string, to domain.CampaignStatus) {
	var moved bool
	err := d.bookkeep(ctx, "finish campaign", func(ctx context.Context) error {
		var err error
		moved, err = d.campaigns.TransitionStatus(ctx, id, []domain.CampaignStatus{domain.CampaignSending}, to)
		return err
	})
	if err != nil {
		d.logger.Error("leave sending status", slog.String("campaign_id", id), slog.String("to", string(to)), slog.Any("error", err))
		return
	}
	if !moved {
		d.logger.Info("campaign left sending elsewhere", slog.String("campaign_id", id), slog.String("wanted", string(to)))
	}
}

func (d *Dispatcher) run(ctx context.Context, c *domain.Campaign, leads []domain.Lead, res *port.DispatchResult) error {
	for start := 0; start < len(leads); start += d.opts.BatchSize {
		if start > 0 {
			if err := d.sleep(ctx, d.opts.BatchDelay); err != nil {
				return err
			}
		}
		end := min(start+d.opts.BatchSize, len(leads))
		for _, lead := range leads[start:end] {
			if d.pauseRequested(ctx, c.ID) {
				res.Paused = true
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			rec := &domain.SendRecord{
				CampaignID: c.ID,
				LeadID:     lead.ID,
				Kind:       domain.SendPrimary,
				Status:     domain.SendPending,
			}
			if err := d.bookkeep(ctx, "create send record", func(ctx context.Context) error {
				return d.sendLog.CreateRecord(ctx, rec)
			}); err != nil {
				return fmt.Errorf("create send record: %w", err)
			}
			res.Total++

			if res.Total > 1 {
				if err := d.sleep(ctx, d.opts.EmailDelay); err != nil {
					d.markFailed(ctx, rec, "dispatch interrupted: "+err.Error())
					res.Failed++
					return err
				}
			}

			sentAt, err := d.deliver(ctx, c.Subject, c.Body, lead, rec)
			if err != nil {
				res.Failed++
				continue
			}
			res.Sent++
			d.scheduleFollowUps(ctx, c, lead.ID, rec.ID, sentAt)
		}
	}
	return nil
}

// pauseRequested re-reads the campaign status. A failed read does not
// stop the run; the next checkpoint reads again.
func (d *Dispatcher) pauseRequested(ctx context.Context, id string) bool {
	var status domain.CampaignStatus
	err := d.bookkeep(ctx, "read campaign status", func(ctx context.Context) error {
		var err error
		status, err = d.campaigns.GetCampaignStatus(ctx, id)
		return err
	})
	if err != nil {
		d.logger.Warn("status checkpoint failed", slog.String("campaign_id", id), slog.Any("error", err))
		return false
	}
	return status == domain.CampaignPaused
}

// deliver sends one message and records the outcome on rec.
func (d *Dispatcher) deliver(ctx context.Context, subject, body string, lead domain.Lead, rec *domain.SendRecord) (time.Time, error) {
	if err := d.sendToLead(ctx, subject, body, lead, rec.CampaignID); err != nil {
		d.logger.Warn("send failed",
			slog.String("campaign_id", rec.CampaignID),
			slog.String("lead_id", lead.ID),
			logger.Email(lead.Email),
			slog.Any("error", err),
		)
		d.markFailed(ctx, rec, err.Error())
		return time.Time{}, err
	}
	sentAt := d.clock.Now()
	d.markSent(ctx, rec, sentAt)
	return sentAt, nil
}

// sendToLead renders the templates for the lead and hands the message to
// the provider, retrying transient failures.
func (d *Dispatcher) sendToLead(ctx context.Context, subject, body string, lead domain.Lead, campaignID string) error {
	if !domain.IsValidEmail(lead.Email) {
		return port.ErrInvalidEmail
	}
	renderedSubject, html := Render(subject, body, lead, d.opts.TrackingBaseURL)
	msg := domain.EmailMessage{
		To:         lead.Email,
		Subject:    renderedSubject,
		HTML:       html,
		CampaignID: campaignID,
		LeadID:     lead.ID,
	}
	return retry.Do(ctx, retry.Policy{
		MaxAttempts: d.opts.MaxSendRetries + 1,
		Delay:       retry.Linear(d.opts.RetryDelay),
		Retryable:   IsRetryable,
		Sleep:       d.sleep,
		OnRetry: func(n int, err error, wait time.Duration) {
			d.logger.Info("retrying send",
				slog.String("lead_id", lead.ID),
				slog.Int("retry", n),
				slog.Duration("wait", wait),
				slog.Any("error", err),
			)
		},
	}, func(ctx context.Context, _ int) error {
		_, err := d.sender.Send(ctx, msg)
		return err
	})
}

func (d *Dispatcher) markSent(ctx context.Context, rec *domain.SendRecord, at time.Time) {
	err := d.bookkeep(ctx, "mark record sent", func(ctx context.Context) error {
		return d.sendLog.MarkSent(ctx, rec.ID, at)
	})
	if err != nil {
		d.logger.Error("record send outcome", slog.String("record_id", rec.ID), slog.Any("error", err))
		return
	}
	rec.Status, rec.SentAt = domain.SendSent, &at
	d.publish(ctx, domain.EventSent, rec, "")
}

func (d *Dispatcher) markFailed(ctx context.Context, rec *domain.SendRecord, reason string) {
	err := d.bookkeep(ctx, "mark record failed", func(ctx context.Context) error {
		return d.sendLog.MarkFailed(ctx, rec.ID, reason)
	})
	if err != nil {
		d.logger.Error("record send outcome", slog.String("record_id", rec.ID), slog.Any("error", err))
		return
	}
	rec.Status, rec.ErrorMessage = domain.SendFailed, reason
	d.publish(ctx, domain.EventFailed, rec, reason)
}

func (d *Dispatcher) publish(ctx context.Context, typ domain.SendEventType, rec *domain.SendRecord, reason string) {
	d.events.Publish(context.WithoutCancel(ctx), domain.SendEvent{
		Type:         typ,
		SendRecordID: rec.ID,
		CampaignID:   rec.CampaignID,
		LeadID:       rec.LeadID,
		Kind:         rec.Kind,
		Error:        reason,
		OccurredAt:   d.clock.Now(),
	})
}

// bookkeep retries a storage write a few times. It ignores cancellation
// of ctx so outcomes are recorded during shutdown.
func (d *Dispatcher) bookkeep(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	return retry.Do(context.WithoutCancel(ctx), retry.Policy{
		MaxAttempts: d.opts.StatusUpdateAttempts,
		Delay:       retry.Constant(d.opts.StatusUpdateDelay),
		Retryable: func(err error) bool {
			return !errors.Is(err, port.ErrRecordNotPending) &&
				!errors.Is(err, port.ErrJobNotPending) &&
				!errors.Is(err, port.ErrCampaignNotFound)
		},
		Sleep: d.sleep,
		OnRetry: func(n int, err error, _ time.Duration) {
			d.logger.Warn("retrying storage write", slog.String("op", op), slog.Int("retry", n), slog.Any("error", err))
		},
	}, func(ctx context.Context, _ int) error {
		return fn(ctx)
	})
}
