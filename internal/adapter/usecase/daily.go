package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

// DispatchActive sends every active campaign in turn, sharing one daily
// quota. Campaigns without eligible leads are skipped.
func (d *Dispatcher) DispatchActive(ctx context.Context) (*port.DailyReport, error) {
	remaining, err := d.remainingQuota(ctx)
	if err != nil {
		return nil, err
	}
	report := &port.DailyReport{RemainingQuota: remaining}
	if remaining <= 0 {
		return report, port.ErrQuotaExhausted
	}

	campaigns, err := d.campaigns.ListCampaignsByStatus(ctx, domain.CampaignActive)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}

	for _, c := range campaigns {
		run := port.CampaignRun{CampaignID: c.ID, Name: c.Name}
		if report.RemainingQuota <= 0 {
			run.Skipped = port.ErrQuotaExhausted.Error()
			report.Runs = append(report.Runs, run)
			continue
		}

		res, err := d.Send(ctx, c.ID)
		run.Result = res
		switch {
		case err == nil:
			report.RemainingQuota = res.DailyQuotaRemaining
		case errors.Is(err, port.ErrQuotaExhausted):
			run.Skipped = err.Error()
			report.RemainingQuota = 0
		case errors.Is(err, port.ErrNoEligibleLeads),
			errors.Is(err, port.ErrAlreadySending),
			errors.Is(err, port.ErrInvalidTransition),
			errors.Is(err, port.ErrCampaignNotFound):
			run.Skipped = err.Error()
		default:
			run.Error = err.Error()
			if res != nil {
				report.RemainingQuota = res.DailyQuotaRemaining
			}
		}
		report.Runs = append(report.Runs, run)

		if ctx.Err() != nil {
			return report, ctx.Err()
		}
	}

	d.logger.Info("daily dispatch finished",
		slog.Int("campaigns", len(campaigns)),
		slog.Int("quota_remaining", report.RemainingQuota),
	)
	return report, nil
}
