package usecase

import (
	"context"
	"fmt"
	"time"
)

// quotaWindow returns the calendar day containing now in loc.
func quotaWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// sentToday counts primary sends delivered in the current quota window.
func (d *Dispatcher) sentToday(ctx context.Context) (int, error) {
	from, to := quotaWindow(d.clock.Now(), d.opts.Location)
	n, err := d.sendLog.CountPrimaryDelivered(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("count sends today: %w", err)
	}
	return n, nil
}

// remainingQuota returns how many primary sends are still allowed today.
func (d *Dispatcher) remainingQuota(ctx context.Context) (int, error) {
	used, err := d.sentToday(ctx)
	if err != nil {
		return 0, err
	}
	return max(d.opts.DailyLimit-used, 0), nil
}
