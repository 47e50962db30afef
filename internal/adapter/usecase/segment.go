package usecase

import (
	"context"
	"fmt"

	"outreach/internal/core/domain"
)

type segment struct {
	Matching []domain.Lead
	Eligible []domain.Lead
}

// resolveSegment returns the leads matching the campaign targeting and
// the subset that has not been sent this campaign yet, in stable order.
func (d *Dispatcher) resolveSegment(ctx context.Context, c *domain.Campaign) (segment, error) {
	matching, err := d.leads.FindBySegment(ctx, c.Targeting)
	if err != nil {
		return segment{}, fmt.Errorf("find segment leads: %w", err)
	}
	delivered, err := d.sendLog.DeliveredLeadIDs(ctx, c.ID)
	if err != nil {
		return segment{}, fmt.Errorf("load delivered leads: %w", err)
	}
	eligible := make([]domain.Lead, 0, len(matching))
	for _, l := range matching {
		if _, ok := delivered[l.ID]; !ok {
			eligible = append(eligible, l)
		}
	}
	return segment{Matching: matching, Eligible: eligible}, nil
}
