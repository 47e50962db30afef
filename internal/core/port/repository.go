package port

import (
	"context"
	"time"

	"outreach/internal/core/domain"
)

// CampaignRepository stores campaigns and guards their lifecycle.
type CampaignRepository interface {
	// GetCampaign returns nil, nil when the campaign does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// GetCampaignStatus returns ErrCampaignNotFound when the campaign does
	// not exist.
	GetCampaignStatus(ctx context.Context, id string) (domain.CampaignStatus, error)
	ListCampaignsByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error)
	// TransitionStatus moves the campaign to `to` only when its current
	// status is one of `from`. It reports whether the update happened and
	// must be atomic with respect to concurrent callers.
	TransitionStatus(ctx context.Context, id string, from []domain.CampaignStatus, to domain.CampaignStatus) (bool, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
}

// LeadRepository stores leads and their group membership.
type LeadRepository interface {
	// FindBySegment returns leads matching every non-empty targeting field,
	// ordered by creation time then id.
	FindBySegment(ctx context.Context, t domain.Targeting) ([]domain.Lead, error)
	// GetLead returns nil, nil when the lead does not exist.
	GetLead(ctx context.Context, id string) (*domain.Lead, error)
	// UpsertLead inserts or updates a lead keyed by its normalized email.
	// The stored id and timestamps are written back into l.
	UpsertLead(ctx context.Context, l *domain.Lead) error
	CreateGroup(ctx context.Context, g *domain.Group) error
	AddToGroup(ctx context.Context, leadID, groupID string) error
}

// SendLogRepository is the durable send log.
type SendLogRepository interface {
	CreateRecord(ctx context.Context, rec *domain.SendRecord) error
	// MarkSent and MarkFailed return ErrRecordNotPending when the record
	// has already left the pending state.
	MarkSent(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id string, reason string) error
	// DeliveredLeadIDs returns the leads that have a delivered record for
	// the campaign on any day.
	DeliveredLeadIDs(ctx context.Context, campaignID string) (map[string]struct{}, error)
	// CountPrimaryDelivered counts delivered primary records with sent_at
	// in [from, to).
	CountPrimaryDelivered(ctx context.Context, from, to time.Time) (int, error)
	// MarkLatestOpened marks the lead's most recent sent, not yet opened
	// record as opened. It returns nil, nil when nothing matched.
	MarkLatestOpened(ctx context.Context, leadID string, at time.Time) (*domain.SendRecord, error)
	// MarkLatestClicked marks the lead's most recent sent or opened record
	// as clicked. It returns nil, nil when nothing matched.
	MarkLatestClicked(ctx context.Context, leadID string, at time.Time) (*domain.SendRecord, error)
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// FollowUpRepository stores scheduled follow-ups.
type FollowUpRepository interface {
	CreateJob(ctx context.Context, job *domain.FollowUpJob) error
	// DueJobs returns pending jobs scheduled at or before now, oldest first.
	DueJobs(ctx context.Context, now time.Time) ([]domain.FollowUpJob, error)
	MarkJobSent(ctx context.Context, id string, at time.Time) error
	MarkJobFailed(ctx context.Context, id string, reason string) error
}
