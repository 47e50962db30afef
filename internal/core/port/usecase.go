package port

import (
	"context"
	"time"

	"outreach/internal/core/domain"
)

// DispatchUseCase is the primary port for sending campaigns. Mock
// implementations are generated from this interface for handler tests.
type DispatchUseCase interface {
	// Send runs a dispatch of the campaign to its eligible leads, bounded
	// by the remaining daily quota. It returns ErrCampaignNotFound,
	// ErrAlreadySending, ErrInvalidTransition, ErrQuotaExhausted or
	// ErrNoEligibleLeads when the run is refused.
	Send(ctx context.Context, campaignID string) (*DispatchResult, error)
	// Pause requests a running dispatch to stop at its next checkpoint.
	Pause(ctx context.Context, campaignID string) error
	// Resume moves a paused campaign back to draft or active.
	Resume(ctx context.Context, campaignID string, to domain.CampaignStatus) error
	// Preview reports what Send would do without side effects.
	Preview(ctx context.Context, campaignID string) (*Preview, error)
	// TestSend renders the campaign against a synthetic lead and mails it
	// to the given address without touching the send log.
	TestSend(ctx context.Context, campaignID, email string) error
	// SweepFollowUps sends every due follow-up job.
	SweepFollowUps(ctx context.Context) (*SweepResult, error)
	// DispatchActive runs Send for each active campaign while quota lasts.
	DispatchActive(ctx context.Context) (*DailyReport, error)
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// TrackingUseCase records engagement reported by the tracking endpoints.
type TrackingUseCase interface {
	RecordOpen(ctx context.Context, leadID string) error
	RecordClick(ctx context.Context, leadID string) error
}

// DispatchResult summarizes a single dispatch run. Total counts the leads
// for which a send record was created.
type DispatchResult struct {
	CampaignID          string
	Sent                int
	Failed              int
	Total               int
	Paused              bool
	DailyQuotaRemaining int
}

// Preview is the side-effect free forecast of a dispatch.
type Preview struct {
	CampaignID      string
	TotalLeads      int
	AvailableLeads  int
	EmailsSentToday int
	DailyLimit      int
	RemainingQuota  int
	WillSend        int
}

// SweepResult summarizes a follow-up sweep.
type SweepResult struct {
	Total  int
	Sent   int
	Failed int
}

// CampaignRun is the outcome of one campaign inside a daily dispatch.
type CampaignRun struct {
	CampaignID string
	Name       string
	Skipped    string
	Error      string
	Result     *DispatchResult
}

// DailyReport summarizes a daily dispatch across active campaigns.
type DailyReport struct {
	Runs           []CampaignRun
	RemainingQuota int
}

// StatsResp counts send records by status.
type StatsResp struct {
	Pending int64
	Sent    int64
	Failed  int64
	Opened  int64
	Clicked int64
}

// Delivered counts records the provider accepted.
func (s StatsResp) Delivered() int64 {
	return s.Sent + s.Opened + s.Clicked
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}
