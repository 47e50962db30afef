package domain

import "time"

// FollowUpStatus is the state of a scheduled follow-up.
type FollowUpStatus string

const (
	FollowUpPending FollowUpStatus = "pending"
	FollowUpSent    FollowUpStatus = "sent"
	FollowUpFailed  FollowUpStatus = "failed"
)

// FollowUpJob is a deferred send of one follow-up slot to one lead.
type FollowUpJob struct {
	ID           string
	CampaignID   string
	LeadID       string
	SendRecordID string
	Type         FollowUpType
	ScheduledFor time.Time
	Status       FollowUpStatus
	SentAt       *time.Time
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
