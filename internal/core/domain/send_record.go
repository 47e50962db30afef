package domain

import (
	"slices"
	"time"
)

// SendStatus is the delivery state of a single send attempt.
type SendStatus string

const (
	SendPending SendStatus = "pending"
	SendSent    SendStatus = "sent"
	SendFailed  SendStatus = "failed"
	SendOpened  SendStatus = "opened"
	SendClicked SendStatus = "clicked"
)

var sendTransitions = map[SendStatus][]SendStatus{
	SendPending: {SendSent, SendFailed},
	SendSent:    {SendOpened, SendClicked},
	SendOpened:  {SendClicked},
}

// CanTransitionTo reports whether s -> next is allowed. Failed and clicked
// are terminal.
func (s SendStatus) CanTransitionTo(next SendStatus) bool {
	return slices.Contains(sendTransitions[s], next)
}

// Delivered reports whether the provider accepted the message. Opened and
// clicked imply a prior successful send.
func (s SendStatus) Delivered() bool {
	return s == SendSent || s == SendOpened || s == SendClicked
}

// DeliveredStatuses lists every status that counts as delivered.
var DeliveredStatuses = []SendStatus{SendSent, SendOpened, SendClicked}

// SendKind separates first-touch sends from follow-ups. Only primary sends
// count against the daily quota.
type SendKind string

const (
	SendPrimary  SendKind = "primary"
	SendFollowUp SendKind = "followup"
)

// SendRecord is the durable log entry of one attempt to mail one lead.
type SendRecord struct {
	ID           string
	CampaignID   string
	LeadID       string
	Kind         SendKind
	FollowUpID   *string
	Status       SendStatus
	SentAt       *time.Time
	OpenedAt     *time.Time
	ClickedAt    *time.Time
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
