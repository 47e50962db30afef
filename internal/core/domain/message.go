package domain

import "time"

// EmailMessage is a fully rendered message handed to a provider.
type EmailMessage struct {
	To         string
	Subject    string
	HTML       string
	CampaignID string
	LeadID     string
}

// SendEventType is published when a send record changes state.
type SendEventType string

const (
	EventSent    SendEventType = "sent"
	EventFailed  SendEventType = "failed"
	EventOpened  SendEventType = "opened"
	EventClicked SendEventType = "clicked"
)

// SendEvent describes a send record transition for downstream consumers.
type SendEvent struct {
	Type         SendEventType `json:"type"`
	SendRecordID string        `json:"sendRecordId"`
	CampaignID   string        `json:"campaignId"`
	LeadID       string        `json:"leadId"`
	Kind         SendKind      `json:"kind"`
	Error        string        `json:"error,omitempty"`
	OccurredAt   time.Time     `json:"occurredAt"`
}
