package domain

import (
	"slices"
	"strings"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignSending   CampaignStatus = "sending"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// campaignTransitions lists the statuses each status may move to.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:     {CampaignSending},
	CampaignActive:    {CampaignSending},
	CampaignCompleted: {CampaignSending},
	CampaignSending:   {CampaignActive, CampaignCompleted, CampaignDraft, CampaignPaused},
	CampaignPaused:    {CampaignDraft, CampaignActive},
}

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	_, ok := campaignTransitions[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle allows s -> next.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	return slices.Contains(campaignTransitions[s], next)
}

// SourcesOf returns every status that may transition into target, in a
// stable order.
func SourcesOf(target CampaignStatus) []CampaignStatus {
	var out []CampaignStatus
	for _, s := range []CampaignStatus{CampaignDraft, CampaignSending, CampaignActive, CampaignPaused, CampaignCompleted} {
		if s.CanTransitionTo(target) {
			out = append(out, s)
		}
	}
	return out
}

// Targeting narrows the recipients of a campaign. Empty fields do not
// filter. A targeting with every field empty addresses all leads.
type Targeting struct {
	City     string
	State    string
	Category string
	GroupID  string
}

// IsBroadcast reports whether no filter is set.
func (t Targeting) IsBroadcast() bool {
	return t.City == "" && t.State == "" && t.Category == "" && t.GroupID == ""
}

// FollowUpType names one of the fixed follow-up slots of a campaign.
type FollowUpType string

const (
	FollowUp1    FollowUpType = "followup1"
	FollowUp2    FollowUpType = "followup2"
	FollowUp3    FollowUpType = "followup3"
	FollowUp4    FollowUpType = "followup4"
	Reengagement FollowUpType = "reengagement"
)

// FollowUpTypes lists the slots in scheduling order.
var FollowUpTypes = []FollowUpType{FollowUp1, FollowUp2, FollowUp3, FollowUp4, Reengagement}

// Valid reports whether t is one of the known slots.
func (t FollowUpType) Valid() bool {
	return slices.Contains(FollowUpTypes, t)
}

// DefaultFollowUpDelays holds the suggested delay in days for each slot.
var DefaultFollowUpDelays = map[FollowUpType]int{
	FollowUp1:    3,
	FollowUp2:    7,
	FollowUp3:    10,
	FollowUp4:    14,
	Reengagement: 30,
}

// FollowUpTemplate is the content of a single follow-up slot.
type FollowUpTemplate struct {
	DelayDays int    `json:"delayDays"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// HasContent reports whether both subject and body are set.
func (f FollowUpTemplate) HasContent() bool {
	return strings.TrimSpace(f.Subject) != "" && strings.TrimSpace(f.Body) != ""
}

// Schedulable reports whether a job should be created for this slot
// after a successful primary send.
func (f FollowUpTemplate) Schedulable() bool {
	return f.DelayDays > 0 && f.HasContent()
}

// Campaign is a named outbound message with targeting rules and optional
// follow-up content.
type Campaign struct {
	ID        string
	Name      string
	Subject   string
	Body      string
	Targeting Targeting
	FollowUps map[FollowUpType]FollowUpTemplate
	Status    CampaignStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FollowUp returns the template of the given slot, or the zero value when
// the slot is not configured.
func (c *Campaign) FollowUp(t FollowUpType) FollowUpTemplate {
	if c.FollowUps == nil {
		return FollowUpTemplate{}
	}
	return c.FollowUps[t]
}
