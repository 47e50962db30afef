package port

import "errors"

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrAlreadySending    = errors.New("campaign is already sending")
	ErrInvalidTransition = errors.New("invalid campaign status transition")
	ErrQuotaExhausted    = errors.New("daily email quota reached")
	ErrNoEligibleLeads   = errors.New("no eligible leads for campaign")
	ErrInvalidEmail      = errors.New("invalid email address format")
	ErrRecordNotPending  = errors.New("send record is not pending")
	ErrJobNotPending     = errors.New("follow-up job is not pending")
	ErrUnknownLead       = errors.New("unknown lead")
)
