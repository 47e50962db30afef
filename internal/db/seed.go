package db

import (
	"context"
	"fmt"
	"log/slog"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

// Fixed ids keep Seed idempotent across restarts.
const (
	SeedGroupID    = "5f0c6c3e-8a7d-4b0e-9d43-2f3a1c7e9b10"
	SeedCampaignID = "9b2e4d61-3c5a-4f8e-a1d7-6e0b8c2f4a93"
)

type seedLead struct {
	business string
	city     string
	state    string
	category string
}

var seedLeads = []seedLead{
	{"Bright Smile Dental", "Austin", "TX", "Dentist"},
	{"Capitol Family Dentistry", "Austin", "TX", "Dentist"},
	{"Lone Star Orthodontics", "Austin", "TX", "Dentist"},
	{"Hill Country Plumbing", "Austin", "TX", "Plumber"},
	{"Riverwalk Dental Care", "San Antonio", "TX", "Dentist"},
	{"Alamo Pipe Works", "San Antonio", "TX", "Plumber"},
	{"Bayou City Smiles", "Houston", "TX", "Dentist"},
	{"Rose City Roofing", "Portland", "OR", "Roofer"},
	{"Willamette Dental Group", "Portland", "OR", "Dentist"},
	{"Mile High Plumbing", "Denver", "CO", "Plumber"},
}

// Seed loads demo leads, a group of Austin dentists and a draft campaign
// targeting that group.
func Seed(ctx context.Context, campaigns port.CampaignRepository, leads port.LeadRepository, logger *slog.Logger) error {
	group := domain.Group{ID: SeedGroupID, Name: "Austin dentists"}
	if err := leads.CreateGroup(ctx, &group); err != nil {
		return fmt.Errorf("seed group: %w", err)
	}

	for i, s := range seedLeads {
		l := domain.Lead{
			Email:        fmt.Sprintf("owner%02d@example.com", i+1),
			Name:         fmt.Sprintf("Owner %02d", i+1),
			BusinessName: s.business,
			WebsiteURL:   fmt.Sprintf("https://lead%02d.example.com", i+1),
			City:         s.city,
			State:        s.state,
			Category:     s.category,
		}
		if err := leads.UpsertLead(ctx, &l); err != nil {
			return fmt.Errorf("seed lead %s: %w", l.Email, err)
		}
		if s.city == "Austin" && s.category == "Dentist" {
			if err := leads.AddToGroup(ctx, l.ID, group.ID); err != nil {
				return fmt.Errorf("seed membership: %w", err)
			}
		}
	}

	c := domain.Campaign{
		ID:      SeedCampaignID,
		Name:    "Austin dentists intro",
		Subject: "A quick idea for {{BusinessName}}",
		Body: `<html><body>
<p>Hi {{BusinessName}},</p>
<p>We help {{Category}} practices in {{City}}, {{State}} book more appointments.</p>
<p><a href="https://example.com/demo">See a two minute demo</a></p>
</body></html>`,
		Targeting: domain.Targeting{GroupID: group.ID},
		FollowUps: map[domain.FollowUpType]domain.FollowUpTemplate{
			domain.FollowUp1: {
				DelayDays: domain.DefaultFollowUpDelays[domain.FollowUp1],
				Subject:   "Following up, {{BusinessName}}",
				Body:      `<p>Did you get a chance to look? <a href="https://example.com/demo">Demo</a></p>`,
			},
			domain.Reengagement: {
				DelayDays: domain.DefaultFollowUpDelays[domain.Reengagement],
				Subject:   "Still growing in {{City}}?",
				Body:      `<p>Happy to help whenever you are ready.</p>`,
			},
		},
	}
	if err := campaigns.CreateCampaign(ctx, &c); err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	logger.Info("seed data loaded",
		slog.Int("leads", len(seedLeads)),
		slog.String("group_id", group.ID),
		slog.String("campaign_id", c.ID),
	)
	return nil
}
