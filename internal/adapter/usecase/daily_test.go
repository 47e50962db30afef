package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
	"outreach/internal/core/port/mocks"
)

// TestDispatchActiveSharesQuota runs active campaigns in order until the
// shared quota runs out.
func TestDispatchActiveSharesQuota(t *testing.T) {
	sender := mocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return("id", nil).Times(3)

	opts := testOptions()
	opts.DailyLimit = 3
	env := newTestEnv(t, sender, opts)
	env.addLeads(t, 2, func(i int, l *domain.Lead) { l.City = "Austin" })
	env.addLeads(t, 2, func(i int, l *domain.Lead) {
		l.Email = "d" + l.Email
		l.City = "Dallas"
	})
	env.addLeads(t, 1, func(i int, l *domain.Lead) {
		l.Email = "h" + l.Email
		l.City = "Houston"
	})

	austin := env.addCampaign(t, domain.Campaign{Name: "austin", Status: domain.CampaignActive, Targeting: domain.Targeting{City: "Austin"}})
	empty := env.addCampaign(t, domain.Campaign{Name: "empty", Status: domain.CampaignActive, Targeting: domain.Targeting{City: "Nowhere"}})
	dallas := env.addCampaign(t, domain.Campaign{Name: "dallas", Status: domain.CampaignActive, Targeting: domain.Targeting{City: "Dallas"}})
	houston := env.addCampaign(t, domain.Campaign{Name: "houston", Status: domain.CampaignActive, Targeting: domain.Targeting{City: "Houston"}})
	env.addCampaign(t, domain.Campaign{Name: "draft"})

	report, err := env.svc.DispatchActive(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Runs, 4)
	byID := map[string]port.CampaignRun{}
	for _, r := range report.Runs {
		byID[r.CampaignID] = r
	}
	assert.Equal(t, 2, byID[austin.ID].Result.Sent)
	assert.Equal(t, port.ErrNoEligibleLeads.Error(), byID[empty.ID].Skipped)
	assert.Equal(t, 1, byID[dallas.ID].Result.Sent)
	assert.Equal(t, port.ErrQuotaExhausted.Error(), byID[houston.ID].Skipped)
	assert.Equal(t, 0, report.RemainingQuota)

	for _, id := range []string{austin.ID, empty.ID, dallas.ID, houston.ID} {
		assert.Equal(t, domain.CampaignActive, env.status(t, id))
	}
}

func TestDispatchActiveWithoutQuota(t *testing.T) {
	opts := testOptions()
	opts.DailyLimit = 0
	env := newTestEnv(t, mocks.NewMockSender(t), opts)

	report, err := env.svc.DispatchActive(context.Background())
	assert.ErrorIs(t, err, port.ErrQuotaExhausted)
	require.NotNil(t, report)
	assert.Empty(t, report.Runs)
}
