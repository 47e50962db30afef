package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
	"outreach/internal/core/port/mocks"
)

func followUpCampaign() domain.Campaign {
	return domain.Campaign{
		Name: "spring",
		FollowUps: map[domain.FollowUpType]domain.FollowUpTemplate{
			domain.FollowUp1: {DelayDays: 3, Subject: "Checking in, {{BusinessName}}", Body: "<p>Any thoughts?</p>"},
			domain.FollowUp2: {DelayDays: 7, Subject: "One more", Body: "<p>Last try</p>"},
		},
	}
}

// TestSweepSendsDueFollowUps sends jobs whose time has come and leaves
// the rest pending.
func TestSweepSendsDueFollowUps(t *testing.T) {
	var subjects []string
	sender := mocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, msg domain.EmailMessage) { subjects = append(subjects, msg.Subject) }).
		Return("id", nil).Times(4)

	env := newTestEnv(t, sender, testOptions())
	c := env.addCampaign(t, followUpCampaign())
	env.addLeads(t, 2, nil)

	_, err := env.svc.Send(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, env.store.Jobs(), 4)

	env.clock.Advance(4 * 24 * time.Hour)
	res, err := env.svc.SweepFollowUps(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &port.SweepResult{Total: 2, Sent: 2, Failed: 0}, res)
	assert.Equal(t, []string{"Checking in, Business 00", "Checking in, Business 01"}, subjects[2:])

	sent := 0
	for _, j := range env.store.Jobs() {
		if j.Status == domain.FollowUpSent {
			sent++
			assert.Equal(t, domain.FollowUp1, j.Type)
			require.NotNil(t, j.SentAt)
		}
	}
	assert.Equal(t, 2, sent)

	followUps := 0
	for _, r := range env.store.Records() {
		if r.Kind == domain.SendFollowUp {
			followUps++
			require.NotNil(t, r.FollowUpID)
			assert.Equal(t, domain.SendSent, r.Status)
		}
	}
	assert.Equal(t, 2, followUps)
}

// TestSweepDoesNotConsumeQuota keeps follow-ups out of the daily count.
func TestSweepDoesNotConsumeQuota(t *testing.T) {
	sender := mocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return("id", nil)

	env := newTestEnv(t, sender, testOptions())
	c := env.addCampaign(t, followUpCampaign())
	env.addLeads(t, 2, nil)
	_, err := env.svc.Send(context.Background(), c.ID)
	require.NoError(t, err)

	env.clock.Advance(3 * 24 * time.Hour)
	before, err := env.svc.sentToday(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, before)

	_, err = env.svc.SweepFollowUps(context.Background())
	require.NoError(t, err)

	after, err := env.svc.sentToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, after)
}

// TestSweepFailsClearedSlot marks a job failed when its content is gone.
func TestSweepFailsClearedSlot(t *testing.T) {
	sender := mocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return("id", nil).Once()

	env := newTestEnv(t, sender, testOptions())
	c := env.addCampaign(t, followUpCampaign())
	env.addLeads(t, 1, nil)
	_, err := env.svc.Send(context.Background(), c.ID)
	require.NoError(t, err)

	current, err := env.store.GetCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	current.FollowUps[domain.FollowUp1] = domain.FollowUpTemplate{DelayDays: 3}
	require.NoError(t, env.store.CreateCampaign(context.Background(), current))

	env.clock.Advance(3 * 24 * time.Hour)
	res, err := env.svc.SweepFollowUps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)

	for _, j := range env.store.Jobs() {
		if j.Type == domain.FollowUp1 {
			assert.Equal(t, domain.FollowUpFailed, j.Status)
			assert.Equal(t, "follow-up email not configured", j.ErrorMessage)
		}
	}
}

// TestSweepUsesCurrentTemplate reads slot content at send time.
func TestSweepUsesCurrentTemplate(t *testing.T) {
	var last domain.EmailMessage
	sender := mocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, msg domain.EmailMessage) { last = msg }).
		Return("id", nil).Twice()

	env := newTestEnv(t, sender, testOptions())
	c := env.addCampaign(t, followUpCampaign())
	env.addLeads(t, 1, nil)
	_, err := env.svc.Send(context.Background(), c.ID)
	require.NoError(t, err)

	current, err := env.store.GetCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	current.FollowUps[domain.FollowUp1] = domain.FollowUpTemplate{DelayDays: 3, Subject: "Edited", Body: "<p>new</p>"}
	require.NoError(t, env.store.CreateCampaign(context.Background(), current))

	env.clock.Advance(3 * 24 * time.Hour)
	_, err = env.svc.SweepFollowUps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Edited", last.Subject)
}

// TestSweepRecordsProviderFailure fails both the job and its record.
func TestSweepRecordsProviderFailure(t *testing.T) {
	sender := mocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return("id", nil).Once()
	sender.EXPECT().Send(mock.Anything, mock.Anything).
		Return("", &port.SendError{Code: "MessageRejected", Err: errors.New("address blacklisted")}).Once()

	env := newTestEnv(t, sender, testOptions())
	c := env.addCampaign(t, followUpCampaign())
	env.addLeads(t, 1, nil)
	_, err := env.svc.Send(context.Background(), c.ID)
	require.NoError(t, err)

	env.clock.Advance(3 * 24 * time.Hour)
	res, err := env.svc.SweepFollowUps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &port.SweepResult{Total: 1, Sent: 0, Failed: 1}, res)

	recs := env.store.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, domain.SendFailed, recs[1].Status)
	assert.Equal(t, domain.SendFollowUp, recs[1].Kind)
}

// TestSweepFailsOrphanedJob handles jobs whose lead was removed.
func TestSweepFailsOrphanedJob(t *testing.T) {
	env := newTestEnv(t, mocks.NewMockSender(t), testOptions())
	c := env.addCampaign(t, followUpCampaign())
	require.NoError(t, env.store.CreateJob(context.Background(), &domain.FollowUpJob{
		CampaignID:   c.ID,
		LeadID:       "gone",
		Type:         domain.FollowUp1,
		ScheduledFor: testNow.Add(-time.Minute),
	}))

	res, err := env.svc.SweepFollowUps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "campaign or lead no longer exists", env.store.Jobs()[0].ErrorMessage)
}
