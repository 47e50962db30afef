package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

func TestUpsertLead_MatchesEmailCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first := &domain.Lead{Email: "Owner@Example.com", BusinessName: "Acme"}
	require.NoError(t, s.UpsertLead(ctx, first))

	second := &domain.Lead{Email: " owner@example.COM ", BusinessName: "Acme Ltd"}
	require.NoError(t, s.UpsertLead(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "owner@example.com", second.Email)
	leads, err := s.FindBySegment(ctx, domain.Targeting{})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Acme Ltd", leads[0].BusinessName)
	assert.Equal(t, "owner@example.com", leads[0].Email)

	stored, err := s.GetLead(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", stored.Email)
}

func TestFindBySegment_Filters(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	g := &domain.Group{Name: "vip"}
	require.NoError(t, s.CreateGroup(ctx, g))
	austin := &domain.Lead{Email: "a@x.io", City: "Austin", State: "TX", Category: "Dentist"}
	dallas := &domain.Lead{Email: "d@x.io", City: "Dallas", State: "TX", Category: "Dentist"}
	require.NoError(t, s.UpsertLead(ctx, austin))
	require.NoError(t, s.UpsertLead(ctx, dallas))
	require.NoError(t, s.AddToGroup(ctx, dallas.ID, g.ID))

	got, err := s.FindBySegment(ctx, domain.Targeting{City: "austin"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, austin.ID, got[0].ID)

	got, err = s.FindBySegment(ctx, domain.Targeting{State: "TX", GroupID: g.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, dallas.ID, got[0].ID)

	got, err = s.FindBySegment(ctx, domain.Targeting{State: "TX"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSendRecordTransitions(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	rec := &domain.SendRecord{CampaignID: "c1", LeadID: "l1", Kind: domain.SendPrimary, Status: domain.SendPending}
	require.NoError(t, s.CreateRecord(ctx, rec))

	opened, err := s.MarkLatestOpened(ctx, "l1", now)
	require.NoError(t, err)
	assert.Nil(t, opened, "pending records cannot be opened")

	require.NoError(t, s.MarkSent(ctx, rec.ID, now))
	assert.ErrorIs(t, s.MarkFailed(ctx, rec.ID, "late"), port.ErrRecordNotPending)

	opened, err = s.MarkLatestOpened(ctx, "l1", now.Add(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, opened)
	assert.Equal(t, domain.SendOpened, opened.Status)

	clicked, err := s.MarkLatestClicked(ctx, "l1", now.Add(2*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, clicked)
	assert.Equal(t, domain.SendClicked, clicked.Status)
	assert.NotNil(t, clicked.OpenedAt)

	n, err := s.CountPrimaryDelivered(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTransitionStatus_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c := &domain.Campaign{Name: "spring"}
	require.NoError(t, s.CreateCampaign(ctx, c))

	ok, err := s.TransitionStatus(ctx, c.ID, []domain.CampaignStatus{domain.CampaignDraft}, domain.CampaignSending)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.TransitionStatus(ctx, c.ID, []domain.CampaignStatus{domain.CampaignDraft}, domain.CampaignSending)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.GetCampaignStatus(ctx, "missing")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}
