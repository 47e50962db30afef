package db

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/adapter/memory"
	"outreach/internal/core/domain"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Seed(ctx, store, store, logger))
	require.NoError(t, Seed(ctx, store, store, logger))

	all, err := store.FindBySegment(ctx, domain.Targeting{})
	require.NoError(t, err)
	assert.Len(t, all, len(seedLeads))

	c, err := store.GetCampaign(ctx, SeedCampaignID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.CampaignDraft, c.Status)

	members, err := store.FindBySegment(ctx, c.Targeting)
	require.NoError(t, err)
	require.Len(t, members, 3)
	for _, l := range members {
		assert.Equal(t, "Austin", l.City)
		assert.Equal(t, "Dentist", l.Category)
	}

	drafts, err := store.ListCampaignsByStatus(ctx, domain.CampaignDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}
