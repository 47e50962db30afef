package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/core/domain"
)

func TestFollowUpsColumn(t *testing.T) {
	in := map[domain.FollowUpType]domain.FollowUpTemplate{
		domain.FollowUp1:    {DelayDays: 3, Subject: "Checking in", Body: "<p>Hi</p>"},
		domain.Reengagement: {DelayDays: 30, Subject: "Still there?", Body: "<p>Hello again</p>"},
	}
	raw, err := encodeFollowUps(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"followup1": {"delayDays": 3, "subject": "Checking in", "body": "<p>Hi</p>"},
		"reengagement": {"delayDays": 30, "subject": "Still there?", "body": "<p>Hello again</p>"}
	}`, string(raw))

	out, err := decodeFollowUps(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFollowUpsColumnEdgeCases(t *testing.T) {
	raw, err := encodeFollowUps(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))

	out, err := decodeFollowUps([]byte(`{}`))
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = decodeFollowUps([]byte(`{"followup9": {"delayDays": 1}, "followup2": {"delayDays": 7}}`))
	require.NoError(t, err)
	assert.Equal(t, map[domain.FollowUpType]domain.FollowUpTemplate{
		domain.FollowUp2: {DelayDays: 7},
	}, out)

	_, err = decodeFollowUps([]byte(`[`))
	assert.Error(t, err)
}

func TestStatusStrings(t *testing.T) {
	got := statusStrings(domain.SourcesOf(domain.CampaignSending))
	assert.Equal(t, []string{"draft", "active", "completed"}, got)
	assert.Equal(t, []string{"sent", "opened", "clicked"}, statusStrings(domain.DeliveredStatuses))
}
