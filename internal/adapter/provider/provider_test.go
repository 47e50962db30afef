package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/config/configs"
)

func TestNewSelectsProvider(t *testing.T) {
	s, err := New(context.Background(), configs.Provider{Kind: "log"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	s, err = New(context.Background(), configs.Provider{
		Kind:      "SMTP",
		FromEmail: "hello@outreach.test",
		SMTP:      configs.SMTP{Host: "smtp.outreach.test", Port: 587},
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	_, err = New(context.Background(), configs.Provider{Kind: "carrier-pigeon"}, nil)
	assert.Error(t, err)
}

func TestLogSenderAcceptsEverything(t *testing.T) {
	id, err := NewLogSender(nil).Send(context.Background(), testMessage)
	require.NoError(t, err)
	assert.Contains(t, id, "log-")
}
