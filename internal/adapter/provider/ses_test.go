package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/core/port"
)

type fakeSES struct {
	in  *sesv2.SendEmailInput
	out *sesv2.SendEmailOutput
	err error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.in = in
	return f.out, f.err
}

func TestSESSenderBuildsRequest(t *testing.T) {
	fake := &fakeSES{out: &sesv2.SendEmailOutput{MessageId: aws.String("ses-123")}}
	s := &SESSender{client: fake, from: "Outreach <hello@outreach.test>", configurationSet: "tracking"}

	id, err := s.Send(context.Background(), testMessage)
	require.NoError(t, err)

	assert.Equal(t, "ses-123", id)
	assert.Equal(t, []string{"owner@acme.test"}, fake.in.Destination.ToAddresses)
	assert.Equal(t, testMessage.Subject, aws.ToString(fake.in.Content.Simple.Subject.Data))
	assert.Equal(t, testMessage.HTML, aws.ToString(fake.in.Content.Simple.Body.Html.Data))
	assert.Equal(t, "tracking", aws.ToString(fake.in.ConfigurationSetName))
	require.Len(t, fake.in.EmailTags, 2)
	assert.Equal(t, "campaign_id", aws.ToString(fake.in.EmailTags[0].Name))
}

func TestSESSenderClassifiesErrors(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		code      string
		temporary bool
	}{
		{"throttled", &smithy.GenericAPIError{Code: "TooManyRequestsException", Fault: smithy.FaultClient}, "TooManyRequestsException", true},
		{"rejected", &smithy.GenericAPIError{Code: "MessageRejected", Fault: smithy.FaultClient}, "MessageRejected", false},
		{"server fault", &smithy.GenericAPIError{Code: "Unknown", Fault: smithy.FaultServer}, "Unknown", true},
		{"deadline", context.DeadlineExceeded, "timeout", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &SESSender{client: &fakeSES{err: tc.err}, from: "hello@outreach.test"}
			_, err := s.Send(context.Background(), testMessage)

			var sendErr *port.SendError
			require.ErrorAs(t, err, &sendErr)
			assert.Equal(t, tc.code, sendErr.Code)
			assert.Equal(t, tc.temporary, sendErr.Temporary)
		})
	}
}

func TestSESSenderPassesThroughUnknownErrors(t *testing.T) {
	boom := errors.New("boom")
	s := &SESSender{client: &fakeSES{err: boom}, from: "hello@outreach.test"}

	_, err := s.Send(context.Background(), testMessage)
	assert.ErrorIs(t, err, boom)
	var sendErr *port.SendError
	assert.False(t, errors.As(err, &sendErr))
}
