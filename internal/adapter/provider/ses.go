package provider

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"

	"outreach/internal/config/configs"
	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

// sesTemporaryCodes are SES error codes that clear up on their own.
var sesTemporaryCodes = map[string]bool{
	"TooManyRequestsException": true,
	"LimitExceededException":   true,
	"Throttling":               true,
	"ThrottlingException":      true,
	"RequestTimeout":           true,
	"ServiceUnavailable":       true,
	"InternalFailure":          true,
}

type sesAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends through Amazon SES v2.
type SESSender struct {
	client           sesAPI
	from             string
	replyTo          string
	configurationSet string
	timeout          time.Duration
}

func NewSESSender(ctx context.Context, cfg configs.SES, from mail.Address, replyTo string, timeout time.Duration) (*SESSender, error) {
	if from.Address == "" {
		return nil, errors.New("sender address is not configured")
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &SESSender{
		client:           sesv2.NewFromConfig(awsCfg),
		from:             from.String(),
		replyTo:          replyTo,
		configurationSet: cfg.ConfigurationSet,
		timeout:          timeout,
	}, nil
}

func (s *SESSender) Send(ctx context.Context, msg domain.EmailMessage) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if msg.CampaignID != "" {
		input.EmailTags = append(input.EmailTags, types.MessageTag{Name: aws.String("campaign_id"), Value: aws.String(msg.CampaignID)})
	}
	if msg.LeadID != "" {
		input.EmailTags = append(input.EmailTags, types.MessageTag{Name: aws.String("lead_id"), Value: aws.String(msg.LeadID)})
	}
	if s.replyTo != "" {
		input.ReplyToAddresses = []string{s.replyTo}
	}
	if s.configurationSet != "" {
		input.ConfigurationSetName = aws.String(s.configurationSet)
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return "", classifySES(err)
	}
	return aws.ToString(out.MessageId), nil
}

// classifySES maps smithy API error codes onto SendError. Server faults
// are treated as transient.
func classifySES(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return &port.SendError{
			Code:      code,
			Temporary: sesTemporaryCodes[code] || apiErr.ErrorFault() == smithy.FaultServer,
			Err:       err,
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &port.SendError{Code: "timeout", Temporary: true, Err: err}
	}
	return err
}
