package dispatch

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	appconfig "github.com/mzimmersmith/portfolio-api/internal/config"
)

// SESDispatcher sends email via AWS SES using the SDK v2. Used when the
// deployment prefers SES over the Resend API.
type SESDispatcher struct {
	client *sesv2.Client
}

// NewSESDispatcher creates an SES dispatcher with static credentials.
func NewSESDispatcher(ctx context.Context, cfg appconfig.SESConfig) (*SESDispatcher, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("SES credentials not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &SESDispatcher{client: sesv2.NewFromConfig(awsCfg)}, nil
}

// Send delivers the message through SES. An API rejection is returned as a
// *ProviderError so callers treat it like any other provider failure.
func (d *SESDispatcher) Send(ctx context.Context, msg *Message) (*Result, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
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
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	result, err := d.client.SendEmail(ctx, input)
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}

	id := ""
	if result.MessageId != nil {
		id = *result.MessageId
	}
	return &Result{ID: id}, nil
}
