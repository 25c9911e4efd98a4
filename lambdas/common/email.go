package common

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailInfo struct {
	From    string
	To      []string
	Subject string
	Text    string
}

// SendEmail delivers a plain-text notification via SES.
func SendEmail(ctx context.Context, info *EmailInfo) error {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := ses.NewFromConfig(cfg)

	_, err = client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(info.From),
		Destination: &types.Destination{ToAddresses: info.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(info.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(info.Text)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %v: %w", info.To, err)
	}
	return nil
}
