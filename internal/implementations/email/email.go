package email

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type SESSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender string
}

func NewSESSender(awsConfig aws.Config, sender string) *SESSender {
	return &SESSender{
		ses:    ses.NewFromConfig(awsConfig),
		sender: sender,
	}
}

func (s *SESSender) Send(ctx context.Context, to string, subject string, body string) error {
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{to},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String(charset),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String(charset),
					},
				},
			},
		},
	)
	return err
}
