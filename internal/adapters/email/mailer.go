package email

import (
	"context"
	"fmt"
	"log"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"venuehub/internal/domain"
)

// SESConfig holds AWS SES credentials and region.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MailerConfig selects and configures the outgoing mail provider.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// NewMailer builds the mailer for the configured provider. "ses" sends
// through AWS SES; anything else falls back to a no-op mailer that only
// logs, so development environments need no mail credentials.
func NewMailer(cfg MailerConfig) (domain.Mailer, error) {
	switch cfg.Provider {
	case "ses":
		from := (&mail.Address{Name: cfg.FromName, Address: cfg.FromAddress}).String()
		awsCfg := aws.Config{
			Region: cfg.SES.Region,
			Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
				cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, "")),
		}
		return &sesMailer{client: ses.NewFromConfig(awsCfg), from: from}, nil
	case "noop", "":
		return noopMailer{}, nil
	default:
		log.Printf("[MAILER] unknown provider %q, falling back to noop", cfg.Provider)
		return noopMailer{}, nil
	}
}

type sesMailer struct {
	client *ses.Client
	from   string
}

func (m *sesMailer) Send(to, subject, html, text string) error {
	body := &types.Body{}
	if html != "" {
		body.Html = utf8Content(html)
	}
	if text != "" {
		body.Text = utf8Content(text)
	}
	_, err := m.client.SendEmail(context.Background(), &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: utf8Content(subject),
			Body:    body,
		},
	})
	if err != nil {
		return fmt.Errorf("ses send to %s: %w", to, err)
	}
	return nil
}

func utf8Content(data string) *types.Content {
	return &types.Content{Data: aws.String(data), Charset: aws.String("UTF-8")}
}

type noopMailer struct{}

func (noopMailer) Send(to, subject, html, text string) error {
	log.Printf("[MAILER] noop send to=%s subject=%q", to, subject)
	return nil
}
