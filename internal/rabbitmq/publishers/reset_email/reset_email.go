package resetemail

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/resettoken"
	"accounts/internal/rabbitmq"
	"accounts/internal/rabbitmq/schema"
	"context"
	"net/url"
	"regexp"

	"github.com/rabbitmq/amqp091-go"
)

var tokenPlaceholder = regexp.MustCompile(`\$\{\{\s*token\s*\}\}`)

// RenderBody substitutes the reset link for every token placeholder
// in the message template.
func RenderBody(template string, baseURL url.URL, token resettoken.Value) string {
	link := baseURL.JoinPath(string(token)).String()
	return tokenPlaceholder.ReplaceAllString(template, link)
}

type RabbitMQ struct {
	log      logging.Logger
	channel  *rabbitmq.Channel
	queue    string
	baseURL  url.URL
	subject  string
	template string
}

func NewRabbitMQ(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	baseURL url.URL,
	subject string,
	template string,
) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{
		log:      log,
		channel:  channel,
		queue:    queue,
		baseURL:  baseURL,
		subject:  subject,
		template: template,
	}
}

func (s *RabbitMQ) SendResetLink(ctx context.Context, token resettoken.ResetToken) error {
	message := schema.ResetEmail{
		To:      string(token.Email),
		Subject: s.subject,
		Body:    RenderBody(s.template, s.baseURL, token.Value),
	}
	encoded, err := message.Marshal()
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         encoded,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}
	s.log.Info(
		ctx,
		"Password reset email has been published.",
		logging.Entry("queue", s.queue),
		logging.Entry("to", token.Email),
	)
	return nil
}
