package resetemail

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/rabbitmq"
	"accounts/internal/rabbitmq/schema"
	"context"

	"github.com/rabbitmq/amqp091-go"
)

// Mailer delivers a rendered password reset email.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	mailer  Mailer
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	mailer Mailer,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if mailer == nil {
		panic(e.NewNilArgumentError("mailer"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, mailer: mailer}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			email := &schema.ResetEmail{}
			if err := email.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal password reset email.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got password reset email for sending.",
				logging.Entry("to", email.To),
			)
			if err := c.mailer.Send(context.Background(), email.To, email.Subject, email.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not send password reset email.",
					logging.Entry("to", email.To),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
