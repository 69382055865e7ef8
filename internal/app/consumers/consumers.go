package consumers

import (
	"accounts/internal/app/deps"
	dl "accounts/internal/core/domain/logging"
	resetemail "accounts/internal/rabbitmq/consumers/reset_email"
	"context"
)

func initResetEmailConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqResetEmailQueue
	if _, err := rabbitmqChannel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	resetEmailConsumer := resetemail.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.Mailer,
	)
	if err = resetEmailConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownResetEmailConsumer := initResetEmailConsumer(deps)

	return func() {
		shutdownResetEmailConsumer()
	}
}
