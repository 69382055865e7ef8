package main

import (
	"accounts/internal/app/consumers"
	"accounts/internal/app/deps"
	"accounts/internal/core/domain/logging"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	shutdownConsumers := consumers.InitConsumers(deps)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Mailer has started.",
		logging.Entry("queue", deps.Config.RabbitmqResetEmailQueue),
	)

	<-stopCh
	log.Info(context.Background(), "Stopping mailer.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
