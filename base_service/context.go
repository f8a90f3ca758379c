package base_service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// CreateSignalCancelContext returns a context cancelled on SIGINT or SIGTERM.
// The returned function releases the signal handler.
func CreateSignalCancelContext() (context.Context, context.CancelFunc) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-signalChan:
			logger := GetLogger("cli")
			logger.Info().Msg("Received interrupt signal. Cancelling requests...")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(signalChan)
		cancel()
	}
}
