package srv

import (
	"context"
	"errors"

	"github.com/sandevgo/patterns/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts services one after another on the calling goroutine; each Start
// may block until its work is done. Every started service is shut down in
// reverse order, even when a later Start fails.
func Run(ctx context.Context, services ...Service) error {
	logger := log.FromCtx(ctx)

	started := make([]Service, 0, len(services))
	var runErr error
	for _, service := range services {
		started = append(started, service)
		if err := service.Start(ctx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to start", service)
			runErr = err
			break
		}
	}

	var shutdownErr error
	for i := len(started) - 1; i >= 0; i-- {
		if err := started[i].Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", started[i])
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}

	if runErr != nil {
		return runErr
	}
	return shutdownErr
}
