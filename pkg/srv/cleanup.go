package srv

import (
	"context"
	"errors"
)

// cleanupService only does work on shutdown.
type cleanupService struct {
	cleanup []func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	var errs error
	for _, fn := range c.cleanup {
		if fn != nil {
			errs = errors.Join(errs, fn())
		}
	}
	return errs
}

func NewCleanup(fns ...func() error) Service {
	return &cleanupService{cleanup: fns}
}
