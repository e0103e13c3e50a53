package session

import (
	"context"

	"github.com/sandevgo/patterns/internal/core"
)

// Service runs a session to completion inside the srv lifecycle.
type Service struct {
	session *Session
	console core.Console
}

func NewService(s *Session, con core.Console) *Service {
	return &Service{session: s, console: con}
}

func (s *Service) Start(ctx context.Context) error {
	return s.session.Run(ctx, s.console)
}

func (s *Service) Shutdown(ctx context.Context) error {
	return nil
}
