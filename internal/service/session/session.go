package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/pkg/log"
	"github.com/sandevgo/patterns/pkg/textkey"
)

const UnexpectedMessage = "An unexpected error occurred."

var ErrPanic = errors.New("command panicked")

type State int

const (
	AwaitingInput State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case Terminated:
		return "Terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ExitFunc runs when the sentinel is typed. It prints the demo summary and
// reports whether the session should terminate.
type ExitFunc func(ctx context.Context, con core.Console) bool

type Option func(*Session)

func WithBanner(banner string) Option {
	return func(s *Session) {
		s.banner = banner
	}
}

func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = func() string { return prompt }
	}
}

// WithPromptFunc is for prompts that depend on session state.
func WithPromptFunc(fn func() string) Option {
	return func(s *Session) {
		s.prompt = fn
	}
}

func OnExit(fn ExitFunc) Option {
	return func(s *Session) {
		s.onExit = fn
	}
}

// Session is the read-eval loop shared by every demo.
type Session struct {
	name   string
	router core.CmdRouter
	exit   string
	banner string
	prompt func() string
	onExit ExitFunc
	state  State
}

func New(name string, router core.CmdRouter, exit string, opts ...Option) *Session {
	s := &Session{
		name:   name,
		router: router,
		exit:   exit,
		state:  AwaitingInput,
	}
	menu := command.Menu("Enter command", append(router.Names(), exit)...)
	s.prompt = func() string { return menu }

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) State() State {
	return s.state
}

// Run blocks on input until the sentinel terminates the session or input
// ends. Command failures are reported and the loop carries on.
func (s *Session) Run(ctx context.Context, con core.Console) error {
	logger := log.FromCtx(ctx).With().Str("demo", s.name).Logger()
	logger.Debug().Msg("session started")

	if s.banner != "" {
		con.Println(s.banner)
	}

	for s.state == AwaitingInput {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := con.ReadLine(s.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.state = Terminated
				break
			}
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if textkey.Equal(line, s.exit) {
			if s.onExit == nil || s.onExit(ctx, con) {
				s.state = Terminated
			}
			continue
		}

		if err := s.dispatch(ctx, con, line); err != nil {
			if errors.Is(err, io.EOF) {
				s.state = Terminated
				break
			}
			logger.Error().Err(err).Str("command", line).Msg("command failed")
			con.Println(UnexpectedMessage)
		}
	}

	logger.Info().Msg("session terminated")
	return nil
}

func (s *Session) dispatch(ctx context.Context, con core.Console, line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	_, err = s.router.Dispatch(ctx, con, line, nil)
	return err
}
