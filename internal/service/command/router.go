package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/pkg/log"
	"github.com/sandevgo/patterns/pkg/textkey"
)

const DefaultInvalidMessage = "Invalid command."

var ErrDuplicateCommand = errors.New("duplicate command")

type Option func(*Router)

// WithInvalidMessage replaces the reply printed for unknown keys.
func WithInvalidMessage(msg string) Option {
	return func(r *Router) {
		r.invalid = msg
	}
}

type Router struct {
	commands map[string]core.Command
	order    []core.Command
	invalid  string
}

// New panics on duplicate names, the same way http.ServeMux does for
// duplicate patterns: command tables are static.
func New(commands []core.Command, opts ...Option) *Router {
	r := &Router{
		commands: make(map[string]core.Command),
		invalid:  DefaultInvalidMessage,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, cmd := range commands {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Router) Register(cmd core.Command) error {
	key := textkey.Normalize(cmd.Name())
	if _, ok := r.commands[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, cmd.Name())
	}
	r.commands[key] = cmd
	r.order = append(r.order, cmd)
	return nil
}

// Dispatch runs the command registered under name. Unknown names print the
// invalid message and report false without touching any state.
func (r *Router) Dispatch(ctx context.Context, con core.Console, name string, args []string) (bool, error) {
	cmd, ok := r.commands[textkey.Normalize(name)]
	if !ok {
		log.FromCtx(ctx).Warn().Str("command", name).Msg("invalid command entered")
		con.Println(r.invalid)
		return false, nil
	}

	if err := cmd.Execute(ctx, con, args); err != nil {
		return true, fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return true, nil
}

// Names returns command names in registration order.
func (r *Router) Names() []string {
	names := make([]string, len(r.order))
	for i, cmd := range r.order {
		names[i] = cmd.Name()
	}
	return names
}

func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, len(r.order))
	copy(res, r.order)
	return res
}
