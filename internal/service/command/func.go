package command

import (
	"context"

	"github.com/sandevgo/patterns/internal/core"
)

type HandlerFunc func(ctx context.Context, con core.Console, args []string) error

// Func adapts a closure to core.Command.
type Func struct {
	name        string
	description string
	handler     HandlerFunc
}

func NewFunc(name, description string, handler HandlerFunc) *Func {
	return &Func{
		name:        name,
		description: description,
		handler:     handler,
	}
}

// Action wraps a closure that takes no arguments.
func Action(name, description string, fn func(ctx context.Context, con core.Console) error) *Func {
	return NewFunc(name, description, func(ctx context.Context, con core.Console, _ []string) error {
		return fn(ctx, con)
	})
}

func (f *Func) Name() string {
	return f.name
}

func (f *Func) Description() string {
	return f.description
}

func (f *Func) Execute(ctx context.Context, con core.Console, args []string) error {
	return f.handler(ctx, con, args)
}
