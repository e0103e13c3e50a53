package core

import "context"

// Console is the line-oriented terminal a session talks to.
type Console interface {
	// ReadLine blocks until a line is available. It returns io.EOF once the
	// input ends or the user interrupts an empty prompt.
	ReadLine(prompt string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
}

type CmdRouter interface {
	Dispatch(ctx context.Context, con Console, name string, args []string) (bool, error)
	Names() []string
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, con Console, args []string) error
}
