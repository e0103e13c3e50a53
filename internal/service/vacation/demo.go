package vacation

import (
	"context"
	"errors"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/pkg/log"
	"github.com/sandevgo/patterns/pkg/textkey"
)

const (
	Name        = "vacation"
	Description = "Builder: assemble custom vacation packages"
	exitCommand = "Exit"
	doneWord    = "done"
)

func askActivities(con core.Console) ([]string, error) {
	var activities []string
	for {
		a, err := command.AskString(con, "Enter activity (or 'done' to finish): ")
		if err != nil {
			return nil, err
		}
		switch {
		case a == "":
			con.Println("Activity cannot be empty. Please enter a valid activity.")
		case textkey.Equal(a, doneWord):
			return activities, nil
		default:
			activities = append(activities, a)
		}
	}
}

func book(a *Agency) command.HandlerFunc {
	return func(ctx context.Context, con core.Console, _ []string) error {
		var (
			req Request
			err error
		)
		if req.Hotel, err = command.AskString(con, "Enter hotel: "); err != nil {
			return err
		}
		if req.Flight, err = command.AskString(con, "Enter flight: "); err != nil {
			return err
		}
		if req.Activities, err = askActivities(con); err != nil {
			return err
		}

		p := NewDirector(NewBuilder()).Construct(req)
		a.Book(p)
		log.FromCtx(ctx).Debug().Str("hotel", p.Hotel).Int("activities", len(p.Activities)).Msg("package booked")
		con.Printf("Custom Vacation Package: %s\n", p)
		return nil
	}
}

func display(con core.Console, a *Agency) {
	packages := a.Packages()
	if len(packages) == 0 {
		con.Println("No vacation packages to display.")
		return
	}
	for i, p := range packages {
		con.Printf("Index %d: %s\n", i, p)
	}
}

func NewCommands(a *Agency) []core.Command {
	return []core.Command{
		command.NewFunc("Book", "Build and book a package", book(a)),
		command.Action("Cancel", "Cancel a package by index", func(ctx context.Context, con core.Console) error {
			if len(a.Packages()) == 0 {
				con.Println("No vacation packages to cancel.")
				return nil
			}
			display(con, a)

			index, err := command.AskInt(con, "Enter the index of the package to cancel: ")
			if err != nil && !errors.Is(err, command.ErrNotANumber) {
				return err
			}
			if err == nil {
				_, err = a.Cancel(index)
			}
			if err != nil {
				log.FromCtx(ctx).Warn().Err(err).Msg("cancel refused")
				con.Println("Invalid index.")
				return nil
			}
			con.Printf("Vacation package at index %d has been canceled.\n", index)
			return nil
		}),
		command.Action("Display", "List booked packages", func(ctx context.Context, con core.Console) error {
			display(con, a)
			return nil
		}),
	}
}

func New() *session.Session {
	return NewWithAgency(NewAgency())
}

func NewWithAgency(a *Agency) *session.Session {
	return session.New(Name, command.New(NewCommands(a)), exitCommand,
		session.OnExit(func(ctx context.Context, con core.Console) bool {
			con.Println("Exiting...")
			log.FromCtx(ctx).Info().Msg("application exiting")
			return true
		}),
	)
}
