package travel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/pkg/log"
)

const (
	Name        = "travel"
	Description = "Strategy: book bus, train and flight tickets"
	exitCommand = "Exit"
)

const invalidQuantity = "Invalid input. Please enter numeric values for distance and number of members."

// numericInput reports malformed numbers to the user and passes read errors up.
func numericInput(ctx context.Context, con core.Console, err error) error {
	if errors.Is(err, command.ErrNotANumber) {
		log.FromCtx(ctx).Warn().Err(err).Msg("invalid numeric input")
		con.Println(invalidQuantity)
		return nil
	}
	return err
}

func book(p *Planner) command.HandlerFunc {
	return func(ctx context.Context, con core.Console, _ []string) error {
		distance, err := command.AskInt(con, "Enter distance (km): ")
		if err != nil {
			return numericInput(ctx, con, err)
		}
		members, err := command.AskInt(con, "Enter number of members: ")
		if err != nil {
			return numericInput(ctx, con, err)
		}
		return bookMode(ctx, con, p, distance, members)
	}
}

func bookMode(ctx context.Context, con core.Console, p *Planner, distance, members int) error {
	logger := log.FromCtx(ctx)

	name, err := command.AskString(con, fmt.Sprintf("Choose transport mode (%s): ", Modes.List()))
	if err != nil {
		return err
	}
	mode, err := Modes.Resolve(name)
	if err != nil {
		logger.Warn().Str("mode", name).Msg("invalid transport mode selected")
		con.Println("Invalid transport mode.")
		return nil
	}

	p.SetStrategy(mode)
	b, err := p.Book(distance, members)
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		con.Println(invalidQuantity)
		return nil
	case errors.Is(err, ErrNoSeats):
		logger.Warn().Err(err).Msg("booking refused")
		con.Println("No seats available.")
		return nil
	case err != nil:
		return err
	}

	con.Printf("Booked a %s ticket for distance: %d km, for %d members.\n", strings.ToLower(mode.String()), b.Distance, b.Members)
	con.Printf("Cost of traveling: $%s\n", b.Amount.StringFixed(2))
	return nil
}

func printBookings(con core.Console, p *Planner) {
	bookings := p.Bookings()
	lines := make([]string, len(bookings))
	for i, b := range bookings {
		lines[i] = b.String()
	}
	command.PrintList(con, "Previous bookings:", "No previous bookings.", lines)
}

func NewCommands(p *Planner) []core.Command {
	return []core.Command{
		command.NewFunc("Book", "Book a trip", book(p)),
		command.Action("Cancel", "Cancel a booking by id", func(ctx context.Context, con core.Console) error {
			printBookings(con, p)
			id, err := command.AskInt(con, "Enter Booking ID to cancel: ")
			if errors.Is(err, command.ErrNotANumber) {
				log.FromCtx(ctx).Warn().Err(err).Msg("invalid numeric input")
				con.Println("Invalid input. Please enter a numeric value for Booking ID.")
				return nil
			}
			if err != nil {
				return err
			}

			b, err := p.Cancel(id)
			if errors.Is(err, ErrBookingNotFound) {
				con.Println("Booking ID not found.")
				return nil
			}
			if err != nil {
				return err
			}
			con.Printf("%s booking canceled.\n", b.Mode)
			return nil
		}),
		command.Action("Display", "Show the current mode's booking", func(ctx context.Context, con core.Console) error {
			con.Println(p.Details())
			return nil
		}),
		command.Action("DisplayAll", "List all bookings", func(ctx context.Context, con core.Console) error {
			printBookings(con, p)
			return nil
		}),
	}
}

func New() *session.Session {
	return NewWithPlanner(NewPlanner())
}

func NewWithPlanner(p *Planner) *session.Session {
	return session.New(Name, command.New(NewCommands(p)), exitCommand,
		session.OnExit(func(ctx context.Context, con core.Console) bool {
			con.Println("Exiting...")
			log.FromCtx(ctx).Info().Msg("application exiting")
			return true
		}),
	)
}
