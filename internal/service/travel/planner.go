package travel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNoStrategy      = errors.New("no strategy set")
	ErrInvalidQuantity = errors.New("distance and members must be positive")
	ErrBookingNotFound = errors.New("booking not found")
)

type Booking struct {
	ID       int
	Mode     Mode
	Distance int
	Members  int
	Amount   decimal.Decimal
}

func (b Booking) String() string {
	return fmt.Sprintf("Booking ID: %d, %s ticket for distance: %d km, for %d members. Total Amount: $%s",
		b.ID, b.Mode, b.Distance, b.Members, b.Amount.StringFixed(2))
}

// Planner is the strategy context: it holds the selected mode, the seat
// state of every mode and the bookings made in this session.
type Planner struct {
	strategies map[Mode]Strategy
	current    Strategy
	bookings   []Booking
	nextID     int
}

func NewPlanner() *Planner {
	p := &Planner{
		strategies: make(map[Mode]Strategy),
		nextID:     1,
	}
	for _, m := range Modes.Values() {
		p.strategies[m] = NewStrategy(m)
	}
	return p
}

func (p *Planner) SetStrategy(m Mode) {
	p.current = p.strategies[m]
}

// Current returns nil until a mode has been chosen.
func (p *Planner) Current() Strategy {
	return p.current
}

func (p *Planner) Strategy(m Mode) Strategy {
	return p.strategies[m]
}

func (p *Planner) Book(distance, members int) (Booking, error) {
	if p.current == nil {
		return Booking{}, ErrNoStrategy
	}
	if distance <= 0 || members <= 0 {
		return Booking{}, ErrInvalidQuantity
	}
	if err := p.current.Reserve(members); err != nil {
		return Booking{}, err
	}

	b := Booking{
		ID:       p.nextID,
		Mode:     p.current.Mode(),
		Distance: distance,
		Members:  members,
		Amount:   p.current.Amount(distance, members),
	}
	p.nextID++
	p.bookings = append(p.bookings, b)
	return b, nil
}

// Cancel returns the booking's own seats to its mode.
func (p *Planner) Cancel(id int) (Booking, error) {
	for i, b := range p.bookings {
		if b.ID != id {
			continue
		}
		p.strategies[b.Mode].Release(b.Members)
		p.bookings = append(p.bookings[:i], p.bookings[i+1:]...)
		return b, nil
	}
	return Booking{}, fmt.Errorf("%w: %d", ErrBookingNotFound, id)
}

func (p *Planner) Bookings() []Booking {
	out := make([]Booking, len(p.bookings))
	copy(out, p.bookings)
	return out
}

// LastBooking finds the most recent active booking for m.
func (p *Planner) LastBooking(m Mode) (Booking, bool) {
	for i := len(p.bookings) - 1; i >= 0; i-- {
		if p.bookings[i].Mode == m {
			return p.bookings[i], true
		}
	}
	return Booking{}, false
}

// Details describes the current mode's last booking.
func (p *Planner) Details() string {
	if p.current == nil {
		return "No strategy set."
	}
	m := p.current.Mode()
	b, ok := p.LastBooking(m)
	if !ok {
		return fmt.Sprintf("No %s booking.", strings.ToLower(m.String()))
	}
	return fmt.Sprintf("%s ticket booked for distance: %d km, for %d members.", m, b.Distance, b.Members)
}
