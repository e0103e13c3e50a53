package travel

import (
	"errors"
	"fmt"

	"github.com/sandevgo/patterns/pkg/variant"
	"github.com/shopspring/decimal"
)

var ErrNoSeats = errors.New("no seats available")

type Mode int

const (
	Bus Mode = iota
	Train
	Flight
)

func (m Mode) String() string {
	switch m {
	case Bus:
		return "Bus"
	case Train:
		return "Train"
	case Flight:
		return "Flight"
	}
	return "Mode(?)"
}

var Modes = variant.NewSet(Bus, Train, Flight)

// Strategy prices a trip and tracks the seats left for one transport mode.
type Strategy interface {
	Mode() Mode
	Amount(distance, members int) decimal.Decimal
	IsAvailable(members int) bool
	AvailableSeats() int
	Reserve(members int) error
	Release(members int)
}

type seatStrategy struct {
	mode       Mode
	pricePerKm decimal.Decimal
	capacity   int
	available  int
}

func NewStrategy(m Mode) Strategy {
	switch m {
	case Bus:
		return newSeatStrategy(Bus, decimal.NewFromFloat(5.0), 60)
	case Train:
		return newSeatStrategy(Train, decimal.NewFromFloat(10.0), 1000)
	case Flight:
		return newSeatStrategy(Flight, decimal.NewFromFloat(20.0), 50)
	}
	panic(fmt.Sprintf("travel: no strategy for %s", m))
}

func newSeatStrategy(m Mode, pricePerKm decimal.Decimal, seats int) *seatStrategy {
	return &seatStrategy{
		mode:       m,
		pricePerKm: pricePerKm,
		capacity:   seats,
		available:  seats,
	}
}

func (s *seatStrategy) Mode() Mode {
	return s.mode
}

func (s *seatStrategy) Amount(distance, members int) decimal.Decimal {
	return s.pricePerKm.Mul(decimal.NewFromInt(int64(distance))).Mul(decimal.NewFromInt(int64(members)))
}

func (s *seatStrategy) IsAvailable(members int) bool {
	return members <= s.available
}

func (s *seatStrategy) AvailableSeats() int {
	return s.available
}

func (s *seatStrategy) Reserve(members int) error {
	if !s.IsAvailable(members) {
		return fmt.Errorf("%w: %s has %d seats left", ErrNoSeats, s.mode, s.available)
	}
	s.available -= members
	return nil
}

func (s *seatStrategy) Release(members int) {
	s.available = min(s.available+members, s.capacity)
}
