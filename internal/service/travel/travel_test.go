package travel

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/sandevgo/patterns/internal/transport/cli"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_Amount(t *testing.T) {
	tests := []struct {
		mode     Mode
		distance int
		members  int
		want     string
	}{
		{mode: Bus, distance: 100, members: 2, want: "1000"},
		{mode: Train, distance: 250, members: 3, want: "7500"},
		{mode: Flight, distance: 1200, members: 1, want: "24000"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := NewStrategy(tt.mode).Amount(tt.distance, tt.members)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestStrategy_Capacity(t *testing.T) {
	assert.Equal(t, 60, NewStrategy(Bus).AvailableSeats())
	assert.Equal(t, 1000, NewStrategy(Train).AvailableSeats())
	assert.Equal(t, 50, NewStrategy(Flight).AvailableSeats())

	s := NewStrategy(Flight)
	require.NoError(t, s.Reserve(50))
	assert.False(t, s.IsAvailable(1))
	assert.ErrorIs(t, s.Reserve(1), ErrNoSeats)
	assert.Equal(t, 0, s.AvailableSeats())

	s.Release(80)
	assert.Equal(t, 50, s.AvailableSeats())
}

func TestPlanner_BookAndCancel(t *testing.T) {
	p := NewPlanner()
	p.SetStrategy(Bus)

	b, err := p.Book(100, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, "1000.00", b.Amount.StringFixed(2))
	assert.Equal(t, 58, p.Strategy(Bus).AvailableSeats())

	_, err = p.Cancel(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, p.Strategy(Bus).AvailableSeats())
	assert.Empty(t, p.Bookings())

	_, err = p.Cancel(b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestPlanner_CancelReturnsOwnSeats(t *testing.T) {
	p := NewPlanner()
	p.SetStrategy(Bus)
	first, err := p.Book(10, 5)
	require.NoError(t, err)
	_, err = p.Book(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 35, p.Strategy(Bus).AvailableSeats())

	_, err = p.Cancel(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Strategy(Bus).AvailableSeats())
}

func TestPlanner_Refusals(t *testing.T) {
	p := NewPlanner()

	_, err := p.Book(10, 1)
	assert.ErrorIs(t, err, ErrNoStrategy)

	p.SetStrategy(Flight)
	_, err = p.Book(0, 1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = p.Book(10, -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = p.Book(10, 51)
	assert.ErrorIs(t, err, ErrNoSeats)
	assert.Equal(t, 50, p.Strategy(Flight).AvailableSeats())
	assert.Empty(t, p.Bookings())
}

func TestPlanner_SeatsNeverNegative(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	p := NewPlanner()

	for i := 0; i < 500; i++ {
		mode := Modes.Values()[rnd.Intn(3)]
		p.SetStrategy(mode)
		size := rnd.Intn(40) + 1
		before := p.Strategy(mode).AvailableSeats()

		_, err := p.Book(rnd.Intn(500)+1, size)
		if size > before {
			assert.ErrorIs(t, err, ErrNoSeats)
			assert.False(t, p.Strategy(mode).IsAvailable(size))
		}
		if rnd.Intn(4) == 0 && len(p.Bookings()) > 0 {
			_, err := p.Cancel(p.Bookings()[0].ID)
			require.NoError(t, err)
		}

		for _, m := range Modes.Values() {
			require.GreaterOrEqual(t, p.Strategy(m).AvailableSeats(), 0)
		}
	}
}

func TestPlanner_Details(t *testing.T) {
	p := NewPlanner()
	assert.Equal(t, "No strategy set.", p.Details())

	p.SetStrategy(Train)
	assert.Equal(t, "No train booking.", p.Details())

	_, err := p.Book(300, 4)
	require.NoError(t, err)
	assert.Equal(t, "Train ticket booked for distance: 300 km, for 4 members.", p.Details())
	assert.Equal(t, p.Details(), p.Details())
}

func TestDemo(t *testing.T) {
	tests := []struct {
		name         string
		script       string
		wantContains []string
	}{
		{
			name:   "book then cancel bus",
			script: "Book\n100\n2\nBus\nDisplayAll\nDisplay\nCancel\n1\nDisplayAll\nExit\n",
			wantContains: []string{
				"Booked a bus ticket for distance: 100 km, for 2 members.\nCost of traveling: $1000.00\n",
				"Previous bookings:\nBooking ID: 1, Bus ticket for distance: 100 km, for 2 members. Total Amount: $1000.00\n",
				"Bus ticket booked for distance: 100 km, for 2 members.\n",
				"Bus booking canceled.\n",
				"No previous bookings.\n",
				"Exiting...\n",
			},
		},
		{
			name:         "malformed distance",
			script:       "Book\nfar\nExit\n",
			wantContains: []string{"Invalid input. Please enter numeric values for distance and number of members.\n"},
		},
		{
			name:         "unknown mode",
			script:       "Book\n10\n1\nBoat\nDisplay\nExit\n",
			wantContains: []string{"Invalid transport mode.\n", "No strategy set.\n"},
		},
		{
			name:         "flight full",
			script:       "Book\n500\n51\nflight\nDisplayAll\nExit\n",
			wantContains: []string{"No seats available.\n", "No previous bookings.\n"},
		},
		{
			name:         "cancel unknown id",
			script:       "Cancel\n9\nCancel\nnine\nExit\n",
			wantContains: []string{"Booking ID not found.\n", "Invalid input. Please enter a numeric value for Booking ID.\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, New().Run(context.Background(), cli.NewPlain(strings.NewReader(tt.script), &out)))
			for _, s := range tt.wantContains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestDemo_UnknownCommandLeavesStateUntouched(t *testing.T) {
	p := NewPlanner()
	var out bytes.Buffer
	script := "Refund\nUpgrade\nExit\n"

	require.NoError(t, NewWithPlanner(p).Run(context.Background(), cli.NewPlain(strings.NewReader(script), &out)))

	assert.Equal(t, 2, strings.Count(out.String(), "Invalid command."))
	assert.Empty(t, p.Bookings())
	assert.Nil(t, p.Current())
}
