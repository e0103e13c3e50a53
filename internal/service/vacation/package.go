package vacation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIndexOutOfRange = errors.New("package index out of range")

type Package struct {
	Hotel      string
	Flight     string
	Activities []string
}

func (p Package) String() string {
	return fmt.Sprintf("Vacation Package [Hotel: %s, Flight: %s, Activities: [%s]]",
		p.Hotel, p.Flight, strings.Join(p.Activities, ", "))
}

// Builder assembles a Package step by step. Build may be called more than
// once; each result is independent of later builder calls.
type Builder struct {
	pkg Package
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Hotel(hotel string) *Builder {
	b.pkg.Hotel = hotel
	return b
}

func (b *Builder) Flight(flight string) *Builder {
	b.pkg.Flight = flight
	return b
}

func (b *Builder) Activity(activity string) *Builder {
	b.pkg.Activities = append(b.pkg.Activities, activity)
	return b
}

func (b *Builder) Build() Package {
	out := b.pkg
	out.Activities = append([]string(nil), b.pkg.Activities...)
	return out
}

// Request holds the answers collected from the traveller.
type Request struct {
	Hotel      string
	Flight     string
	Activities []string
}

// Director drives a builder through the construction steps.
type Director struct {
	builder *Builder
}

func NewDirector(b *Builder) *Director {
	return &Director{builder: b}
}

func (d *Director) Construct(req Request) Package {
	d.builder.Hotel(req.Hotel).Flight(req.Flight)
	for _, a := range req.Activities {
		d.builder.Activity(a)
	}
	return d.builder.Build()
}

// Agency keeps the booked packages in booking order.
type Agency struct {
	packages []Package
}

func NewAgency() *Agency {
	return &Agency{}
}

func (a *Agency) Book(p Package) {
	a.packages = append(a.packages, p)
}

func (a *Agency) Cancel(index int) (Package, error) {
	if index < 0 || index >= len(a.packages) {
		return Package{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	p := a.packages[index]
	a.packages = append(a.packages[:index], a.packages[index+1:]...)
	return p, nil
}

func (a *Agency) Packages() []Package {
	out := make([]Package, len(a.packages))
	copy(out, a.packages)
	return out
}
