package furniture

import (
	"strings"

	"github.com/sandevgo/patterns/pkg/textkey"
	"github.com/sandevgo/patterns/pkg/variant"
)

type Kind int

const (
	Table Kind = iota
	Chair
	Sofa
)

func (k Kind) String() string {
	switch k {
	case Table:
		return "Table"
	case Chair:
		return "Chair"
	case Sofa:
		return "Sofa"
	}
	return "Kind(?)"
}

var Kinds = variant.NewSet(Table, Chair, Sofa)

type Furniture interface {
	Kind() Kind
	Material() string
	Design() string
}

type piece struct {
	kind     Kind
	material string
}

func (p piece) Kind() Kind       { return p.kind }
func (p piece) Material() string { return p.material }

func (p piece) Design() string {
	return "Designing a " + strings.ToLower(p.kind.String()) + "."
}

type Factory interface {
	Create(material string) Furniture
}

type factoryFunc func(material string) Furniture

func (f factoryFunc) Create(material string) Furniture {
	return f(material)
}

// FactoryFor returns the factory of every kind.
func FactoryFor(k Kind) Factory {
	switch k {
	case Table:
		return factoryFunc(func(m string) Furniture { return piece{kind: Table, material: m} })
	case Chair:
		return factoryFunc(func(m string) Furniture { return piece{kind: Chair, material: m} })
	case Sofa:
		return factoryFunc(func(m string) Furniture { return piece{kind: Sofa, material: m} })
	}
	panic("furniture: no factory for " + k.String())
}

// Workshop keeps built pieces in creation order.
type Workshop struct {
	items []Furniture
}

func NewWorkshop() *Workshop {
	return &Workshop{}
}

func (w *Workshop) Build(k Kind, material string) Furniture {
	f := FactoryFor(k).Create(material)
	w.items = append(w.items, f)
	return f
}

func (w *Workshop) Items() []Furniture {
	out := make([]Furniture, len(w.items))
	copy(out, w.items)
	return out
}

// RemoveKind drops every piece whose type name matches, ignoring case, and
// returns how many were removed.
func (w *Workshop) RemoveKind(name string) int {
	kept := w.items[:0]
	removed := 0
	for _, f := range w.items {
		if textkey.Equal(f.Kind().String(), name) {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	w.items = kept
	return removed
}
