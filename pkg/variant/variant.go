// Package variant resolves user-typed names into members of a closed
// enumeration. Behaviour is attached to the members by the caller through an
// exhaustive switch, so a missing mapping is caught at review time rather than
// by a runtime map miss.
package variant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/patterns/pkg/textkey"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Kind is the constraint for enumeration members.
type Kind interface {
	comparable
	String() string
}

type Set[K Kind] struct {
	byKey map[string]K
	all   []K
}

// NewSet panics when two members share a name: the set is declared once at
// package init and a collision is a programming error.
func NewSet[K Kind](all ...K) *Set[K] {
	s := &Set[K]{
		byKey: make(map[string]K, len(all)),
		all:   all,
	}
	for _, k := range all {
		key := textkey.Normalize(k.String())
		if _, dup := s.byKey[key]; dup {
			panic(fmt.Sprintf("variant: duplicate name %q", k.String()))
		}
		s.byKey[key] = k
	}
	return s
}

func (s *Set[K]) Resolve(name string) (K, error) {
	k, ok := s.byKey[textkey.Normalize(name)]
	if !ok {
		var zero K
		return zero, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return k, nil
}

// Names returns member names in declaration order.
func (s *Set[K]) Names() []string {
	names := make([]string, len(s.all))
	for i, k := range s.all {
		names[i] = k.String()
	}
	return names
}

func (s *Set[K]) Values() []K {
	out := make([]K, len(s.all))
	copy(out, s.all)
	return out
}

// List renders the names for prompts, e.g. "Bus, Train, Flight".
func (s *Set[K]) List() string {
	return strings.Join(s.Names(), ", ")
}
