package staff

import (
	"github.com/google/uuid"
)

// Selector is the two-variant staff choice on a booking form: a specific
// member, or "qualsiasi staff". The wildcard exists only until booking
// creation resolves it to a concrete member; it is never persisted.
type Selector struct {
	any bool
	id  uuid.UUID
}

func Specific(id uuid.UUID) Selector {
	return Selector{id: id}
}

func Any() Selector {
	return Selector{any: true}
}

// ParseSelector reads the wire form: the literal "any", or a member UUID.
func ParseSelector(raw string) (Selector, error) {
	if raw == "any" {
		return Any(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return Selector{}, err
	}
	return Specific(id), nil
}

func (s Selector) IsAny() bool { return s.any }

// ID panics on the wildcard variant: resolution must happen first.
func (s Selector) ID() uuid.UUID {
	if s.any {
		panic("staff: wildcard selector was never resolved")
	}
	return s.id
}

// Candidates lists the members a resolution pass must try, in registry order.
// A specific selector has exactly one candidate.
func (s Selector) Candidates(r *Registry) []Member {
	if s.any {
		return r.List()
	}
	if m, ok := r.Get(s.id); ok {
		return []Member{m}
	}
	return nil
}
