package registry

import (
	"fmt"
	"strings"
)

// SplitDefinition describes one known split
type SplitDefinition struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Lookup resolves split ids. *Registry implements it.
type Lookup interface {
	Lookup(id string) (SplitDefinition, bool)
}

// Registry is an immutable id -> SplitDefinition table
type Registry struct {
	byID  map[string]SplitDefinition // id -> definition
	order []string                   // ids in asset order
}

// New builds a registry from definitions. Ids must be unique and non-empty.
func New(defs ...SplitDefinition) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]SplitDefinition, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("split definition %d: empty id", i)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("split definition %d: duplicate id %q", i, d.ID)
		}
		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	return r, nil
}

// MustNew is New for static tables; it panics on invalid input
func MustNew(defs ...SplitDefinition) *Registry {
	r, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the definition for id
func (r *Registry) Lookup(id string) (SplitDefinition, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Len returns the number of definitions
func (r *Registry) Len() int { return len(r.order) }

// Definitions returns a copy of all definitions in asset order
func (r *Registry) Definitions() []SplitDefinition {
	out := make([]SplitDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Search returns definitions whose id or name contains term, ignoring case.
// An empty term matches everything.
func (r *Registry) Search(term string) []SplitDefinition {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.Definitions()
	}
	var out []SplitDefinition
	for _, id := range r.order {
		d := r.byID[id]
		if strings.Contains(strings.ToLower(d.ID), term) || strings.Contains(strings.ToLower(d.Name), term) {
			out = append(out, d)
		}
	}
	return out
}
