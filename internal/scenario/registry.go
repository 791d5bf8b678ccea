package scenario

import (
	"fmt"

	"what-if-engine/internal/assumptions"
)

// Registry is the read-only scenario catalog.
type Registry struct {
	scenarios  []*Scenario
	byID       map[string]*Scenario
	categories map[string]Category
	policy     BoundaryPolicy
}

type Option func(*Registry)

// WithBoundaryPolicy sets how out-of-range numeric input is evaluated.
func WithBoundaryPolicy(p BoundaryPolicy) Option {
	return func(r *Registry) { r.policy = p }
}

// NewRegistry builds the catalog against the given assumptions.
func NewRegistry(t *assumptions.Table, opts ...Option) (*Registry, error) {
	if t == nil {
		return nil, fmt.Errorf("registry: assumptions table is nil")
	}

	r := &Registry{
		byID:       make(map[string]*Scenario),
		categories: make(map[string]Category, len(categories)),
		policy:     PolicyClamp,
	}
	for _, opt := range opts {
		opt(r)
	}
	if _, err := ParseBoundaryPolicy(string(r.policy)); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	for _, c := range categories {
		r.categories[c.Key] = c
	}

	for _, def := range catalog() {
		sc := def
		sc.table = t
		sc.policy = r.policy

		if _, dup := r.byID[sc.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate scenario id %q", sc.ID)
		}
		if _, ok := r.categories[sc.Category]; !ok || sc.Category == AllCategories {
			return nil, fmt.Errorf("registry: scenario %q: %w %q", sc.ID, ErrUnknownCategory, sc.Category)
		}
		if _, ok := formulas[sc.Kind]; !ok {
			return nil, fmt.Errorf("registry: scenario %q has no formula", sc.ID)
		}
		if err := sc.Input.Check(sc.Input.Default); err != nil {
			return nil, fmt.Errorf("registry: scenario %q default: %w", sc.ID, err)
		}
		if sc.Input.Kind == InputNumber && !sc.Input.InBounds(sc.Input.Default.Number) {
			return nil, fmt.Errorf("registry: scenario %q default %v out of bounds", sc.ID, sc.Input.Default.Number)
		}

		r.scenarios = append(r.scenarios, &sc)
		r.byID[sc.ID] = &sc
	}

	return r, nil
}

// Policy returns the boundary policy every scenario evaluates with.
func (r *Registry) Policy() BoundaryPolicy {
	return r.policy
}

func (r *Registry) Get(id string) (*Scenario, error) {
	sc, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}
	return sc, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// List returns the scenarios matching filter in registration order. "all"
// matches every scenario.
func (r *Registry) List(filter string) ([]*Scenario, error) {
	if filter == AllCategories {
		out := make([]*Scenario, len(r.scenarios))
		copy(out, r.scenarios)
		return out, nil
	}
	if _, ok := r.categories[filter]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, filter)
	}

	var out []*Scenario
	for _, sc := range r.scenarios {
		if sc.Category == filter {
			out = append(out, sc)
		}
	}
	return out, nil
}

// Categories returns the category catalog, "all" first.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// HasCategory reports whether key is "all" or a known category.
func (r *Registry) HasCategory(key string) bool {
	_, ok := r.categories[key]
	return ok
}

// First returns the first registered scenario.
func (r *Registry) First() *Scenario {
	return r.scenarios[0]
}

// Defaults returns every scenario's default input, keyed by id.
func (r *Registry) Defaults() map[string]Input {
	out := make(map[string]Input, len(r.scenarios))
	for _, sc := range r.scenarios {
		out[sc.ID] = sc.Input.Default
	}
	return out
}

// Evaluate looks up id and evaluates it for in.
func (r *Registry) Evaluate(id string, in Input) (*Evaluation, error) {
	sc, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return sc.Evaluate(in)
}
