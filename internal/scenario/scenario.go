package scenario

import (
	"fmt"

	"what-if-engine/internal/assumptions"
)

// Scenario is one what-if calculator. Scenarios are built by NewRegistry and
// must not be modified afterwards.
type Scenario struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    string
	Input       InputSpec
	Kind        Kind
	Advice      string

	table  *assumptions.Table
	policy BoundaryPolicy
}

// Evaluate runs the scenario's formula for in. Under PolicyClamp a numeric
// input outside the declared bounds is replaced by the nearest bound and the
// Evaluation is marked Clamped.
func (s *Scenario) Evaluate(in Input) (*Evaluation, error) {
	if err := s.Input.Check(in); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}

	eff := in
	clamped := false
	if s.Input.Kind == InputNumber && s.policy != PolicyPassthrough {
		eff.Number, clamped = s.Input.Clamp(in.Number)
	}

	f, ok := formulas[s.Kind]
	if !ok {
		return nil, fmt.Errorf("scenario %s: no formula for kind %d", s.ID, s.Kind)
	}

	results := ResultSet(f(s.table, eff))
	results = append(results, Field{Key: AdvisoryKey, Text: s.Advice, Advisory: true})

	return &Evaluation{
		ScenarioID: s.ID,
		Requested:  in,
		Input:      eff,
		Clamped:    clamped,
		Results:    results,
	}, nil
}
