package session

import (
	"fmt"
	"slices"

	"what-if-engine/internal/scenario"
)

// Machine applies transitions against a registry. It holds no session data.
type Machine struct {
	registry *scenario.Registry
}

func NewMachine(reg *scenario.Registry) *Machine {
	return &Machine{registry: reg}
}

func (m *Machine) Registry() *scenario.Registry {
	return m.registry
}

// Initial is the state at mount: first scenario active, every default
// seeded, no filter, no bookmarks, results hidden.
func (m *Machine) Initial() State {
	return State{
		ActiveScenario: m.registry.First().ID,
		Inputs:         m.registry.Defaults(),
		CategoryFilter: scenario.AllCategories,
		Bookmarks:      []string{},
		Phase:          PhaseBrowsing,
	}
}

// SelectScenario makes id active and hides results. Unknown ids are refused
// and s is returned unchanged.
func (m *Machine) SelectScenario(s State, id string) (State, error) {
	if !m.registry.Has(id) {
		return s, fmt.Errorf("select %q: %w", id, scenario.ErrUnknownScenario)
	}
	next := s.Clone()
	next.ActiveScenario = id
	next.Phase = PhaseBrowsing
	return next, nil
}

// SetInput stores in for id. The phase is left alone.
func (m *Machine) SetInput(s State, id string, in scenario.Input) (State, error) {
	sc, err := m.registry.Get(id)
	if err != nil {
		return s, fmt.Errorf("set input: %w", err)
	}
	if err := sc.Input.Check(in); err != nil {
		return s, fmt.Errorf("set input %q: %w", id, err)
	}
	next := s.Clone()
	next.Inputs[id] = in
	return next, nil
}

// SetInputText parses text as typed by the user. On a parse failure the
// prior value is kept and ErrInvalidInput is returned.
func (m *Machine) SetInputText(s State, id, text string) (State, error) {
	sc, err := m.registry.Get(id)
	if err != nil {
		return s, fmt.Errorf("set input: %w", err)
	}
	in, err := sc.Input.Parse(text)
	if err != nil {
		return s, fmt.Errorf("set input %q: %w", id, err)
	}
	return m.SetInput(s, id, in)
}

// Evaluate shows results for the active scenario and its current input.
func (m *Machine) Evaluate(s State) (State, *scenario.Evaluation, error) {
	ev, err := m.evaluate(s)
	if err != nil {
		return s, nil, err
	}
	next := s.Clone()
	next.Phase = PhaseEvaluated
	return next, ev, nil
}

// Results recomputes what an evaluated session shows. It returns nil while
// browsing.
func (m *Machine) Results(s State) (*scenario.Evaluation, error) {
	if !s.ResultsVisible() {
		return nil, nil
	}
	return m.evaluate(s)
}

// Current evaluates the active scenario regardless of phase. Exports use it.
func (m *Machine) Current(s State) (*scenario.Scenario, *scenario.Evaluation, error) {
	sc, err := m.registry.Get(s.ActiveScenario)
	if err != nil {
		return nil, nil, err
	}
	ev, err := m.evaluate(s)
	if err != nil {
		return nil, nil, err
	}
	return sc, ev, nil
}

func (m *Machine) evaluate(s State) (*scenario.Evaluation, error) {
	sc, err := m.registry.Get(s.ActiveScenario)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	in, ok := s.Inputs[sc.ID]
	if !ok {
		in = sc.Input.Default
	}
	return sc.Evaluate(in)
}

// SetCategoryFilter changes which scenarios are visible. The active scenario
// and phase are untouched.
func (m *Machine) SetCategoryFilter(s State, category string) (State, error) {
	if !m.registry.HasCategory(category) {
		return s, fmt.Errorf("filter %q: %w", category, scenario.ErrUnknownCategory)
	}
	next := s.Clone()
	next.CategoryFilter = category
	return next, nil
}

// ToggleBookmark adds id to the bookmarks or removes it. The returned bool
// is true when id is bookmarked afterwards.
func (m *Machine) ToggleBookmark(s State, id string) (State, bool, error) {
	if !m.registry.Has(id) {
		return s, false, fmt.Errorf("bookmark %q: %w", id, scenario.ErrUnknownScenario)
	}
	next := s.Clone()
	if i := slices.Index(next.Bookmarks, id); i >= 0 {
		next.Bookmarks = slices.Delete(next.Bookmarks, i, i+1)
		return next, false, nil
	}
	next.Bookmarks = append(next.Bookmarks, id)
	return next, true, nil
}

// Visible lists the scenarios the current filter shows.
func (m *Machine) Visible(s State) ([]*scenario.Scenario, error) {
	return m.registry.List(s.CategoryFilter)
}
