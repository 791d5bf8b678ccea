// Package session models one client's interaction with the scenario catalog:
// which scenario is active, what was typed for each scenario, the category
// filter, bookmarks, and whether results are showing.
//
// State is a value. Transitions on Machine take a State and return a new one
// without touching the argument, so every step can be tested in isolation.
package session

import (
	"maps"
	"slices"

	"what-if-engine/internal/scenario"
)

type Phase string

const (
	PhaseBrowsing  Phase = "BROWSING"
	PhaseEvaluated Phase = "EVALUATED"
)

type State struct {
	ActiveScenario string
	Inputs         map[string]scenario.Input
	CategoryFilter string
	Bookmarks      []string
	Phase          Phase
}

// ResultsVisible is true only after an explicit evaluate.
func (s State) ResultsVisible() bool {
	return s.Phase == PhaseEvaluated
}

// Input returns the stored input for id.
func (s State) Input(id string) (scenario.Input, bool) {
	in, ok := s.Inputs[id]
	return in, ok
}

func (s State) Bookmarked(id string) bool {
	return slices.Contains(s.Bookmarks, id)
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := s
	out.Inputs = maps.Clone(s.Inputs)
	if out.Inputs == nil {
		out.Inputs = map[string]scenario.Input{}
	}
	out.Bookmarks = slices.Clone(s.Bookmarks)
	if out.Bookmarks == nil {
		out.Bookmarks = []string{}
	}
	return out
}
