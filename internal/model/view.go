package model

import "what-if-engine/internal/format"

type CategoryView struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type InputSpecView struct {
	Kind    string   `json:"kind"`
	Label   string   `json:"label"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Step    *float64 `json:"step,omitempty"`
	Default any      `json:"default"`
	Options []string `json:"options,omitempty"`
}

type ScenarioView struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Category    string        `json:"category"`
	Input       InputSpecView `json:"input"`
}

type SessionView struct {
	SessionID        string         `json:"session_id"`
	ActiveScenario   string         `json:"active_scenario"`
	CategoryFilter   string         `json:"category_filter"`
	Phase            string         `json:"phase"`
	ResultsVisible   bool           `json:"results_visible"`
	Inputs           map[string]any `json:"inputs"`
	Bookmarks        []string       `json:"bookmarks"`
	VisibleScenarios []string       `json:"visible_scenarios"`
	Results          *ResultsView   `json:"results"`
}

type ResultsView struct {
	Scenario string       `json:"scenario"`
	Input    any          `json:"input"`
	Clamped  bool         `json:"clamped"`
	Results  format.Table `json:"results"`
}
