package engine

import (
	"what-if-engine/internal/format"
	"what-if-engine/internal/model"
	"what-if-engine/internal/scenario"
	"what-if-engine/internal/session"
)

// View renders state for clients. Results are recomputed from the stored
// inputs and are present only while the session is EVALUATED.
func View(sessionID string, m *session.Machine, s session.State, f format.Formatter) (model.SessionView, error) {
	reg := m.Registry()

	inputs := make(map[string]any, len(s.Inputs))
	for id, in := range s.Inputs {
		kind := scenario.InputNumber
		if sc, err := reg.Get(id); err == nil {
			kind = sc.Input.Kind
		}
		inputs[id] = in.Value(kind)
	}

	visible, err := m.Visible(s)
	if err != nil {
		return model.SessionView{}, err
	}
	ids := make([]string, len(visible))
	for i, sc := range visible {
		ids[i] = sc.ID
	}

	bookmarks := s.Bookmarks
	if bookmarks == nil {
		bookmarks = []string{}
	}

	v := model.SessionView{
		SessionID:        sessionID,
		ActiveScenario:   s.ActiveScenario,
		CategoryFilter:   s.CategoryFilter,
		Phase:            string(s.Phase),
		ResultsVisible:   s.ResultsVisible(),
		Inputs:           inputs,
		Bookmarks:        bookmarks,
		VisibleScenarios: ids,
	}

	ev, err := m.Results(s)
	if err != nil {
		return model.SessionView{}, err
	}
	if ev != nil {
		rv := Results(reg, ev, f)
		v.Results = &rv
	}
	return v, nil
}

// Results renders one evaluation with f.
func Results(reg *scenario.Registry, ev *scenario.Evaluation, f format.Formatter) model.ResultsView {
	kind := scenario.InputNumber
	if sc, err := reg.Get(ev.ScenarioID); err == nil {
		kind = sc.Input.Kind
	}
	return model.ResultsView{
		Scenario: ev.ScenarioID,
		Input:    ev.Input.Value(kind),
		Clamped:  ev.Clamped,
		Results:  f.Format(ev.Results),
	}
}

func Scenario(sc *scenario.Scenario) model.ScenarioView {
	spec := sc.Input
	return model.ScenarioView{
		ID:          sc.ID,
		Title:       sc.Title,
		Description: sc.Description,
		Icon:        sc.Icon,
		Category:    sc.Category,
		Input: model.InputSpecView{
			Kind:    string(spec.Kind),
			Label:   spec.Label,
			Min:     spec.Min,
			Max:     spec.Max,
			Step:    spec.Step,
			Default: spec.Default.Value(spec.Kind),
			Options: spec.Options,
		},
	}
}

func Scenarios(list []*scenario.Scenario) []model.ScenarioView {
	out := make([]model.ScenarioView, len(list))
	for i, sc := range list {
		out[i] = Scenario(sc)
	}
	return out
}

func Categories(cats []scenario.Category) []model.CategoryView {
	out := make([]model.CategoryView, len(cats))
	for i, c := range cats {
		out[i] = model.CategoryView{Key: c.Key, Name: c.Name, Icon: c.Icon}
	}
	return out
}
