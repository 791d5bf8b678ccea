package actions

import (
	"what-if-engine/internal/model"
	"what-if-engine/internal/session"
)

type toggleBookmarkProps struct {
	ScenarioID string `json:"scenario_id"`
}

type ToggleBookmarkHandler struct{}

func (h *ToggleBookmarkHandler) Validate(m *session.Machine, state session.State, action *model.Action) []model.Message {
	var props toggleBookmarkProps
	if err := decodeProps(action, &props); err != nil {
		return invalidProperties(err)
	}
	return unknownScenario(m, targetOrActive(props.ScenarioID, state))
}

func (h *ToggleBookmarkHandler) Apply(m *session.Machine, state session.State, action *model.Action) (session.State, []model.Message) {
	var props toggleBookmarkProps
	_ = decodeProps(action, &props)
	id := targetOrActive(props.ScenarioID, state)

	next, saved, err := m.ToggleBookmark(state, id)
	if err != nil {
		return state, unknownScenario(m, id)
	}
	if saved {
		return next, []model.Message{info(model.CodeBookmarkSaved, "Scenario added to favorites: "+id)}
	}
	return next, []model.Message{info(model.CodeBookmarkRemoved, "Scenario removed from favorites: "+id)}
}
