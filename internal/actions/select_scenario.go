package actions

import (
	"what-if-engine/internal/model"
	"what-if-engine/internal/session"
)

type selectScenarioProps struct {
	ScenarioID string `json:"scenario_id"`
}

type SelectScenarioHandler struct{}

func (h *SelectScenarioHandler) Validate(m *session.Machine, state session.State, action *model.Action) []model.Message {
	var props selectScenarioProps
	if err := decodeProps(action, &props); err != nil {
		return invalidProperties(err)
	}
	if props.ScenarioID == "" {
		return []model.Message{critical(model.CodeInvalidProperties, "scenario_id is required")}
	}
	return unknownScenario(m, props.ScenarioID)
}

func (h *SelectScenarioHandler) Apply(m *session.Machine, state session.State, action *model.Action) (session.State, []model.Message) {
	var props selectScenarioProps
	_ = decodeProps(action, &props)

	next, err := m.SelectScenario(state, props.ScenarioID)
	if err != nil {
		return state, unknownScenario(m, props.ScenarioID)
	}
	return next, nil
}
