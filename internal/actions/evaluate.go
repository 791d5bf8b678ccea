package actions

import (
	"what-if-engine/internal/model"
	"what-if-engine/internal/session"
)

type EvaluateHandler struct{}

func (h *EvaluateHandler) Validate(m *session.Machine, state session.State, action *model.Action) []model.Message {
	var props struct{}
	if err := decodeProps(action, &props); err != nil {
		return invalidProperties(err)
	}
	return unknownScenario(m, state.ActiveScenario)
}

func (h *EvaluateHandler) Apply(m *session.Machine, state session.State, action *model.Action) (session.State, []model.Message) {
	next, ev, err := m.Evaluate(state)
	if err != nil {
		return state, []model.Message{critical(model.CodeInvalidInput, "%v", err)}
	}

	var msgs []model.Message
	if ev.Clamped {
		msgs = append(msgs, warning(model.CodeInputClamped,
			"Input %v for %s is outside the allowed range; evaluated %v instead",
			ev.Requested.Number, ev.ScenarioID, ev.Input.Number))
	}
	msgs = append(msgs, info(model.CodeSimulationComplete, "Simulation executed successfully: "+ev.ScenarioID))
	return next, msgs
}
