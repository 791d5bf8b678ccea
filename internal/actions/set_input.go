package actions

import (
	"bytes"
	"errors"

	json "github.com/goccy/go-json"

	"what-if-engine/internal/model"
	"what-if-engine/internal/scenario"
	"what-if-engine/internal/session"
)

type setInputProps struct {
	ScenarioID string          `json:"scenario_id"`
	Value      json.RawMessage `json:"value"`
}

type SetInputHandler struct{}

func (h *SetInputHandler) Validate(m *session.Machine, state session.State, action *model.Action) []model.Message {
	var props setInputProps
	if err := decodeProps(action, &props); err != nil {
		return invalidProperties(err)
	}
	if v := bytes.TrimSpace(props.Value); len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return []model.Message{critical(model.CodeInvalidProperties, "value is required")}
	}
	return unknownScenario(m, targetOrActive(props.ScenarioID, state))
}

// Apply accepts either a JSON number or the text a user typed. Input that
// cannot be used leaves the prior value in place with a warning.
func (h *SetInputHandler) Apply(m *session.Machine, state session.State, action *model.Action) (session.State, []model.Message) {
	var props setInputProps
	_ = decodeProps(action, &props)
	id := targetOrActive(props.ScenarioID, state)

	var (
		next session.State
		err  error
	)
	var text string
	if json.Unmarshal(props.Value, &text) == nil {
		next, err = m.SetInputText(state, id, text)
	} else {
		var v float64
		if err = json.Unmarshal(props.Value, &v); err == nil {
			next, err = m.SetInput(state, id, scenario.NumberInput(v))
		} else {
			err = errors.Join(scenario.ErrInvalidInput, err)
		}
	}

	switch {
	case err == nil:
		return next, nil
	case errors.Is(err, scenario.ErrUnknownScenario):
		return state, unknownScenario(m, id)
	default:
		return state, []model.Message{warning(model.CodeInvalidInput, "Input for %s ignored: %v", id, err)}
	}
}
