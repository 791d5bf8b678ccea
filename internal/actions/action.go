package actions

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"what-if-engine/internal/model"
	"what-if-engine/internal/session"
)

// Handler defines the contract for every session action. Validate reports
// what would stop the action; Apply returns the next state. Neither may
// modify the State it is given.
type Handler interface {
	Validate(m *session.Machine, state session.State, action *model.Action) []model.Message
	Apply(m *session.Machine, state session.State, action *model.Action) (session.State, []model.Message)
}

// decodeProps unmarshals action properties into dst. Missing or null
// properties leave dst at its zero value.
func decodeProps(action *model.Action, dst any) error {
	raw := bytes.TrimSpace(action.Properties)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s properties: %w", action.ActionName, err)
	}
	return nil
}

func critical(code, format string, args ...any) model.Message {
	return model.Message{Level: model.LevelCritical, Code: code, Message: fmt.Sprintf(format, args...)}
}

func warning(code, format string, args ...any) model.Message {
	return model.Message{Level: model.LevelWarning, Code: code, Message: fmt.Sprintf(format, args...)}
}

func info(code, message string) model.Message {
	return model.Message{Level: model.LevelInfo, Code: code, Message: message}
}

func invalidProperties(err error) []model.Message {
	return []model.Message{critical(model.CodeInvalidProperties, "%v", err)}
}

// targetOrActive resolves an optional scenario_id to the active scenario.
func targetOrActive(id string, state session.State) string {
	if id == "" {
		return state.ActiveScenario
	}
	return id
}

func unknownScenario(m *session.Machine, id string) []model.Message {
	if m.Registry().Has(id) {
		return nil
	}
	return []model.Message{critical(model.CodeUnknownScenario, "Unknown scenario: %s", id)}
}
