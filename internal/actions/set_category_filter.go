package actions

import (
	"what-if-engine/internal/model"
	"what-if-engine/internal/scenario"
	"what-if-engine/internal/session"
)

type setCategoryFilterProps struct {
	Category string `json:"category"`
}

type SetCategoryFilterHandler struct{}

func (h *SetCategoryFilterHandler) Validate(m *session.Machine, state session.State, action *model.Action) []model.Message {
	var props setCategoryFilterProps
	if err := decodeProps(action, &props); err != nil {
		return invalidProperties(err)
	}
	if !m.Registry().HasCategory(category(props)) {
		return []model.Message{critical(model.CodeUnknownCategory, "Unknown category: %s", props.Category)}
	}
	return nil
}

func (h *SetCategoryFilterHandler) Apply(m *session.Machine, state session.State, action *model.Action) (session.State, []model.Message) {
	var props setCategoryFilterProps
	_ = decodeProps(action, &props)

	next, err := m.SetCategoryFilter(state, category(props))
	if err != nil {
		return state, []model.Message{critical(model.CodeUnknownCategory, "%v", err)}
	}
	return next, nil
}

// An omitted category resets the filter.
func category(p setCategoryFilterProps) string {
	if p.Category == "" {
		return scenario.AllCategories
	}
	return p.Category
}
