package actions

const (
	NameSelectScenario    = "select_scenario"
	NameSetInput          = "set_input"
	NameEvaluate          = "evaluate"
	NameSetCategoryFilter = "set_category_filter"
	NameToggleBookmark    = "toggle_bookmark"
)

var registry = map[string]Handler{
	NameSelectScenario:    &SelectScenarioHandler{},
	NameSetInput:          &SetInputHandler{},
	NameEvaluate:          &EvaluateHandler{},
	NameSetCategoryFilter: &SetCategoryFilterHandler{},
	NameToggleBookmark:    &ToggleBookmarkHandler{},
}

func Get(name string) (Handler, bool) {
	h, ok := registry[name]
	return h, ok
}
