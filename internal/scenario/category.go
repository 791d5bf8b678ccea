package scenario

// AllCategories is the pseudo-category that matches every scenario.
const AllCategories = "all"

type Category struct {
	Key  string
	Name string
	Icon string
}

var categories = []Category{
	{Key: AllCategories, Name: "ALL_SCENARIOS", Icon: "⚡"},
	{Key: "finance", Name: "FINANCE", Icon: "₿"},
	{Key: "health", Name: "HEALTH", Icon: "♦"},
	{Key: "productivity", Name: "PRODUCTIVITY", Icon: "◈"},
	{Key: "career", Name: "CAREER", Icon: "◉"},
	{Key: "education", Name: "EDUCATION", Icon: "◊"},
	{Key: "lifestyle", Name: "LIFESTYLE", Icon: "⟐"},
	{Key: "relationships", Name: "RELATIONSHIPS", Icon: "♥"},
	{Key: "environment", Name: "ENVIRONMENT", Icon: "🌍"},
	{Key: "technology", Name: "TECHNOLOGY", Icon: "⚡"},
}
