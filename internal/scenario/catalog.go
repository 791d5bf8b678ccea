package scenario

// catalog lists every scenario in registration order. Formula constants live
// in the assumptions table, not here.
func catalog() []Scenario {
	return []Scenario{
		{
			ID:          "bitcoin",
			Title:       "BITCOIN_INVESTMENT",
			Description: "SIMULATE: Bitcoin investment from 2012 → 2024",
			Icon:        "₿",
			Category:    "finance",
			Kind:        KindBitcoin,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "INVESTMENT_AMOUNT ($)",
				Min:     bound(1),
				Default: NumberInput(1000),
			},
			Advice: "RECOMMENDATION: Dollar-cost averaging >> minimize risk",
		},
		{
			ID:          "tesla",
			Title:       "TESLA_STOCK",
			Description: "ANALYZE: Tesla stock investment 2010 → 2024",
			Icon:        "🚗",
			Category:    "finance",
			Kind:        KindTesla,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "INVESTMENT_AMOUNT ($)",
				Min:     bound(1),
				Default: NumberInput(1000),
			},
			Advice: "STRATEGY: Focus on disruptive innovation companies",
		},
		{
			ID:          "coffee",
			Title:       "COFFEE_SAVINGS",
			Description: "CALCULATE: Daily coffee cost over 10 years",
			Icon:        "☕",
			Category:    "finance",
			Kind:        KindCoffee,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "DAILY_COFFEE_COST ($)",
				Min:     bound(1),
				Step:    bound(0.5),
				Default: NumberInput(5),
			},
			Advice: "ALTERNATIVE: Home brewing saves 70% >> invest difference",
		},
		{
			ID:          "sidehustle",
			Title:       "SIDE_HUSTLE",
			Description: "PROJECT: Side hustle income potential",
			Icon:        "💰",
			Category:    "finance",
			Kind:        KindSideHustle,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "HOURS_PER_MONTH",
				Min:     bound(1),
				Default: NumberInput(20),
			},
			Advice: "OPTIMIZE: Focus on high-value skills >> increase rate",
		},
		{
			ID:          "savings",
			Title:       "WEALTH_ACCUMULATION",
			Description: "PROJECT: Monthly savings compound growth",
			Icon:        "🏦",
			Category:    "finance",
			Kind:        KindSavings,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "MONTHLY_SAVINGS ($)",
				Min:     bound(100),
				Step:    bound(100),
				Default: NumberInput(500),
			},
			Advice: "AUTOMATE: Set recurring transfers >> remove friction",
		},
		{
			ID:          "sleep",
			Title:       "SLEEP_OPTIMIZATION",
			Description: "CALCULATE: Extra sleep impact on performance",
			Icon:        "😴",
			Category:    "health",
			Kind:        KindSleep,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "EXTRA_SLEEP_HOURS/DAY",
				Min:     bound(0.5),
				Max:     bound(3),
				Step:    bound(0.5),
				Default: NumberInput(1),
			},
			Advice: "PROTOCOL: Consistent bedtime >> optimize circadian rhythm",
		},
		{
			ID:          "walking",
			Title:       "MOVEMENT_PROTOCOL",
			Description: "ANALYZE: Daily steps impact since 2020",
			Icon:        "🚶",
			Category:    "health",
			Kind:        KindWalking,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "DAILY_STEPS",
				Min:     bound(1000),
				Max:     bound(20000),
				Step:    bound(500),
				Default: NumberInput(5000),
			},
			Advice: "STRATEGY: Progressive overload >> 2K base + 500 weekly",
		},
		{
			ID:          "reading",
			Title:       "KNOWLEDGE_ACQUISITION",
			Description: "COMPUTE: Daily reading compound effect",
			Icon:        "📚",
			Category:    "productivity",
			Kind:        KindReading,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "PAGES_READ/DAY",
				Min:     bound(5),
				Max:     bound(100),
				Step:    bound(5),
				Default: NumberInput(20),
			},
			Advice: "MIX_RATIO: 70% non-fiction >> 30% fiction optimal",
		},
		{
			ID:          "coding",
			Title:       "CODING_JOURNEY",
			Description: "TRACK: Programming skill development",
			Icon:        "💻",
			Category:    "career",
			Kind:        KindCoding,
			Input: InputSpec{
				Kind:    InputNumber,
				Label:   "HOURS_PER_WEEK",
				Min:     bound(1),
				Max:     bound(40),
				Default: NumberInput(10),
			},
			Advice: "FOCUS: Build projects >> theory alone insufficient",
		},
	}
}
