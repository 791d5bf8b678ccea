package scenario

import (
	"math"

	"what-if-engine/internal/assumptions"
)

// Kind selects the formula a scenario evaluates with.
type Kind int

const (
	KindBitcoin Kind = iota + 1
	KindTesla
	KindCoffee
	KindSideHustle
	KindSavings
	KindSleep
	KindWalking
	KindReading
	KindCoding
)

// formula maps one input to the metric fields of a ResultSet. Formulas are
// pure: same table, same input, same fields.
type formula func(t *assumptions.Table, in Input) []Field

var formulas = map[Kind]formula{
	KindBitcoin: func(t *assumptions.Table, in Input) []Field {
		return assetInvestment(t.Bitcoin, "bitcoins", 4, in.Number)
	},
	KindTesla: func(t *assumptions.Table, in Input) []Field {
		return assetInvestment(t.Tesla, "shares", 2, in.Number)
	},
	KindCoffee:     recurringCost,
	KindSideHustle: sideHustle,
	KindSavings:    compoundSavings,
	KindSleep:      sleepImpact,
	KindWalking:    walkingImpact,
	KindReading:    readingImpact,
	KindCoding:     codingImpact,
}

// assetInvestment is buy at the past price, hold, value at the present price.
func assetInvestment(p assumptions.AssetPrice, unitsKey string, unitsDecimals int, amount float64) []Field {
	units := amount / p.PricePast
	value := units * p.PricePresent
	return []Field{
		{Key: "investment", Number: amount, Hint: currency},
		{Key: unitsKey, Number: units, Hint: fixed(unitsDecimals, "", "")},
		{Key: "currentValue", Number: value, Hint: currency},
		{Key: "profit", Number: value - amount, Hint: currency},
		{Key: "multiplier", Number: value / amount, Hint: fixed(1, "", "x")},
	}
}

func recurringCost(t *assumptions.Table, in Input) []Field {
	c := t.Coffee
	daily := in.Number
	yearly := daily * c.DaysPerYear
	horizon := yearly * c.HorizonYears
	invested := horizon * c.GrowthFactor
	return []Field{
		{Key: "dailyCost", Number: daily, Hint: plain("$", "")},
		{Key: "yearlyCost", Number: yearly, Hint: currency},
		{Key: "tenYearCost", Number: horizon, Hint: currency},
		{Key: "ifInvested", Number: invested, Hint: currency},
		{Key: "opportunity", Number: invested - horizon, Hint: currency},
	}
}

func sideHustle(t *assumptions.Table, in Input) []Field {
	h := t.SideHustle
	hours := in.Number
	monthly := hours * h.HourlyRate
	yearly := monthly * h.MonthsPerYear
	return []Field{
		{Key: "hoursPerMonth", Number: hours, Hint: number},
		{Key: "monthlyIncome", Number: monthly, Hint: currency},
		{Key: "yearlyIncome", Number: yearly, Hint: currency},
		{Key: "fiveYearTotal", Number: yearly * h.HorizonYears, Hint: currency},
		{Key: "skillsGained", Number: math.Floor(hours / h.HoursPerSkill), Hint: plain("", " NEW_SKILLS")},
	}
}

func compoundSavings(t *assumptions.Table, in Input) []Field {
	s := t.Savings
	monthly := in.Number
	total := monthly * s.Months
	compounded := total * math.Pow(1+s.AnnualRate/12, s.Months)
	return []Field{
		{Key: "monthlySavings", Number: monthly, Hint: currency},
		{Key: "totalSaved", Number: total, Hint: currency},
		{Key: "compoundValue", Number: compounded, Hint: fixed(0, "$", "")},
		{Key: "interestEarned", Number: compounded - total, Hint: fixed(0, "$", "")},
		{Key: "emergencyFund", Number: total / (monthly * s.EmergencyMonths), Hint: fixed(1, "", " MONTHS")},
	}
}

func sleepImpact(t *assumptions.Table, in Input) []Field {
	s := t.Sleep
	hours := in.Number
	return []Field{
		{Key: "extraHours", Number: hours, Hint: number},
		{Key: "yearlyHours", Number: hours * s.DaysPerYear, Hint: number},
		{Key: "productivityIncrease", Number: hours * s.ProductivityPerHour * 100, Hint: fixed(1, "", "%")},
		{Key: "healthImprovement", Number: hours * s.HealthPerHour * 100, Hint: fixed(1, "", "%")},
		{Key: "lifeExpectancy", Number: hours * s.LifeYearsPerHour, Hint: fixed(1, "+", " YEARS")},
	}
}

func walkingImpact(t *assumptions.Table, in Input) []Field {
	w := t.Walking
	steps := in.Number
	days := w.DaysPerYear * w.Years
	total := steps * days
	calories := total * w.CaloriesPerStep
	return []Field{
		{Key: "dailySteps", Number: steps, Hint: grouped},
		{Key: "totalSteps", Number: total, Hint: grouped},
		{Key: "caloriesBurned", Number: calories, Hint: fixed(0, "", "")},
		{Key: "weightLoss", Number: calories / w.CaloriesPerPound, Hint: fixed(1, "", " LBS")},
		{Key: "healthScore", Number: steps / w.TargetSteps * 100, Hint: fixed(0, "", "%")},
	}
}

func readingImpact(t *assumptions.Table, in Input) []Field {
	r := t.Reading
	pages := in.Number
	days := r.DaysPerYear * r.Years
	total := pages * days
	books := math.Floor(total / r.PagesPerBook)
	return []Field{
		{Key: "dailyPages", Number: pages, Hint: number},
		{Key: "totalPages", Number: total, Hint: grouped},
		{Key: "booksCompleted", Number: books, Hint: number},
		{Key: "knowledgeHours", Number: books * r.HoursPerBook, Hint: plain("", " HOURS")},
		{Key: "vocabularyIncrease", Number: books * r.WordsPerBook, Hint: Hint{Style: StyleGrouped, Prefix: "+", Suffix: " WORDS"}},
	}
}

func codingImpact(t *assumptions.Table, in Input) []Field {
	c := t.Coding
	hours := in.Number
	total := hours * c.WeeksPerYear * c.Years
	expertise := math.Min(total/c.HoursPerPercent, c.MaxExpertise)
	return []Field{
		{Key: "weeklyHours", Number: hours, Hint: number},
		{Key: "totalHours", Number: total, Hint: grouped},
		{Key: "expertiseLevel", Number: expertise, Hint: fixed(0, "", "%")},
		{Key: "projectsCompleted", Number: math.Floor(total / c.HoursPerProject), Hint: number},
		{Key: "salaryIncrease", Number: expertise * c.SalaryPerPercent, Hint: fixed(0, "+", " USD")},
	}
}
