package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func evaluate(t *testing.T, reg *Registry, id string, v float64) *Evaluation {
	t.Helper()
	ev, err := reg.Evaluate(id, NumberInput(v))
	require.NoError(t, err)
	return ev
}

func TestBitcoinInvestment(t *testing.T) {
	reg := newTestRegistry(t)
	rs := evaluate(t, reg, "bitcoin", 1000).Results

	assert.Equal(t, []string{"investment", "bitcoins", "currentValue", "profit", "multiplier", AdvisoryKey}, rs.Keys())
	assert.InDelta(t, 1000, rs.Number("investment"), delta)
	assert.InDelta(t, 5, rs.Number("bitcoins"), delta)
	assert.InDelta(t, 225000, rs.Number("currentValue"), delta)
	assert.InDelta(t, 224000, rs.Number("profit"), delta)
	assert.InDelta(t, 225, rs.Number("multiplier"), delta)
	assert.Equal(t, "RECOMMENDATION: Dollar-cost averaging >> minimize risk", rs.Advisory())
}

func TestTeslaInvestment(t *testing.T) {
	reg := newTestRegistry(t)
	rs := evaluate(t, reg, "tesla", 1000).Results

	assert.InDelta(t, 200, rs.Number("shares"), delta)
	assert.InDelta(t, 50000, rs.Number("currentValue"), delta)
	assert.InDelta(t, 49000, rs.Number("profit"), delta)
	assert.InDelta(t, 50, rs.Number("multiplier"), delta)
}

func TestCoffeeOpportunityCost(t *testing.T) {
	reg := newTestRegistry(t)
	rs := evaluate(t, reg, "coffee", 5).Results

	assert.Equal(t, []string{"dailyCost", "yearlyCost", "tenYearCost", "ifInvested", "opportunity", AdvisoryKey}, rs.Keys())
	assert.InDelta(t, 1825, rs.Number("yearlyCost"), delta)
	assert.InDelta(t, 18250, rs.Number("tenYearCost"), delta)
	assert.InDelta(t, 27375, rs.Number("ifInvested"), delta)
	assert.InDelta(t, 9125, rs.Number("opportunity"), delta)
}

func TestSideHustle(t *testing.T) {
	reg := newTestRegistry(t)
	rs := evaluate(t, reg, "sidehustle", 25).Results

	assert.InDelta(t, 625, rs.Number("monthlyIncome"), delta)
	assert.InDelta(t, 7500, rs.Number("yearlyIncome"), delta)
	assert.InDelta(t, 37500, rs.Number("fiveYearTotal"), delta)
	assert.InDelta(t, 2, rs.Number("skillsGained"), delta)
}

func TestCompoundSavings(t *testing.T) {
	reg := newTestRegistry(t)
	rs := evaluate(t, reg, "savings", 500).Results

	assert.InDelta(t, 30000, rs.Number("totalSaved"), delta)
	assert.InDelta(t, 42528.7578, rs.Number("compoundValue"), 1e-3)
	assert.InDelta(t, 12528.7578, rs.Number("interestEarned"), 1e-3)
	assert.InDelta(t, 10, rs.Number("emergencyFund"), delta)
}

func TestLinearHabits(t *testing.T) {
	reg := newTestRegistry(t)

	sleep := evaluate(t, reg, "sleep", 1).Results
	assert.InDelta(t, 365, sleep.Number("yearlyHours"), delta)
	assert.InDelta(t, 15, sleep.Number("productivityIncrease"), 1e-9)
	assert.InDelta(t, 10, sleep.Number("healthImprovement"), 1e-9)
	assert.InDelta(t, 0.5, sleep.Number("lifeExpectancy"), delta)

	walking := evaluate(t, reg, "walking", 5000).Results
	assert.InDelta(t, 7300000, walking.Number("totalSteps"), delta)
	assert.InDelta(t, 292000, walking.Number("caloriesBurned"), 1e-6)
	assert.InDelta(t, 83.428571, walking.Number("weightLoss"), 1e-6)
	assert.InDelta(t, 50, walking.Number("healthScore"), delta)

	reading := evaluate(t, reg, "reading", 20).Results
	assert.InDelta(t, 21900, reading.Number("totalPages"), delta)
	assert.InDelta(t, 87, reading.Number("booksCompleted"), delta)
	assert.InDelta(t, 1305, reading.Number("knowledgeHours"), delta)
	assert.InDelta(t, 4350, reading.Number("vocabularyIncrease"), delta)

	coding := evaluate(t, reg, "coding", 10).Results
	assert.InDelta(t, 1560, coding.Number("totalHours"), delta)
	assert.InDelta(t, 15.6, coding.Number("expertiseLevel"), 1e-9)
	assert.InDelta(t, 31, coding.Number("projectsCompleted"), delta)
	assert.InDelta(t, 15600, coding.Number("salaryIncrease"), 1e-6)
}

func TestCodingExpertiseCapped(t *testing.T) {
	reg := newTestRegistry(t, WithBoundaryPolicy(PolicyPassthrough))
	rs := evaluate(t, reg, "coding", 1000).Results
	assert.InDelta(t, 100, rs.Number("expertiseLevel"), delta)
	assert.InDelta(t, 100000, rs.Number("salaryIncrease"), delta)
}

func TestEvaluateDeterministic(t *testing.T) {
	reg := newTestRegistry(t)
	all, err := reg.List(AllCategories)
	require.NoError(t, err)

	for _, sc := range all {
		t.Run(sc.ID, func(t *testing.T) {
			first, err := sc.Evaluate(sc.Input.Default)
			require.NoError(t, err)
			second, err := sc.Evaluate(sc.Input.Default)
			require.NoError(t, err)

			assert.Equal(t, first.Results.Keys(), second.Results.Keys())
			assert.Equal(t, first.Results, second.Results)
			assert.False(t, first.Clamped)

			advisories := 0
			for _, f := range first.Results {
				if f.Advisory {
					advisories++
				}
			}
			assert.Equal(t, 1, advisories)
			assert.Len(t, first.Results.Metrics(), len(first.Results)-1)
		})
	}
}
