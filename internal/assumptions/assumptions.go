// Package assumptions holds the constant catalog the scenario formulas read
// from: historical prices, growth factors and per-unit coefficients.
//
// The defaults are baked into the binary from assumptions.yaml. Operators can
// overlay a file of their own with LoadFile; keys it omits keep their
// default values.
package assumptions

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed assumptions.yaml
var embeddedDefaults []byte

// Table is the full set of constants. Treat it as read-only once loaded.
type Table struct {
	Version    string     `yaml:"version" json:"version"`
	Bitcoin    AssetPrice `yaml:"bitcoin" json:"bitcoin"`
	Tesla      AssetPrice `yaml:"tesla" json:"tesla"`
	Coffee     Recurring  `yaml:"coffee" json:"coffee"`
	SideHustle SideHustle `yaml:"side_hustle" json:"side_hustle"`
	Savings    Savings    `yaml:"savings" json:"savings"`
	Sleep      Sleep      `yaml:"sleep" json:"sleep"`
	Walking    Walking    `yaml:"walking" json:"walking"`
	Reading    Reading    `yaml:"reading" json:"reading"`
	Coding     Coding     `yaml:"coding" json:"coding"`
}

// AssetPrice is a buy-then-hold price pair.
type AssetPrice struct {
	PricePast    float64 `yaml:"price_past" json:"price_past"`
	PricePresent float64 `yaml:"price_present" json:"price_present"`
}

type Recurring struct {
	DaysPerYear  float64 `yaml:"days_per_year" json:"days_per_year"`
	HorizonYears float64 `yaml:"horizon_years" json:"horizon_years"`
	GrowthFactor float64 `yaml:"growth_factor" json:"growth_factor"`
}

type SideHustle struct {
	HourlyRate    float64 `yaml:"hourly_rate" json:"hourly_rate"`
	MonthsPerYear float64 `yaml:"months_per_year" json:"months_per_year"`
	HorizonYears  float64 `yaml:"horizon_years" json:"horizon_years"`
	HoursPerSkill float64 `yaml:"hours_per_skill" json:"hours_per_skill"`
}

type Savings struct {
	Months          float64 `yaml:"months" json:"months"`
	AnnualRate      float64 `yaml:"annual_rate" json:"annual_rate"`
	EmergencyMonths float64 `yaml:"emergency_months" json:"emergency_months"`
}

type Sleep struct {
	DaysPerYear         float64 `yaml:"days_per_year" json:"days_per_year"`
	ProductivityPerHour float64 `yaml:"productivity_per_hour" json:"productivity_per_hour"`
	HealthPerHour       float64 `yaml:"health_per_hour" json:"health_per_hour"`
	LifeYearsPerHour    float64 `yaml:"life_years_per_hour" json:"life_years_per_hour"`
}

type Walking struct {
	DaysPerYear      float64 `yaml:"days_per_year" json:"days_per_year"`
	Years            float64 `yaml:"years" json:"years"`
	CaloriesPerStep  float64 `yaml:"calories_per_step" json:"calories_per_step"`
	CaloriesPerPound float64 `yaml:"calories_per_pound" json:"calories_per_pound"`
	TargetSteps      float64 `yaml:"target_steps" json:"target_steps"`
}

type Reading struct {
	DaysPerYear  float64 `yaml:"days_per_year" json:"days_per_year"`
	Years        float64 `yaml:"years" json:"years"`
	PagesPerBook float64 `yaml:"pages_per_book" json:"pages_per_book"`
	HoursPerBook float64 `yaml:"hours_per_book" json:"hours_per_book"`
	WordsPerBook float64 `yaml:"words_per_book" json:"words_per_book"`
}

type Coding struct {
	WeeksPerYear     float64 `yaml:"weeks_per_year" json:"weeks_per_year"`
	Years            float64 `yaml:"years" json:"years"`
	HoursPerPercent  float64 `yaml:"hours_per_percent" json:"hours_per_percent"`
	MaxExpertise     float64 `yaml:"max_expertise" json:"max_expertise"`
	HoursPerProject  float64 `yaml:"hours_per_project" json:"hours_per_project"`
	SalaryPerPercent float64 `yaml:"salary_per_percent" json:"salary_per_percent"`
}

// Default parses the embedded catalog.
func Default() (*Table, error) {
	t := &Table{}
	if err := yaml.Unmarshal(embeddedDefaults, t); err != nil {
		return nil, fmt.Errorf("parse embedded assumptions: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("embedded assumptions: %w", err)
	}
	return t, nil
}

// MustDefault is Default for package initialisation and tests.
func MustDefault() *Table {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// LoadFile overlays the YAML document at path onto the defaults.
func LoadFile(path string) (*Table, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assumptions %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse assumptions %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("assumptions %s: %w", path, err)
	}
	return t, nil
}

// Load returns the defaults when path is empty, otherwise LoadFile(path).
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Validate rejects values that would make a formula divide by zero or
// produce a meaningless horizon.
func (t *Table) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	if t.Version == "" {
		errs = append(errs, errors.New("version is required"))
	}

	positive("bitcoin.price_past", t.Bitcoin.PricePast)
	nonNegative("bitcoin.price_present", t.Bitcoin.PricePresent)
	positive("tesla.price_past", t.Tesla.PricePast)
	nonNegative("tesla.price_present", t.Tesla.PricePresent)

	positive("coffee.days_per_year", t.Coffee.DaysPerYear)
	positive("coffee.horizon_years", t.Coffee.HorizonYears)
	nonNegative("coffee.growth_factor", t.Coffee.GrowthFactor)

	nonNegative("side_hustle.hourly_rate", t.SideHustle.HourlyRate)
	positive("side_hustle.months_per_year", t.SideHustle.MonthsPerYear)
	positive("side_hustle.horizon_years", t.SideHustle.HorizonYears)
	positive("side_hustle.hours_per_skill", t.SideHustle.HoursPerSkill)

	positive("savings.months", t.Savings.Months)
	nonNegative("savings.annual_rate", t.Savings.AnnualRate)
	positive("savings.emergency_months", t.Savings.EmergencyMonths)

	positive("sleep.days_per_year", t.Sleep.DaysPerYear)

	positive("walking.days_per_year", t.Walking.DaysPerYear)
	positive("walking.years", t.Walking.Years)
	positive("walking.calories_per_pound", t.Walking.CaloriesPerPound)
	positive("walking.target_steps", t.Walking.TargetSteps)

	positive("reading.days_per_year", t.Reading.DaysPerYear)
	positive("reading.years", t.Reading.Years)
	positive("reading.pages_per_book", t.Reading.PagesPerBook)

	positive("coding.weeks_per_year", t.Coding.WeeksPerYear)
	positive("coding.years", t.Coding.Years)
	positive("coding.hours_per_percent", t.Coding.HoursPerPercent)
	positive("coding.max_expertise", t.Coding.MaxExpertise)
	positive("coding.hours_per_project", t.Coding.HoursPerProject)

	return errors.Join(errs...)
}
