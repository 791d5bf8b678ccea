package scenario

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type InputKind string

const (
	InputNumber InputKind = "number"
	InputChoice InputKind = "choice"
)

// Input is the single value a scenario is evaluated for. Number is used by
// numeric scenarios, Choice by single-choice ones.
type Input struct {
	Number float64
	Choice string
}

// NumberInput is shorthand for a numeric Input.
func NumberInput(v float64) Input {
	return Input{Number: v}
}

// Value returns the input as it would be typed: a float64 for numeric
// scenarios, the option string for single-choice ones.
func (in Input) Value(kind InputKind) any {
	if kind == InputChoice {
		return in.Choice
	}
	return in.Number
}

// InputSpec declares what a scenario accepts. Min, Max and Step are nil when
// the scenario does not declare them.
type InputSpec struct {
	Kind    InputKind
	Label   string
	Min     *float64
	Max     *float64
	Step    *float64
	Default Input
	Options []string
}

// Check reports ErrInvalidInput for values no formula can take: NaN and
// infinities, or a choice outside Options. Range is not checked here; see
// BoundaryPolicy.
func (s InputSpec) Check(in Input) error {
	switch s.Kind {
	case InputChoice:
		if !slices.Contains(s.Options, in.Choice) {
			return fmt.Errorf("%w: %q is not one of %v", ErrInvalidInput, in.Choice, s.Options)
		}
	default:
		if math.IsNaN(in.Number) || math.IsInf(in.Number, 0) {
			return fmt.Errorf("%w: %v is not a finite number", ErrInvalidInput, in.Number)
		}
	}
	return nil
}

// Parse converts user-typed text into an Input.
func (s InputSpec) Parse(text string) (Input, error) {
	text = strings.TrimSpace(text)
	if s.Kind == InputChoice {
		in := Input{Choice: text}
		return in, s.Check(in)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}
	in := NumberInput(v)
	return in, s.Check(in)
}

// Clamp pulls v into the declared bounds and reports whether it moved.
func (s InputSpec) Clamp(v float64) (float64, bool) {
	if s.Min != nil && v < *s.Min {
		return *s.Min, true
	}
	if s.Max != nil && v > *s.Max {
		return *s.Max, true
	}
	return v, false
}

// InBounds reports whether v satisfies Min and Max.
func (s InputSpec) InBounds(v float64) bool {
	_, moved := s.Clamp(v)
	return !moved
}

// BoundaryPolicy decides what happens to numeric input outside [Min, Max].
type BoundaryPolicy string

const (
	// PolicyClamp evaluates the nearest in-range value.
	PolicyClamp BoundaryPolicy = "clamp"
	// PolicyPassthrough evaluates the value as given.
	PolicyPassthrough BoundaryPolicy = "passthrough"
)

func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch p := BoundaryPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyClamp, PolicyPassthrough:
		return p, nil
	case "":
		return PolicyClamp, nil
	default:
		return "", fmt.Errorf("unknown boundary policy %q", s)
	}
}

func bound(v float64) *float64 {
	return &v
}
