// Package format turns raw scenario results into presentable values. It is a
// separate layer so a client can ask for display strings or bare numbers
// without the formulas knowing.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"

	"what-if-engine/internal/scenario"
)

var ErrUnknownFormat = errors.New("unknown format")

// Formatter renders a ResultSet into an ordered Table.
type Formatter interface {
	Name() string
	Format(rs scenario.ResultSet) Table
}

const (
	NameDisplay = "display"
	NameRaw     = "raw"
)

// ByName returns the formatter registered under name. An empty name selects
// the display formatter.
func ByName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", NameDisplay:
		return Display{}, nil
	case NameRaw:
		return Raw{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// Entry is one rendered field. Value is a string or a float64.
type Entry struct {
	Key   string
	Value any
}

// Table is an ordered key/value mapping; it marshals to a JSON object whose
// keys keep their order.
type Table []Entry

func (t Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.MarshalWithOption(finite(e.Value), json.DisableHTMLEscape())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// finite maps NaN and infinities to nil so they encode as JSON null.
func finite(v any) any {
	if x, ok := v.(float64); ok && !isFinite(x) {
		return nil
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Map flattens the table; order is lost.
func (t Table) Map() map[string]any {
	m := make(map[string]any, len(t))
	for _, e := range t {
		m[e.Key] = e.Value
	}
	return m
}

// Lookup returns the rendered value of key.
func (t Table) Lookup(key string) (any, bool) {
	for _, e := range t {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Text renders a value the way it appears in a CSV cell.
func Text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return Plain(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// Display reproduces the calculator's on-screen rendering.
type Display struct{}

func (Display) Name() string { return NameDisplay }

func (Display) Format(rs scenario.ResultSet) Table {
	t := make(Table, 0, len(rs))
	for _, f := range rs {
		t = append(t, Entry{Key: f.Key, Value: render(f)})
	}
	return t
}

func render(f scenario.Field) any {
	if f.Advisory {
		return f.Text
	}
	h := f.Hint
	switch h.Style {
	case scenario.StylePlain:
		return h.Prefix + Plain(f.Number) + h.Suffix
	case scenario.StyleGrouped:
		return h.Prefix + Grouped(f.Number) + h.Suffix
	case scenario.StyleFixed:
		return h.Prefix + Fixed(f.Number, h.Decimals) + h.Suffix
	default:
		return f.Number
	}
}

// Raw leaves every metric as a bare number. NaN and infinities become nil.
type Raw struct{}

func (Raw) Name() string { return NameRaw }

func (Raw) Format(rs scenario.ResultSet) Table {
	t := make(Table, 0, len(rs))
	for _, f := range rs {
		if f.Advisory {
			t = append(t, Entry{Key: f.Key, Value: f.Text})
			continue
		}
		t = append(t, Entry{Key: f.Key, Value: finite(f.Number)})
	}
	return t
}

// Plain is the shortest decimal text of v: 5 → "5", 0.5 → "0.5".
func Plain(v float64) string {
	if !isFinite(v) {
		return nonFinite(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// unscaled is the magnitude above which float64 carries no fractional
// digits worth rounding, so scaling is skipped.
const unscaled = 1e15

// Grouped renders v with thousands separators and at most three decimals.
// Infinities render as "∞".
func Grouped(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	r := v
	if math.Abs(v) < unscaled {
		r = math.Round(v*1000) / 1000
	}
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return humanize.Commaf(r)
}

// Fixed renders v with exactly decimals digits, ties rounding away from zero.
func Fixed(v float64, decimals int) string {
	if !isFinite(v) {
		return nonFinite(v)
	}
	if math.Abs(v) >= unscaled {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	p := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', decimals, 64)
}

func nonFinite(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	default:
		return "NaN"
	}
}
