package scenario

// AdvisoryKey is the key of the free-text recommendation field.
const AdvisoryKey = "aiSuggestion"

// Style tells the formatting layer how a numeric field is meant to be shown.
// Formulas only pick a style; they never produce display strings.
type Style int

const (
	// StyleNumber stays a bare number.
	StyleNumber Style = iota
	// StylePlain is the shortest decimal text of the number.
	StylePlain
	// StyleGrouped uses thousands separators and at most three decimals.
	StyleGrouped
	// StyleFixed uses exactly Hint.Decimals decimals.
	StyleFixed
)

type Hint struct {
	Style    Style
	Decimals int
	Prefix   string
	Suffix   string
}

var (
	currency = Hint{Style: StyleGrouped, Prefix: "$"}
	grouped  = Hint{Style: StyleGrouped}
	number   = Hint{Style: StyleNumber}
)

func fixed(decimals int, prefix, suffix string) Hint {
	return Hint{Style: StyleFixed, Decimals: decimals, Prefix: prefix, Suffix: suffix}
}

func plain(prefix, suffix string) Hint {
	return Hint{Style: StylePlain, Prefix: prefix, Suffix: suffix}
}

// Field is one labelled output. Advisory fields carry Text; every other
// field carries Number.
type Field struct {
	Key      string
	Number   float64
	Text     string
	Advisory bool
	Hint     Hint
}

// ResultSet is the ordered output of one evaluation.
type ResultSet []Field

// Keys returns field keys in order, the advisory field included.
func (rs ResultSet) Keys() []string {
	keys := make([]string, len(rs))
	for i, f := range rs {
		keys[i] = f.Key
	}
	return keys
}

// Get looks a field up by key.
func (rs ResultSet) Get(key string) (Field, bool) {
	for _, f := range rs {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Number returns the raw value of a numeric field, or 0 when absent.
func (rs ResultSet) Number(key string) float64 {
	f, _ := rs.Get(key)
	return f.Number
}

// Advisory returns the recommendation text, if any.
func (rs ResultSet) Advisory() string {
	for _, f := range rs {
		if f.Advisory {
			return f.Text
		}
	}
	return ""
}

// Metrics returns every non-advisory field, in order.
func (rs ResultSet) Metrics() ResultSet {
	out := make(ResultSet, 0, len(rs))
	for _, f := range rs {
		if !f.Advisory {
			out = append(out, f)
		}
	}
	return out
}

// Evaluation is a ResultSet together with the input that produced it.
type Evaluation struct {
	ScenarioID string
	Requested  Input
	Input      Input
	Clamped    bool
	Results    ResultSet
}
