package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"what-if-engine/internal/assumptions"
	"what-if-engine/internal/format"
	"what-if-engine/internal/scenario"
)

var fixedNow = time.Date(2024, 3, 1, 12, 30, 45, 123_000_000, time.UTC)

func document(t *testing.T, id string, v float64, f format.Formatter) Document {
	t.Helper()
	reg, err := scenario.NewRegistry(assumptions.MustDefault())
	require.NoError(t, err)
	sc, err := reg.Get(id)
	require.NoError(t, err)
	ev, err := sc.Evaluate(scenario.NumberInput(v))
	require.NoError(t, err)
	return NewDocument(sc, ev, f, fixedNow)
}

func TestCSV(t *testing.T) {
	doc := document(t, "coffee", 5, format.Display{})

	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, doc))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+6)
	assert.Equal(t, "Scenario,COFFEE_SAVINGS", lines[0])
	assert.Equal(t, "Timestamp,2024-03-01T12:30:45.123Z", lines[1])
	assert.Equal(t, "dailyCost,$5", lines[2])
	assert.Equal(t, `yearlyCost,"$1,825"`, lines[3])

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, []string{"yearlyCost", "$1,825"}, records[3])
	last := records[len(records)-1]
	assert.Equal(t, []string{"aiSuggestion", "ALTERNATIVE: Home brewing saves 70% >> invest difference"}, last)
}

func TestCSVRawNumbers(t *testing.T) {
	doc := document(t, "bitcoin", 1000, format.Raw{})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, KindCSV, doc))
	assert.Contains(t, buf.String(), "currentValue,225000\n")
	assert.Contains(t, buf.String(), "multiplier,225\n")
}

func TestJSONRoundTrip(t *testing.T) {
	for _, f := range []format.Formatter{format.Display{}, format.Raw{}} {
		t.Run(f.Name(), func(t *testing.T) {
			doc := document(t, "bitcoin", 1000, f)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, KindJSON, doc))

			var parsed struct {
				Scenario  string         `json:"scenario"`
				Timestamp string         `json:"timestamp"`
				Input     float64        `json:"input"`
				Results   map[string]any `json:"results"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

			assert.Equal(t, "BITCOIN_INVESTMENT", parsed.Scenario)
			assert.Equal(t, "2024-03-01T12:30:45.123Z", parsed.Timestamp)
			assert.Equal(t, 1000.0, parsed.Input)
			assert.Equal(t, doc.Results.Map(), parsed.Results)
		})
	}
}

func TestJSONKeepsFieldOrder(t *testing.T) {
	doc := document(t, "bitcoin", 1000, format.Display{})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, doc))
	out := buf.String()

	prev := -1
	for _, key := range []string{"investment", "bitcoins", "currentValue", "profit", "multiplier", "aiSuggestion"} {
		idx := strings.Index(out, `"`+key+`"`)
		require.Greater(t, idx, prev, "key %s out of order", key)
		prev = idx
	}
}

func TestJSONInputIsRequestedValue(t *testing.T) {
	doc := document(t, "bitcoin", 0, format.Display{})
	assert.Equal(t, 0.0, doc.Input)
}

func TestClipboard(t *testing.T) {
	doc := document(t, "coffee", 5, format.Display{})

	b, err := Clipboard(doc.Results)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "{\n  \"dailyCost\": \"$5\""), string(b))
	assert.Contains(t, string(b), "Home brewing saves 70% >> invest difference")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, doc.Results.Map(), parsed)
	assert.NotContains(t, parsed, "timestamp")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "what-if-bitcoin-1709296245123.json", FileName("bitcoin", KindJSON, fixedNow))

	doc := document(t, "coffee", 5, format.Display{})
	assert.Equal(t, "what-if-coffee-1709296245123.csv", doc.FileName(KindCSV))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("CSV")
	require.NoError(t, err)
	assert.Equal(t, KindCSV, k)
	assert.Equal(t, "text/csv", k.ContentType())
	assert.Equal(t, "application/json", KindJSON.ContentType())

	_, err = ParseKind("xlsx")
	assert.Error(t, err)
}
