// Package export serializes an evaluated scenario for download or the
// clipboard.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"what-if-engine/internal/format"
	"what-if-engine/internal/scenario"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var ErrUnsupportedKind = errors.New("unsupported export format")

type Kind string

const (
	KindCSV  Kind = "csv"
	KindJSON Kind = "json"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCSV, KindJSON:
		return k, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedKind, s)
	}
}

func (k Kind) ContentType() string {
	if k == KindCSV {
		return "text/csv"
	}
	return "application/json"
}

// Document is everything an export needs.
type Document struct {
	ScenarioID string
	Title      string
	Timestamp  time.Time
	Input      any
	Results    format.Table
}

// NewDocument renders ev with f. Input is the value the user asked for, not
// the clamped one.
func NewDocument(sc *scenario.Scenario, ev *scenario.Evaluation, f format.Formatter, now time.Time) Document {
	return Document{
		ScenarioID: sc.ID,
		Title:      sc.Title,
		Timestamp:  now,
		Input:      ev.Requested.Value(sc.Input.Kind),
		Results:    f.Format(ev.Results),
	}
}

// FileName follows what-if-<scenarioId>-<epoch-millis>.<ext>.
func FileName(scenarioID string, k Kind, now time.Time) string {
	return fmt.Sprintf("what-if-%s-%d.%s", scenarioID, now.UnixMilli(), k)
}

// FileName names this document's export of kind k.
func (d Document) FileName(k Kind) string {
	return FileName(d.ScenarioID, k, d.Timestamp)
}

func (d Document) timestamp() string {
	return d.Timestamp.UTC().Format(TimestampLayout)
}

// Write encodes d as k.
func Write(w io.Writer, k Kind, d Document) error {
	switch k {
	case KindCSV:
		return CSV(w, d)
	case KindJSON:
		return JSON(w, d)
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedKind, k)
	}
}

// CSV writes a Scenario line, a Timestamp line, then one key,value line per
// field, the advisory field included.
func CSV(w io.Writer, d Document) error {
	cw := csv.NewWriter(w)
	rows := make([][]string, 0, len(d.Results)+2)
	rows = append(rows,
		[]string{"Scenario", d.Title},
		[]string{"Timestamp", d.timestamp()},
	)
	for _, e := range d.Results {
		rows = append(rows, []string{e.Key, format.Text(e.Value)})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

type jsonDocument struct {
	Scenario  string       `json:"scenario"`
	Timestamp string       `json:"timestamp"`
	Input     any          `json:"input"`
	Results   format.Table `json:"results"`
}

// JSON writes {scenario, timestamp, input, results}, indented.
func JSON(w io.Writer, d Document) error {
	b, err := json.MarshalIndentWithOption(jsonDocument{
		Scenario:  d.Title,
		Timestamp: d.timestamp(),
		Input:     d.Input,
		Results:   d.Results,
	}, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// Clipboard is the results table alone as indented JSON.
func Clipboard(t format.Table) ([]byte, error) {
	b, err := json.MarshalWithOption(t, json.DisableHTMLEscape())
	if err != nil {
		return nil, fmt.Errorf("encode clipboard: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return nil, fmt.Errorf("indent clipboard: %w", err)
	}
	return out.Bytes(), nil
}
