package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"what-if-engine/internal/export"
	"what-if-engine/internal/format"
)

var (
	evalFormat string
	evalExport string
	evalOut    string

	now = time.Now
)

// evalCmd evaluates one scenario
var evalCmd = &cobra.Command{
	Use:   "eval [scenario-id] [value]",
	Short: "Evaluate a scenario for one input",
	Long: `Evaluates a scenario and prints its results in order.

Negative values look like flags; put them after "--".

Example:
  whatif eval coffee 4.5
  whatif eval savings 750 --format raw --export json --out ./exports
  whatif eval --format raw -- bitcoin -5`,
	Args: cobra.ExactArgs(2),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", format.NameDisplay, "Result format: display or raw")
	evalCmd.Flags().StringVarP(&evalExport, "export", "e", "", "Also write an export file: csv or json")
	evalCmd.Flags().StringVarP(&evalOut, "out", "o", ".", "Directory for export files")
}

func runEval(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	sc, err := reg.Get(args[0])
	if err != nil {
		return err
	}
	f, err := format.ByName(evalFormat)
	if err != nil {
		return err
	}

	in, err := sc.Input.Parse(args[1])
	if err != nil {
		return err
	}
	ev, err := sc.Evaluate(in)
	if err != nil {
		return err
	}
	if ev.Clamped {
		logger.Warn("Input outside the allowed range",
			zap.String("scenario", sc.ID),
			zap.Float64("requested", ev.Requested.Number),
			zap.Float64("evaluated", ev.Input.Number),
		)
	}

	table := f.Format(ev.Results)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", sc.Title, sc.Description)
	for _, e := range table {
		fmt.Fprintf(tw, "%s\t%s\n", e.Key, format.Text(e.Value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if evalExport == "" {
		return nil
	}
	kind, err := export.ParseKind(evalExport)
	if err != nil {
		return err
	}
	doc := export.NewDocument(sc, ev, f, now())
	path := filepath.Join(evalOut, doc.FileName(kind))

	if err := writeExport(path, kind, doc); err != nil {
		return err
	}
	logger.Info("Export written", zap.String("path", path))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// writeExport writes doc to path. A failed write leaves no file behind.
func writeExport(path string, kind export.Kind, doc export.Document) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return export.Write(file, kind, doc)
}
