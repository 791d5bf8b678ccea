package main

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"what-if-engine/internal/engine"
	"what-if-engine/internal/scenario"
)

var (
	categoryFilter string
	listJSON       bool
)

// scenariosCmd lists the registry
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List scenarios in registration order",
	Args:  cobra.NoArgs,
	RunE:  runScenarios,
}

// categoriesCmd lists the category catalog
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List scenario categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	scenariosCmd.Flags().StringVarP(&categoryFilter, "category", "c", scenario.AllCategories, "Only list scenarios in this category")
	scenariosCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of a table")
	categoriesCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of a table")
}

func runScenarios(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	list, err := reg.List(categoryFilter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return printJSON(cmd, engine.Scenarios(list))
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tTITLE\tINPUT")
	for _, sc := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", sc.ID, sc.Category, sc.Title, sc.Input.Label)
	}
	return tw.Flush()
}

func runCategories(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	cats := reg.Categories()

	if listJSON {
		return printJSON(cmd, engine.Categories(cats))
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tICON")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Key, c.Name, c.Icon)
	}
	return tw.Flush()
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndentWithOption(v, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
