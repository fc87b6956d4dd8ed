// ABOUTME: CLI commands for managing metric definitions.
// ABOUTME: define, list, show, edit, and delete under 'lifetrack metric'.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scandolo/life-tracker/internal/catalog"
	"github.com/scandolo/life-tracker/internal/models"
)

var metricCmd = &cobra.Command{
	Use:     "metric",
	Aliases: []string{"m"},
	Short:   "Manage metric definitions",
}

var (
	defineKind        string
	defineMin         string
	defineMax         string
	defineScaleMin    int
	defineScaleMax    int
	defineCategory    string
	defineDescription string
	defineExample     string
	defineExampleLow  string
	defineExampleHigh string
)

var metricDefineCmd = &cobra.Command{
	Use:   "define <name>",
	Short: "Define a new metric",
	Long: `Define a metric to track. Names are unique; the kind is fixed once
set, since reinterpreting recorded values would corrupt history.

Examples:
  lifetrack metric define "Coffee Cups" --kind quantitative --min 0 --max 20
  lifetrack metric define "Focus" --kind qualitative --scale-min 1 --scale-max 5 \
    --example-low "1 = squirrel!" --example-high "5 = deep work all day"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMetricKind(defineKind) {
			return fmt.Errorf("unknown metric kind: %s (want quantitative or qualitative)", defineKind)
		}

		def := catalog.Definition{
			Name:        args[0],
			Kind:        models.MetricKind(defineKind),
			Category:    defineCategory,
			Description: defineDescription,
			Example:     defineExample,
			ExampleLow:  defineExampleLow,
			ExampleHigh: defineExampleHigh,
		}

		if def.Kind == models.KindQuantitative {
			domain, err := parseBounds(defineMin, defineMax)
			if err != nil {
				return err
			}
			def.Domain = domain
		} else {
			def.Domain = models.RatingScale(defineScaleMin, defineScaleMax)
		}

		m, err := cat.Define(userID, def)
		if err != nil {
			return fmt.Errorf("failed to define metric: %w", err)
		}

		color.Green("✓ Defined %s", m.Name)
		fmt.Printf("  %s %s %s\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.Kind, describeDomain(m))
		return nil
	},
}

var metricListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List metric definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := cat.List(userID)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}

		if len(metrics) == 0 {
			fmt.Println("No metrics defined. Run 'lifetrack init' for the default set.")
			return nil
		}

		faint := color.New(color.Faint)
		category := ""
		for _, m := range metrics {
			if m.Category != category {
				category = m.Category
				fmt.Println(color.New(color.Bold).Sprint(category))
			}
			fmt.Printf("  %s %s %s %s\n",
				faint.Sprint(m.ID.String()[:8]),
				padRight(m.Name, 24),
				padRight(string(m.Kind), 12),
				faint.Sprint(describeDomain(m)))
		}
		return nil
	},
}

var metricShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one metric's definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := resolveMetric(args[0])
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(m.Name), faint.Sprint(m.ID.String()[:8]))
		fmt.Printf("  kind:     %s\n", m.Kind)
		fmt.Printf("  domain:   %s\n", describeDomain(m))
		if m.Category != "" {
			fmt.Printf("  category: %s\n", m.Category)
		}
		if m.Description != "" {
			fmt.Printf("  about:    %s\n", m.Description)
		}
		if m.Example != nil {
			fmt.Printf("  example:  %s\n", *m.Example)
		}
		if m.ExampleLow != nil && *m.ExampleLow != "" {
			fmt.Printf("  low:      %s\n", *m.ExampleLow)
		}
		if m.ExampleHigh != nil && *m.ExampleHigh != "" {
			fmt.Printf("  high:     %s\n", *m.ExampleHigh)
		}
		return nil
	},
}

var (
	editMin         string
	editMax         string
	editScaleMin    int
	editScaleMax    int
	editDescription string
)

var metricEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a metric's bounds or description",
	Long: `Adjust a metric's domain bounds or description. The kind cannot
change; historical entries keep their meaning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := resolveMetric(args[0])
		if err != nil {
			return err
		}

		domain := m.Domain
		if m.Kind == models.KindQuantitative {
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
				domain, err = parseBounds(editMin, editMax)
				if err != nil {
					return err
				}
			}
		} else {
			if cmd.Flags().Changed("scale-min") {
				domain.ScaleMin = editScaleMin
			}
			if cmd.Flags().Changed("scale-max") {
				domain.ScaleMax = editScaleMax
			}
		}

		updated, err := cat.UpdateDomain(userID, m.ID, domain, editDescription)
		if err != nil {
			return fmt.Errorf("failed to update metric: %w", err)
		}

		color.Green("✓ Updated %s", updated.Name)
		fmt.Printf("  %s\n", describeDomain(updated))
		return nil
	},
}

var deleteYes bool

var metricDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a metric and all of its entries",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := resolveMetric(args[0])
		if err != nil {
			return err
		}

		n, err := store.CountEntries(userID, m.ID)
		if err != nil {
			return err
		}
		if n > 0 && !deleteYes {
			return fmt.Errorf("%q has %d entries; re-run with --yes to delete them too", m.Name, n)
		}

		if err := cat.Delete(userID, m.ID); err != nil {
			return fmt.Errorf("failed to delete metric: %w", err)
		}

		color.Green("✓ Deleted %s (%d entries removed)", m.Name, n)
		return nil
	},
}

// parseBounds turns optional --min/--max strings into a numeric domain.
func parseBounds(minStr, maxStr string) (models.Domain, error) {
	var min, max *float64
	if minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return models.Domain{}, fmt.Errorf("invalid minimum: %s", minStr)
		}
		min = &v
	}
	if maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return models.Domain{}, fmt.Errorf("invalid maximum: %s", maxStr)
		}
		max = &v
	}
	return models.QuantitativeDomain(min, max), nil
}

// describeDomain renders a metric's value domain for display.
func describeDomain(m *models.Metric) string {
	if m.Kind == models.KindQualitative {
		return fmt.Sprintf("scale %d-%d", m.Domain.ScaleMin, m.Domain.ScaleMax)
	}
	switch {
	case m.Domain.Min != nil && m.Domain.Max != nil:
		return fmt.Sprintf("range %g to %g", *m.Domain.Min, *m.Domain.Max)
	case m.Domain.Min != nil:
		return fmt.Sprintf("range %g and up", *m.Domain.Min)
	case m.Domain.Max != nil:
		return fmt.Sprintf("range up to %g", *m.Domain.Max)
	default:
		return "unbounded"
	}
}

func init() {
	metricDefineCmd.Flags().StringVar(&defineKind, "kind", "quantitative", "metric kind: quantitative or qualitative")
	metricDefineCmd.Flags().StringVar(&defineMin, "min", "", "minimum value (quantitative, empty = unbounded)")
	metricDefineCmd.Flags().StringVar(&defineMax, "max", "", "maximum value (quantitative, empty = unbounded)")
	metricDefineCmd.Flags().IntVar(&defineScaleMin, "scale-min", 1, "lowest rating (qualitative)")
	metricDefineCmd.Flags().IntVar(&defineScaleMax, "scale-max", 5, "highest rating (qualitative)")
	metricDefineCmd.Flags().StringVar(&defineCategory, "category", "", "category grouping")
	metricDefineCmd.Flags().StringVar(&defineDescription, "description", "", "what this metric measures")
	metricDefineCmd.Flags().StringVar(&defineExample, "example", "", "sample value hint (quantitative)")
	metricDefineCmd.Flags().StringVar(&defineExampleLow, "example-low", "", "anchor text for the lowest rating")
	metricDefineCmd.Flags().StringVar(&defineExampleHigh, "example-high", "", "anchor text for the highest rating")

	metricEditCmd.Flags().StringVar(&editMin, "min", "", "new minimum (quantitative)")
	metricEditCmd.Flags().StringVar(&editMax, "max", "", "new maximum (quantitative)")
	metricEditCmd.Flags().IntVar(&editScaleMin, "scale-min", 0, "new lowest rating (qualitative)")
	metricEditCmd.Flags().IntVar(&editScaleMax, "scale-max", 0, "new highest rating (qualitative)")
	metricEditCmd.Flags().StringVar(&editDescription, "description", "", "new description")

	metricDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "delete even if entries exist")

	metricCmd.AddCommand(metricDefineCmd, metricListCmd, metricShowCmd, metricEditCmd, metricDeleteCmd)
	rootCmd.AddCommand(metricCmd)
}
