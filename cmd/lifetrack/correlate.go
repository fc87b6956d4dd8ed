// ABOUTME: CLI command correlating two metrics over a shared date axis.
// ABOUTME: Insufficient data is reported as an outcome, not an error exit.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scandolo/life-tracker/internal/analysis"
	"github.com/scandolo/life-tracker/internal/models"
)

var correlateDays int

var correlateCmd = &cobra.Command{
	Use:     "correlate <metric-a> <metric-b>",
	Aliases: []string{"corr"},
	Short:   "Correlate two metrics",
	Long: `Compute the association between two metrics over the days where
both have a recorded value.

Two numeric metrics are compared with Pearson linear correlation. As
soon as a rated (qualitative) metric is involved, Spearman rank
correlation is used instead: ratings are ordinal, so their distances
carry no meaning and must not enter a linear formula.

Examples:
  lifetrack correlate "Hours of Sleep" "Sleep Quality"
  lifetrack correlate "Daily Steps" "Financial Stress Level" --days 90`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ma, err := resolveMetric(args[0])
		if err != nil {
			return err
		}
		mb, err := resolveMetric(args[1])
		if err != nil {
			return err
		}

		rng := models.LastNDays(time.Now(), correlateDays)
		pair, err := builder.BuildAlignedPair(userID, ma.ID, mb.ID, rng)
		if err != nil {
			return fmt.Errorf("failed to build series: %w", err)
		}

		engine := analysis.Engine{Bands: cfg.StrengthBands()}
		result, err := engine.Correlate(pair)
		if err != nil && !errors.Is(err, models.ErrInsufficientData) {
			return err
		}

		fmt.Printf("%s × %s — last %d days\n",
			color.New(color.Bold).Sprint(ma.Name),
			color.New(color.Bold).Sprint(mb.Name),
			correlateDays)
		fmt.Printf("  method:      %s\n", result.Method)
		fmt.Printf("  sample size: %d shared days\n", result.SampleSize)

		switch result.Reason {
		case analysis.ReasonInsufficientData:
			color.Yellow("  Not enough overlapping data yet (need %d shared days).", analysis.MinSampleSize)
		case analysis.ReasonZeroVariance:
			color.Yellow("  One metric never varies over the shared days; correlation is undefined.")
		default:
			fmt.Printf("  coefficient: %+.3f\n", *result.Coefficient)
			fmt.Printf("  strength:    %s\n", result.Strength)
		}
		return nil
	},
}

func init() {
	correlateCmd.Flags().IntVar(&correlateDays, "days", 30, "range length in days ending today")
	rootCmd.AddCommand(correlateCmd)
}
