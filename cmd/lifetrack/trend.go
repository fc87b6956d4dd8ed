// ABOUTME: CLI command summarizing a metric's trend.
// ABOUTME: Direction, observed min/max, and trailing moving average.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scandolo/life-tracker/internal/analysis"
	"github.com/scandolo/life-tracker/internal/models"
)

var (
	trendDays   int
	trendWindow int
)

var trendCmd = &cobra.Command{
	Use:   "trend <metric>",
	Short: "Summarize a metric's trend",
	Long: `Summarize a metric over a date range: overall direction (comparing
the earliest third of recorded values against the latest third), the
observed minimum and maximum, and a trailing moving average.

Days without an entry are excluded from every calculation, not
counted as zero. With fewer than two recorded values the direction is
reported as insufficient data.

Examples:
  lifetrack trend "Hours of Sleep"
  lifetrack trend "Daily Steps" --days 90 --window 14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := resolveMetric(args[0])
		if err != nil {
			return err
		}

		rng := models.LastNDays(time.Now(), trendDays)
		series, err := builder.BuildSeries(userID, m.ID, rng)
		if err != nil {
			return fmt.Errorf("failed to build series: %w", err)
		}

		window := trendWindow
		if window <= 0 {
			window = cfg.GetTrendWindow()
		}
		analyzer := analysis.TrendAnalyzer{Window: window, FlatTolerance: cfg.FlatTolerance}
		summary := analyzer.Summarize(series)

		fmt.Printf("%s — last %d days\n", color.New(color.Bold).Sprint(m.Name), trendDays)
		fmt.Printf("  direction: %s\n", colorDirection(summary.Direction))
		fmt.Printf("  recorded:  %d of %d days\n", summary.SampleSize, len(series.Points))
		if summary.SampleSize > 0 {
			fmt.Printf("  min/max:   %g / %g\n", summary.ObservedMin, summary.ObservedMax)
		}

		if summary.Direction == analysis.DirectionInsufficientData {
			fmt.Println("  Not enough data yet; record a few more days.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("  %d-day moving average:\n", window)
		for _, p := range summary.MovingAverage {
			fmt.Printf("    %s %.2f\n", faint.Sprint(p.Date.Format(time.DateOnly)), p.Value)
		}
		return nil
	},
}

func colorDirection(d analysis.Direction) string {
	switch d {
	case analysis.DirectionRising:
		return color.GreenString(string(d))
	case analysis.DirectionFalling:
		return color.RedString(string(d))
	case analysis.DirectionFlat:
		return string(d)
	default:
		return color.YellowString("insufficient data")
	}
}

func init() {
	trendCmd.Flags().IntVar(&trendDays, "days", 30, "range length in days ending today")
	trendCmd.Flags().IntVar(&trendWindow, "window", 0, "moving-average window in days (default from config)")
	rootCmd.AddCommand(trendCmd)
}
