// ABOUTME: CLI command rendering a metric's day-by-day series.
// ABOUTME: Plain-text chart; absent days drawn as gaps, never zeros.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scandolo/life-tracker/internal/models"
)

var seriesDays int

var seriesCmd = &cobra.Command{
	Use:   "series <metric>",
	Short: "Show a metric's values day by day",
	Long: `Print one line per calendar day in the range: the date, the value
(or a gap marker when nothing was recorded), and a bar scaled between
the observed minimum and maximum.

Examples:
  lifetrack series "Hours of Sleep"
  lifetrack series "Sleep Quality" --days 14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := resolveMetric(args[0])
		if err != nil {
			return err
		}

		rng := models.LastNDays(time.Now(), seriesDays)
		series, err := builder.BuildSeries(userID, m.ID, rng)
		if err != nil {
			return fmt.Errorf("failed to build series: %w", err)
		}

		if series.PresentCount() == 0 {
			fmt.Printf("No entries for %s in the last %d days.\n", m.Name, seriesDays)
			return nil
		}

		fmt.Printf("%s — last %d days\n", color.New(color.Bold).Sprint(m.Name), seriesDays)
		printSeries(series)
		return nil
	},
}

func init() {
	seriesCmd.Flags().IntVar(&seriesDays, "days", 14, "range length in days ending today")
	rootCmd.AddCommand(seriesCmd)
}
