// ABOUTME: CLI command for recording a metric entry.
// ABOUTME: Validates against the metric's domain; same-day re-adds overwrite.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scandolo/life-tracker/internal/catalog"
	"github.com/scandolo/life-tracker/internal/models"
)

var (
	addDate string
	addNote string
)

var addCmd = &cobra.Command{
	Use:     "add <metric> <value>",
	Aliases: []string{"a"},
	Short:   "Record a metric value for a day",
	Long: `Record a value for a metric. The value must satisfy the metric's
domain: within bounds for quantitative metrics, a whole rating on the
scale for qualitative ones.

One value per metric per day. Adding again for the same date replaces
the stored value instead of creating a duplicate.

Examples:
  lifetrack add "Hours of Sleep" 7.5
  lifetrack add "Sleep Quality" 8 --note "slept in"
  lifetrack add "Daily Steps" 9200 --date 2026-08-20`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := resolveMetric(args[0])
		if err != nil {
			return err
		}

		raw, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		value, err := catalog.ValidateValue(m, raw)
		if err != nil {
			return err
		}

		date := time.Now()
		if addDate != "" {
			date, err = parseDate(addDate)
			if err != nil {
				return err
			}
		}

		e := models.NewEntry(userID, m.ID, date, value)
		if addNote != "" {
			e.WithNote(addNote)
		}

		if err := store.PutEntry(e); err != nil {
			return fmt.Errorf("failed to record entry: %w", err)
		}

		color.Green("✓ Recorded %s", m.Name)
		fmt.Printf("  %s %g on %s\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			value, e.Date.Format(time.DateOnly))

		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "entry date (YYYY-MM-DD), defaults to today")
	addCmd.Flags().StringVar(&addNote, "note", "", "free-text note for the entry")
	rootCmd.AddCommand(addCmd)
}
