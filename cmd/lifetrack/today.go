// ABOUTME: CLI command showing today's recording status per metric.
// ABOUTME: Flags which metrics still have no entry for the day.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scandolo/life-tracker/internal/models"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show which metrics are recorded today",
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := cat.List(userID)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}
		if len(metrics) == 0 {
			fmt.Println("No metrics defined. Run 'lifetrack init' for the default set.")
			return nil
		}

		today := models.LastNDays(time.Now(), 1)
		faint := color.New(color.Faint)
		missing := 0

		fmt.Printf("%s\n", color.New(color.Bold).Sprint(today.End.Format(time.DateOnly)))
		for _, m := range metrics {
			entries, err := store.GetEntries(userID, m.ID, today)
			if err != nil {
				return fmt.Errorf("failed to read entries: %w", err)
			}
			if len(entries) == 0 {
				fmt.Printf("  %s %s\n", padRight(m.Name, 24), faint.Sprint("—"))
				missing++
				continue
			}
			fmt.Printf("  %s %s\n", padRight(m.Name, 24), color.GreenString("%g", entries[0].Value))
		}

		if missing > 0 {
			fmt.Printf("\n%d metrics unrecorded. Use 'lifetrack add <metric> <value>'.\n", missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
