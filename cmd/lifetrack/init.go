// ABOUTME: CLI command seeding the default metric set.
// ABOUTME: Idempotent; already-defined metrics are left alone.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the default metric set",
	Long: `Create the starter metrics across Health, Wealth, and Relationships:

  Health         Sleep Quality (1-10), Hours of Sleep (0-24), Daily Steps
  Wealth         Discretionary Spending ($), Financial Stress Level (1-10)
  Relationships  Quality Time (minutes), Social Connection (1-10)

Running init again is safe: metrics you already have are untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := cat.SeedDefaults(userID)
		if err != nil {
			return fmt.Errorf("failed to seed default metrics: %w", err)
		}

		if created == 0 {
			fmt.Println("All default metrics already defined.")
			return nil
		}
		color.Green("✓ Created %d default metrics", created)
		fmt.Println("  Run 'lifetrack metric list' to see them.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
