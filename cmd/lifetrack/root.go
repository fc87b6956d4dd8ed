// ABOUTME: Root Cobra command for lifetrack CLI.
// ABOUTME: Handles config/store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/scandolo/life-tracker/internal/analysis"
	"github.com/scandolo/life-tracker/internal/catalog"
	"github.com/scandolo/life-tracker/internal/config"
	"github.com/scandolo/life-tracker/internal/models"
	"github.com/scandolo/life-tracker/internal/storage"
)

var (
	cfg     *config.Config
	store   *storage.Store
	cat     *catalog.Catalog
	builder *analysis.Builder
	userID  string
)

var rootCmd = &cobra.Command{
	Use:   "lifetrack",
	Short: "Personal metrics tracker with trend and correlation analysis",
	Long: `Lifetrack records numeric and rated personal metrics per day
and analyzes them: trends over time and correlations between metrics.

METRIC KINDS:

  quantitative   numeric measurements with optional min/max bounds
                 (hours of sleep, daily steps, spending)
  qualitative    ordinal ratings on a fixed scale, e.g. 1-10
                 (sleep quality, stress level, social connection)

QUICK START:

  $ lifetrack init                              # Seed the default metric set
  $ lifetrack add "Hours of Sleep" 7.5          # Record today's value
  $ lifetrack add "Sleep Quality" 8 --date 2026-08-20
  $ lifetrack today                             # What's still unrecorded today
  $ lifetrack series "Hours of Sleep" --days 14 # Day-by-day values
  $ lifetrack trend "Hours of Sleep" --days 30  # Direction + moving average
  $ lifetrack correlate "Hours of Sleep" "Sleep Quality"

CUSTOM METRICS:

  $ lifetrack metric define "Coffee Cups" --kind quantitative --min 0 --max 20
  $ lifetrack metric define "Focus" --kind qualitative --scale-min 1 --scale-max 5
  $ lifetrack metric list

Re-recording a metric for the same date overwrites the old value.
Days without an entry stay absent; they are never counted as zero.

MCP INTEGRATION:

  Run 'lifetrack mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lifetrack": { "command": "lifetrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Entries live in SQLite at ~/.local/share/lifetrack/lifetrack.db.
  Settings live at ~/.config/lifetrack/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		cat = catalog.New(store)
		builder = analysis.NewBuilder(store, store)
		userID = cfg.GetUser()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// resolveMetric finds a metric by name, suggesting the catalog on a miss.
func resolveMetric(name string) (*models.Metric, error) {
	m, err := cat.GetByName(userID, name)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'lifetrack metric list' to see defined metrics)", err)
	}
	return m, nil
}

// parseDate parses a YYYY-MM-DD calendar date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
