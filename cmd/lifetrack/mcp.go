// ABOUTME: CLI command starting the MCP server over stdio.
// ABOUTME: Exposes recording and analysis tools to AI assistants.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scandolo/life-tracker/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long: `Start an MCP server on stdio exposing lifetrack to AI assistants.

Tools: define_metric, record_entry, list_metrics, get_series, trend,
correlate, delete_metric.
Resources: lifetrack://metrics, lifetrack://today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, userID, mcp.Options{
			TrendWindow:   cfg.GetTrendWindow(),
			FlatTolerance: cfg.FlatTolerance,
			StrengthBands: cfg.StrengthBands(),
		})
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
