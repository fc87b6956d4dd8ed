// ABOUTME: MCP resource implementations for the life tracker.
// ABOUTME: Provides lifetrack://metrics and lifetrack://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scandolo/life-tracker/internal/models"
)

func (s *Server) registerResources() {
	// lifetrack://metrics - the user's metric catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifetrack://metrics",
		Name:        "Metric Catalog",
		Description: "All metric definitions: kind, domain, category",
		MIMEType:    "application/json",
	}, s.handleMetricsResource)

	// lifetrack://today - which metrics have an entry today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifetrack://today",
		Name:        "Today's Entries",
		Description: "Per-metric status for today: recorded value or missing",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleMetricsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	metrics, err := s.catalog.List(s.user)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	data, err := json.MarshalIndent(metricSummaries(metrics), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lifetrack://metrics",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	metrics, err := s.catalog.List(s.user)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	today := models.LastNDays(time.Now(), 1)
	statuses := make([]map[string]any, 0, len(metrics))
	recorded := 0
	for _, m := range metrics {
		entries, err := s.store.GetEntries(s.user, m.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to read today's entries: %w", err)
		}
		status := map[string]any{
			"metric":   m.Name,
			"recorded": len(entries) > 0,
		}
		if len(entries) > 0 {
			status["value"] = entries[0].Value
			recorded++
		}
		statuses = append(statuses, status)
	}

	result := map[string]any{
		"date":     today.End.Format(time.DateOnly),
		"metrics":  statuses,
		"recorded": recorded,
		"missing":  len(metrics) - recorded,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lifetrack://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
