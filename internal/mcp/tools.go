// ABOUTME: MCP tool implementations for the life tracker.
// ABOUTME: Covers metric definition, entry recording, trend, and correlation.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scandolo/life-tracker/internal/analysis"
	"github.com/scandolo/life-tracker/internal/catalog"
	"github.com/scandolo/life-tracker/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "define_metric",
		Description: "Define a new metric to track (quantitative with numeric bounds, or qualitative with a rating scale)",
	}, s.handleDefineMetric)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_entry",
		Description: "Record a value for a metric on a date (defaults to today); re-recording a date overwrites",
	}, s.handleRecordEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_metrics",
		Description: "List the user's metric definitions",
	}, s.handleListMetrics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_series",
		Description: "Get a metric's day-by-day series over the last N days, with absent days marked",
	}, s.handleGetSeries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "trend",
		Description: "Summarize a metric's trend: direction, moving average, observed min/max",
	}, s.handleTrend)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "correlate",
		Description: "Compute the correlation between two metrics over the last N days",
	}, s.handleCorrelate)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_metric",
		Description: "Delete a metric and all of its entries",
	}, s.handleDeleteMetric)
}

// Tool input/output types

type defineMetricInput struct {
	Name        string  `json:"name" jsonschema:"Metric name (unique per user)"`
	Kind        string  `json:"kind" jsonschema:"quantitative or qualitative"`
	Min         *float64 `json:"min,omitempty" jsonschema:"Quantitative lower bound (omit for unbounded)"`
	Max         *float64 `json:"max,omitempty" jsonschema:"Quantitative upper bound (omit for unbounded)"`
	ScaleMin    int     `json:"scale_min,omitempty" jsonschema:"Qualitative lowest rating (default 1)"`
	ScaleMax    int     `json:"scale_max,omitempty" jsonschema:"Qualitative highest rating (default 5)"`
	Category    string  `json:"category,omitempty" jsonschema:"Category grouping (Health, Wealth, ...)"`
	Description string  `json:"description,omitempty" jsonschema:"What this metric measures"`
}

type metricOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type recordEntryInput struct {
	Metric string  `json:"metric" jsonschema:"Metric name"`
	Value  float64 `json:"value" jsonschema:"The value; must satisfy the metric's domain"`
	Date   string  `json:"date,omitempty" jsonschema:"Entry date (YYYY-MM-DD); defaults to today"`
	Note   string  `json:"note,omitempty" jsonschema:"Optional free-text note"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type seriesInput struct {
	Metric string `json:"metric" jsonschema:"Metric name"`
	Days   int    `json:"days,omitempty" jsonschema:"Range length in days ending today (default 30)"`
}

type trendInput struct {
	Metric string `json:"metric" jsonschema:"Metric name"`
	Days   int    `json:"days,omitempty" jsonschema:"Range length in days ending today (default 30)"`
	Window int    `json:"window,omitempty" jsonschema:"Moving-average window in days"`
}

type correlateInput struct {
	MetricA string `json:"metric_a" jsonschema:"First metric name"`
	MetricB string `json:"metric_b" jsonschema:"Second metric name"`
	Days    int    `json:"days,omitempty" jsonschema:"Range length in days ending today (default 30)"`
}

type correlateOutput struct {
	Coefficient *float64 `json:"coefficient"`
	Method      string   `json:"method"`
	SampleSize  int      `json:"sample_size"`
	Strength    string   `json:"strength"`
	Reason      string   `json:"reason"`
	Message     string   `json:"message"`
}

type deleteMetricInput struct {
	Metric string `json:"metric" jsonschema:"Metric name"`
}

// Tool handlers

func (s *Server) handleDefineMetric(ctx context.Context, req *mcp.CallToolRequest, input defineMetricInput) (*mcp.CallToolResult, metricOutput, error) {
	if !models.IsValidMetricKind(input.Kind) {
		return nil, metricOutput{}, fmt.Errorf("unknown metric kind: %s (want quantitative or qualitative)", input.Kind)
	}

	def := catalog.Definition{
		Name:        input.Name,
		Kind:        models.MetricKind(input.Kind),
		Category:    input.Category,
		Description: input.Description,
	}
	if def.Kind == models.KindQuantitative {
		def.Domain = models.QuantitativeDomain(input.Min, input.Max)
	} else {
		scaleMin, scaleMax := input.ScaleMin, input.ScaleMax
		if scaleMin == 0 && scaleMax == 0 {
			scaleMin, scaleMax = 1, 5
		}
		def.Domain = models.RatingScale(scaleMin, scaleMax)
	}

	m, err := s.catalog.Define(s.user, def)
	if err != nil {
		return nil, metricOutput{}, err
	}

	return nil, metricOutput{
		ID:      m.ID.String()[:8],
		Name:    m.Name,
		Kind:    string(m.Kind),
		Message: fmt.Sprintf("Defined %s metric %q", m.Kind, m.Name),
	}, nil
}

func (s *Server) handleRecordEntry(ctx context.Context, req *mcp.CallToolRequest, input recordEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	m, err := s.catalog.GetByName(s.user, input.Metric)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	value, err := catalog.ValidateValue(m, input.Value)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	date := time.Now()
	if input.Date != "" {
		date, err = time.Parse(time.DateOnly, input.Date)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", input.Date)
		}
	}

	e := models.NewEntry(s.user, m.ID, date, value)
	if input.Note != "" {
		e.WithNote(input.Note)
	}
	if err := s.store.PutEntry(e); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %s = %g on %s", m.Name, value, e.Date.Format(time.DateOnly)),
	}, nil
}

func (s *Server) handleListMetrics(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	metrics, err := s.catalog.List(s.user)
	if err != nil {
		return nil, nil, err
	}
	if len(metrics) == 0 {
		return nil, map[string]any{"message": "No metrics defined yet."}, nil
	}
	return nil, metricSummaries(metrics), nil
}

func (s *Server) handleGetSeries(ctx context.Context, req *mcp.CallToolRequest, input seriesInput) (*mcp.CallToolResult, any, error) {
	series, _, err := s.buildSeries(input.Metric, input.Days)
	if err != nil {
		return nil, nil, err
	}

	points := make([]map[string]any, len(series.Points))
	for i, p := range series.Points {
		pt := map[string]any{
			"date":    p.Date.Format(time.DateOnly),
			"present": p.Present,
		}
		if p.Present {
			pt["value"] = p.Value
		}
		points[i] = pt
	}

	return nil, map[string]any{
		"metric": series.Name,
		"kind":   string(series.Kind),
		"points": points,
	}, nil
}

func (s *Server) handleTrend(ctx context.Context, req *mcp.CallToolRequest, input trendInput) (*mcp.CallToolResult, any, error) {
	series, _, err := s.buildSeries(input.Metric, input.Days)
	if err != nil {
		return nil, nil, err
	}

	analyzer := s.analyzer
	if input.Window > 0 {
		analyzer.Window = input.Window
	}
	summary := analyzer.Summarize(series)

	avg := make([]map[string]any, len(summary.MovingAverage))
	for i, p := range summary.MovingAverage {
		avg[i] = map[string]any{
			"date":  p.Date.Format(time.DateOnly),
			"value": p.Value,
		}
	}

	out := map[string]any{
		"metric":         series.Name,
		"direction":      string(summary.Direction),
		"sample_size":    summary.SampleSize,
		"moving_average": avg,
	}
	if summary.SampleSize > 0 {
		out["observed_min"] = summary.ObservedMin
		out["observed_max"] = summary.ObservedMax
	}
	return nil, out, nil
}

func (s *Server) handleCorrelate(ctx context.Context, req *mcp.CallToolRequest, input correlateInput) (*mcp.CallToolResult, correlateOutput, error) {
	ma, err := s.catalog.GetByName(s.user, input.MetricA)
	if err != nil {
		return nil, correlateOutput{}, err
	}
	mb, err := s.catalog.GetByName(s.user, input.MetricB)
	if err != nil {
		return nil, correlateOutput{}, err
	}

	days := input.Days
	if days <= 0 {
		days = 30
	}
	pair, err := s.builder.BuildAlignedPair(s.user, ma.ID, mb.ID, models.LastNDays(time.Now(), days))
	if err != nil {
		return nil, correlateOutput{}, err
	}

	result, err := s.engine.Correlate(pair)
	if err != nil && !errors.Is(err, models.ErrInsufficientData) {
		return nil, correlateOutput{}, err
	}

	out := correlateOutput{
		Coefficient: result.Coefficient,
		Method:      string(result.Method),
		SampleSize:  result.SampleSize,
		Strength:    string(result.Strength),
		Reason:      string(result.Reason),
	}
	switch result.Reason {
	case analysis.ReasonInsufficientData:
		out.Message = fmt.Sprintf("Only %d days have both metrics recorded; need at least %d.",
			result.SampleSize, analysis.MinSampleSize)
	case analysis.ReasonZeroVariance:
		out.Message = "One of the metrics never varies over the shared days, so no correlation is defined."
	default:
		out.Message = fmt.Sprintf("%s correlation %.3f (%s) over %d shared days",
			result.Method, *result.Coefficient, result.Strength, result.SampleSize)
	}
	return nil, out, nil
}

func (s *Server) handleDeleteMetric(ctx context.Context, req *mcp.CallToolRequest, input deleteMetricInput) (*mcp.CallToolResult, simpleOutput, error) {
	m, err := s.catalog.GetByName(s.user, input.Metric)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.catalog.Delete(s.user, m.ID); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted metric %q and its entries", m.Name),
	}, nil
}

// buildSeries resolves a metric by name and builds its series over the
// last N days (default 30).
func (s *Server) buildSeries(name string, days int) (analysis.Series, *models.Metric, error) {
	m, err := s.catalog.GetByName(s.user, name)
	if err != nil {
		return analysis.Series{}, nil, err
	}
	if days <= 0 {
		days = 30
	}
	series, err := s.builder.BuildSeries(s.user, m.ID, models.LastNDays(time.Now(), days))
	if err != nil {
		return analysis.Series{}, nil, err
	}
	return series, m, nil
}

func metricSummaries(metrics []*models.Metric) []map[string]any {
	out := make([]map[string]any, len(metrics))
	for i, m := range metrics {
		entry := map[string]any{
			"id":          m.ID.String()[:8],
			"name":        m.Name,
			"kind":        string(m.Kind),
			"category":    m.Category,
			"description": m.Description,
		}
		if m.Kind == models.KindQualitative {
			entry["scale_min"] = m.Domain.ScaleMin
			entry["scale_max"] = m.Domain.ScaleMax
		} else {
			if m.Domain.Min != nil {
				entry["min"] = *m.Domain.Min
			}
			if m.Domain.Max != nil {
				entry["max"] = *m.Domain.Max
			}
		}
		out[i] = entry
	}
	return out
}
