// ABOUTME: MCP server setup for the life tracker.
// ABOUTME: Wires the catalog, series builder, and analysis engines to MCP tools.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scandolo/life-tracker/internal/analysis"
	"github.com/scandolo/life-tracker/internal/catalog"
	"github.com/scandolo/life-tracker/internal/storage"
)

// Server wraps the MCP server with the tracker's core components.
type Server struct {
	mcpServer *mcp.Server
	store     *storage.Store
	catalog   *catalog.Catalog
	builder   *analysis.Builder
	analyzer  analysis.TrendAnalyzer
	engine    analysis.Engine
	user      string
}

// Options carries the analysis tunables the server runs with.
type Options struct {
	TrendWindow   int
	FlatTolerance float64
	StrengthBands []analysis.StrengthBand
}

// NewServer creates a new MCP server over the given store.
func NewServer(store *storage.Store, user string, opts Options) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lifetrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		catalog:   catalog.New(store),
		builder:   analysis.NewBuilder(store, store),
		analyzer:  analysis.TrendAnalyzer{Window: opts.TrendWindow, FlatTolerance: opts.FlatTolerance},
		engine:    analysis.Engine{Bands: opts.StrengthBands},
		user:      user,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
