package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/minatoaquaMK2/LightRAG/internal/config"
	"github.com/minatoaquaMK2/LightRAG/internal/mcpadapter"
	"github.com/minatoaquaMK2/LightRAG/internal/setup"
	"github.com/minatoaquaMK2/LightRAG/internal/setup/logger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// Load env
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Logger not built yet; write plainly and bail.
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	// stdout carries the MCP protocol; keep logs on stderr.
	lgr := logger.New(cfg.LogLevel).Output(os.Stderr)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			lgr.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		lgr.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lightrag-multimodal",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "multimodal_query",
		Description: "Query the multimodal knowledge base (text, images, tables, formulas)",
	}, mcpadapter.NewQueryHandler(deps.Service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "process_document",
		Description: "Process a multimodal document on the server filesystem and integrate it into the knowledge base",
	}, mcpadapter.NewProcessDocumentHandler(deps.Service))

	return server
}
