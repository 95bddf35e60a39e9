package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/farhanashraf/domain-assistants/internal/mcpadapter"
	"github.com/farhanashraf/domain-assistants/internal/setup"
	setuplogger "github.com/farhanashraf/domain-assistants/internal/setup/logger"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	log.Logger = setuplogger.New(os.Stderr, os.Getenv("LOG_LEVEL"))
	logger := log.Logger

	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	defer deps.Close()

	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "domain-assistants",
			Version: "1.0.0",
		}, nil,
	)

	for _, asst := range deps.Registry.List() {
		mcp.AddTool(server, &mcp.Tool{
			Name:        fmt.Sprintf("ask_%s", asst.Name()),
			Description: fmt.Sprintf("Send one message to the %s assistant. %s", asst.Name(), asst.Welcome()),
		}, mcpadapter.NewChatHandler(deps.Pipeline, asst))
	}

	return server
}
