package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mvp-joe/splitcs/internal/extraction"
	"github.com/mvp-joe/splitcs/internal/splitter"
)

const (
	serverName    = "splitcs-mcp"
	serverVersion = "1.0.0"
)

// Splitter is the part of splitter.Splitter the tools use.
type Splitter interface {
	Parse(path string) (*extraction.Result, error)
	Run(ctx context.Context, req splitter.Request) (*splitter.Summary, error)
}

// MCPServer manages the MCP server lifecycle.
type MCPServer struct {
	splitter Splitter
	cache    *ExtractionCache
	mcp      *server.MCPServer
	logger   *zap.Logger
}

// NewMCPServer creates a server exposing the inspect and split tools.
// The cache may be nil; it is closed with the server.
func NewMCPServer(s Splitter, cache *ExtractionCache, logger *zap.Logger) (*MCPServer, error) {
	if s == nil {
		return nil, fmt.Errorf("splitter is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	AddInspectTool(mcpServer, s)
	AddSplitTool(mcpServer, s, logger)

	return &MCPServer{
		splitter: s,
		cache:    cache,
		mcp:      mcpServer,
		logger:   logger,
	}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *MCPServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting MCP server on stdio")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		s.logger.Info("Received shutdown signal, stopping")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the cache.
func (s *MCPServer) Close() error {
	if s.cache != nil {
		s.cache.Close()
	}
	return nil
}
