package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/splitcs/internal/config"
	"github.com/mvp-joe/splitcs/internal/mcp"
	"github.com/mvp-joe/splitcs/internal/splitter"
)

var mcpCacheSize int

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for splitting C# files",
	Long: `Start a Model Context Protocol (MCP) server on stdio so coding assistants can
inspect and split C# files.

Tools:
- splitcs_inspect: list types and members of a file (read-only)
- splitcs_split:   write partial-type files for a file

Extraction results are cached by file content between calls.

Example:
  splitcs mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().IntVar(&mcpCacheSize, "cache-size", mcp.DefaultCacheCapacity, "Number of parsed files to keep in memory")
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	opts, err := cfg.ToSplitterOptions()
	if err != nil {
		return err
	}

	cache, err := mcp.NewExtractionCache(mcpCacheSize)
	if err != nil {
		return err
	}

	s, err := splitter.New(opts, splitter.OSFileSystem{}, logger, splitter.WithCache(cache))
	if err != nil {
		cache.Close()
		return fmt.Errorf("failed to create splitter: %w", err)
	}

	server, err := mcp.NewMCPServer(s, cache, logger)
	if err != nil {
		cache.Close()
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer server.Close()

	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
