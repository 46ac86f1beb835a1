package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mvp-joe/splitcs/internal/splitter"
)

// AddSplitTool registers the splitcs_split tool with an MCP server.
func AddSplitTool(s *server.MCPServer, sp Splitter, logger *zap.Logger) {
	tool := mcp.NewTool(
		"splitcs_split",
		mcp.WithDescription("Split the types of a C# source file into partial-type files. Members are grouped by visibility, or round-robin when split_count is given. Returns a summary of the files written."),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("Path to the C# source file to split")),
		mcp.WithString("output_dir",
			mcp.Description("Directory for the generated files (default: configured output directory)")),
		mcp.WithNumber("split_count",
			mcp.Description("Number of round-robin groups per type; omit or 0 to split by visibility")),
		mcp.WithString("type_name",
			mcp.Description("Only split the type with this name (case-insensitive)")),
		mcp.WithBoolean("dry_run",
			mcp.Description("Report what would change without writing files (default: false)")),
		mcp.WithDestructiveHintAnnotation(true),
	)

	s.AddTool(tool, createSplitHandler(sp, logger))
}

func createSplitHandler(sp Splitter, logger *zap.Logger) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		req, err := parseSplitRequest(argsMap)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		summary, err := sp.Run(ctx, req)
		if err != nil {
			logger.Warn("Split tool run failed", zap.String("input", req.InputPath), zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}

		jsonData, err := json.Marshal(summary)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

func parseSplitRequest(argsMap map[string]interface{}) (splitter.Request, error) {
	var req splitter.Request
	var err error

	if req.InputPath, err = parseStringArg(argsMap, "input_path", true); err != nil {
		return req, err
	}
	if req.OutputDir, err = parseStringArg(argsMap, "output_dir", false); err != nil {
		return req, err
	}
	if req.TypeName, err = parseStringArg(argsMap, "type_name", false); err != nil {
		return req, err
	}
	if req.SplitCount, err = parseIntArg(argsMap, "split_count", 0); err != nil {
		return req, err
	}
	req.DryRun = parseBoolArg(argsMap, "dry_run", false)

	return req, req.Validate()
}
