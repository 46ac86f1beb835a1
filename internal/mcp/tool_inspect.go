package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/splitcs/internal/splitter"
)

// AddInspectTool registers the splitcs_inspect tool with an MCP server.
func AddInspectTool(s *server.MCPServer, sp Splitter) {
	tool := mcp.NewTool(
		"splitcs_inspect",
		mcp.WithDescription("Parse a C# source file and list its namespace, using directives, types and members with line ranges. Nothing is written."),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("Path to the C# source file to inspect")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createInspectHandler(sp))
}

func createInspectHandler(sp Splitter) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		path, err := parseStringArg(argsMap, "input_path", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := sp.Parse(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		jsonData, err := json.Marshal(splitter.Inspect(result))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
