package mcp

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mvp-joe/splitcs/internal/splitter"
)

const personSource = `using System;

namespace People;

public class Person
{
    public string Name { get; set; }

    public void Greet()
    {
        Console.WriteLine(Name);
    }

    private void Reset()
    {
        Name = "";
    }
}
`

func newTestSplitter(t *testing.T, files map[string]string, options ...splitter.Option) (*splitter.Splitter, *splitter.MemFileSystem) {
	t.Helper()
	fsys := splitter.NewMemFileSystem(files)
	opts := splitter.DefaultOptions()
	opts.OutputDir = "/out"
	s, err := splitter.New(opts, fsys, zap.NewNop(), options...)
	require.NoError(t, err)
	return s, fsys
}

func callRequest(args interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result, "should return result")
	require.NotEmpty(t, result.Content)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "should be text content")
	return textContent.Text
}
