package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/splitcs/internal/splitter"
)

// Test Plan for splitcs_inspect:
// - Registration does not panic
// - Valid request returns namespace, directives, types and members as JSON
// - Missing or empty input_path yields an error result
// - Missing input file yields an error result, not a system error
// - Non-map arguments yield an error result

func TestAddInspectTool(t *testing.T) {
	t.Parallel()

	mcpServer := server.NewMCPServer("test", "1.0.0", server.WithToolCapabilities(true))
	s, _ := newTestSplitter(t, nil)

	require.NotPanics(t, func() {
		AddInspectTool(mcpServer, s)
	})
}

func TestInspectHandler_ValidRequest(t *testing.T) {
	t.Parallel()

	s, _ := newTestSplitter(t, map[string]string{"/src/Person.cs": personSource})
	handler := createInspectHandler(s)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"input_path": "/src/Person.cs",
	}))
	require.NoError(t, err, "should not return system error")
	assert.False(t, result.IsError, "should not be error result")

	var response splitter.Inspection
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

	assert.Equal(t, "/src/Person.cs", response.Path)
	assert.Equal(t, "People", response.Namespace)
	assert.Equal(t, []string{"using System;"}, response.Directives)
	require.Len(t, response.Types, 1)

	person := response.Types[0]
	assert.Equal(t, "Person", person.Name)
	assert.Equal(t, "class", person.Keyword)
	require.Len(t, person.Members, 3)
	assert.Equal(t, "Name", person.Members[0].Name)
	assert.Equal(t, "property", person.Members[0].Kind)
	assert.Equal(t, "Greet", person.Members[1].Name)
	assert.True(t, person.Members[1].Exposed)
	assert.Equal(t, "Reset", person.Members[2].Name)
	assert.False(t, person.Members[2].Exposed)
	assert.Empty(t, response.Warnings)
}

func TestInspectHandler_Errors(t *testing.T) {
	t.Parallel()

	s, _ := newTestSplitter(t, nil)
	handler := createInspectHandler(s)

	tests := []struct {
		name string
		args interface{}
		want string
	}{
		{"missing path", map[string]interface{}{}, "input_path parameter is required"},
		{"empty path", map[string]interface{}{"input_path": ""}, "input_path cannot be empty"},
		{"wrong type", map[string]interface{}{"input_path": 3.0}, "input_path must be a string"},
		{"missing file", map[string]interface{}{"input_path": "/src/Nope.cs"}, "input file not found"},
		{"bad arguments", "nope", "invalid arguments format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := handler(context.Background(), callRequest(tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}
