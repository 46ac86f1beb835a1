package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/splitcs/internal/extraction"
	"github.com/mvp-joe/splitcs/internal/splitter"
)

// Test Plan for ExtractionCache:
// - Get misses on an empty cache and hits after Set
// - Non-positive capacity falls back to the default
// - Repeated tool calls on unchanged input reuse the cached result
// - NewMCPServer requires a splitter and Close releases the cache

func TestExtractionCache_GetSet(t *testing.T) {
	t.Parallel()

	cache, err := NewExtractionCache(0)
	require.NoError(t, err)
	defer cache.Close()

	_, ok := cache.Get("a")
	assert.False(t, ok)

	want := &extraction.Result{File: &extraction.SourceFile{Path: "a"}}
	cache.Set("a", want)

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Same(t, want, got)
}

func TestExtractionCache_SharedAcrossToolCalls(t *testing.T) {
	t.Parallel()

	cache, err := NewExtractionCache(16)
	require.NoError(t, err)
	defer cache.Close()

	s, _ := newTestSplitter(t, map[string]string{"/src/Person.cs": personSource}, splitter.WithCache(cache))
	inspect := createInspectHandler(s)

	args := map[string]interface{}{"input_path": "/src/Person.cs"}
	first, err := inspect(context.Background(), callRequest(args))
	require.NoError(t, err)
	second, err := inspect(context.Background(), callRequest(args))
	require.NoError(t, err)

	assert.Equal(t, resultText(t, first), resultText(t, second))
	assert.Equal(t, int64(1), cache.Hits())
}

func TestNewMCPServer(t *testing.T) {
	t.Parallel()

	_, err := NewMCPServer(nil, nil, nil)
	assert.Error(t, err)

	cache, err := NewExtractionCache(4)
	require.NoError(t, err)
	s, _ := newTestSplitter(t, nil)

	srv, err := NewMCPServer(s, cache, nil)
	require.NoError(t, err)
	assert.NoError(t, srv.Close())
}
