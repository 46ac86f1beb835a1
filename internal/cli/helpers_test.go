package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/splitcs/internal/config"
)

const orderSource = `using System;
using System.Collections.Generic;

namespace Shop;

public class Order
{
    public Order()
    {
        Lines = new List<string>();
    }

    public List<string> Lines { get; set; }

    public void Add(string line)
    {
        Lines.Add(line);
    }

    private void Audit()
    {
        Console.WriteLine("{");
    }
}
`

// writeInput writes orderSource into a temp dir and returns its path and a
// config whose output directory is another temp dir.
func writeInput(t *testing.T) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "Order.cs")
	require.NoError(t, os.WriteFile(input, []byte(orderSource), 0644))

	cfg := config.Default()
	cfg.Output.Directory = filepath.Join(t.TempDir(), "out")
	return input, cfg
}
