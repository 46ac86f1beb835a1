package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mvp-joe/splitcs/internal/config"
	"github.com/mvp-joe/splitcs/internal/splitter"
)

var inspectFormat string

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "List the types and members found in a C# file",
	Long: `Inspect parses a C# source file with the same rules as split and prints the
namespace, using directives, types and members it finds, with line ranges.
Nothing is written.

Examples:
  splitcs inspect Services/OrderService.cs
  splitcs inspect Services/OrderService.cs --format json
`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "table", "Output format: table, json or yaml")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return executeInspect(cfg, args[0], inspectFormat, cmd.OutOrStdout())
}

func executeInspect(cfg *config.Config, input, format string, out io.Writer) error {
	switch format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}

	opts, err := cfg.ToSplitterOptions()
	if err != nil {
		return err
	}
	s, err := splitter.New(opts, splitter.OSFileSystem{}, logger)
	if err != nil {
		return fmt.Errorf("failed to create splitter: %w", err)
	}

	result, err := s.Parse(input)
	if err != nil {
		return err
	}
	inspection := splitter.Inspect(result)

	switch format {
	case "json":
		data, err := json.MarshalIndent(inspection, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(inspection); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		RenderInspection(out, inspection)
	}
	return nil
}
