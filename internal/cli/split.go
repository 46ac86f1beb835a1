package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mvp-joe/splitcs/internal/config"
	"github.com/mvp-joe/splitcs/internal/splitter"
	"github.com/mvp-joe/splitcs/internal/watcher"
)

// splitFlags holds the split command's flag values.
type splitFlags struct {
	out    string
	splits int
	typ    string
	dryRun bool
	watch  bool
	quiet  bool
}

var splitOpts splitFlags

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split <input>",
	Short: "Split the types of a C# file into partial-type files",
	Long: `Split reads a C# source file and writes every class it declares as a set of
partial-class files named {TypeName}_Part{N}.cs.

Without --splits, members are grouped by visibility: public members go to the
first file and all other members to the second. With --splits N, members are
dealt round-robin over N files.

Files whose content would not change are left untouched.

Examples:
  # Split by visibility into ./Output
  splitcs split Services/OrderService.cs

  # Three files per class, written next to the source
  splitcs split Services/OrderService.cs --splits 3 --out Services

  # Only one class, and only report what would change
  splitcs split Models.cs --type Invoice --dry-run

  # Re-split whenever the file is saved
  splitcs split Services/OrderService.cs --watch
`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVarP(&splitOpts.out, "out", "o", "", "Output directory (default from config, ./Output)")
	splitCmd.Flags().IntVarP(&splitOpts.splits, "splits", "n", 0, "Number of files per type (round-robin); 0 splits by visibility")
	splitCmd.Flags().StringVarP(&splitOpts.typ, "type", "t", "", "Only split the type with this name")
	splitCmd.Flags().BoolVar(&splitOpts.dryRun, "dry-run", false, "Report what would change without writing files")
	splitCmd.Flags().BoolVarP(&splitOpts.watch, "watch", "w", false, "Watch the input file and split again on every change")
	splitCmd.Flags().BoolVarP(&splitOpts.quiet, "quiet", "q", false, "Disable progress bars and non-error output")
}

func runSplit(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd.ErrOrStderr())
	defer cancel()

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return executeSplit(ctx, cfg, splitOpts, args[0], cmd.OutOrStdout())
}

// executeSplit runs one split, or keeps splitting on change in watch mode.
func executeSplit(ctx context.Context, cfg *config.Config, flags splitFlags, input string, out io.Writer) error {
	opts, err := cfg.ToSplitterOptions()
	if err != nil {
		return err
	}

	progress := NewCLIProgressReporter(out, flags.quiet)
	s, err := splitter.New(opts, splitter.OSFileSystem{}, logger, splitter.WithProgress(progress))
	if err != nil {
		return fmt.Errorf("failed to create splitter: %w", err)
	}

	req := splitter.Request{
		InputPath:  input,
		OutputDir:  flags.out,
		SplitCount: flags.splits,
		TypeName:   flags.typ,
		DryRun:     flags.dryRun,
	}

	if err := splitOnce(ctx, s, req, flags.quiet, out); err != nil {
		if !flags.watch {
			return err
		}
		// The input may be mid-edit; keep watching.
		color.New(color.FgRed).Fprintf(out, "error: %v\n", err)
	}

	if !flags.watch {
		return nil
	}
	return watchAndSplit(ctx, s, req, flags.quiet, out)
}

func splitOnce(ctx context.Context, s *splitter.Splitter, req splitter.Request, quiet bool, out io.Writer) error {
	summary, err := s.Run(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("split cancelled")
		}
		return err
	}
	if !quiet {
		RenderSummary(out, summary)
	}
	return nil
}

func watchAndSplit(ctx context.Context, s *splitter.Splitter, req splitter.Request, quiet bool, out io.Writer) error {
	fw, err := watcher.NewFileWatcher([]string{req.InputPath}, watcher.DefaultDebounce, logger)
	if err != nil {
		return fmt.Errorf("failed to watch input: %w", err)
	}

	runner := watcher.RunnerFunc(func(ctx context.Context, changed []string) error {
		if !quiet {
			fmt.Fprintln(out)
		}
		return splitOnce(ctx, s, req, quiet, out)
	})

	if !quiet {
		fmt.Fprintf(out, "Watching %s for changes (Ctrl+C to stop)...\n", req.InputPath)
	}
	logger.Info("Watch mode started", zap.String("input", req.InputPath))

	err = watcher.NewCoordinator(fw, runner, logger).Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch mode failed: %w", err)
	}

	if !quiet {
		fmt.Fprintln(out, "Watch mode stopped")
	}
	return nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(errOut io.Writer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(errOut, "\nInterrupted! Stopping...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
