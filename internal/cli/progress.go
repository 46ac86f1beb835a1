package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/splitcs/internal/extraction"
	"github.com/mvp-joe/splitcs/internal/splitter"
)

// CLIProgressReporter implements splitter.ProgressReporter with one progress
// bar per type.
type CLIProgressReporter struct {
	out      io.Writer
	quiet    bool
	typeBar  *progressbar.ProgressBar
	warnings int
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(out io.Writer, quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		out:   out,
		quiet: quiet,
	}
}

func (c *CLIProgressReporter) OnParseStart(path string) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, "Parsing %s...\n", path)
}

func (c *CLIProgressReporter) OnParseComplete(types, members int) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, "Found %s %s with %s %s\n",
		humanize.Comma(int64(types)), plural(types, "type", "types"),
		humanize.Comma(int64(members)), plural(members, "member", "members"))
}

func (c *CLIProgressReporter) OnWarning(w extraction.Warning) {
	c.warnings++
	if c.quiet {
		return
	}
	color.New(color.FgYellow).Fprintf(c.out, "warning: %s\n", w)
}

func (c *CLIProgressReporter) OnTypeStart(typeName string, groups int) {
	if c.quiet {
		return
	}
	c.typeBar = progressbar.NewOptions(groups,
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription("Splitting "+typeName),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(c.out)
		}),
	)
}

func (c *CLIProgressReporter) OnFileWritten(path string, status splitter.ChangeStatus) {
	if c.quiet {
		return
	}
	if c.typeBar != nil {
		c.typeBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnTypeComplete(typeName string) {
	if c.quiet {
		return
	}
	if c.typeBar != nil {
		c.typeBar.Finish()
		c.typeBar = nil
	}
}

func (c *CLIProgressReporter) OnComplete(summary *splitter.Summary) {}

// Warnings returns how many warnings were reported so far.
func (c *CLIProgressReporter) Warnings() int {
	return c.warnings
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
