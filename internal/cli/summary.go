package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mvp-joe/splitcs/internal/splitter"
)

// RenderSummary prints a table of the files produced by a run, followed by a
// one-line total.
func RenderSummary(w io.Writer, s *splitter.Summary) {
	if s.DryRun {
		color.New(color.FgCyan).Fprintln(w, "Dry run: no files were written")
	}

	if s.FileCount() == 0 {
		fmt.Fprintln(w, "No members found, nothing to split")
		return
	}

	visibility := s.ShowsVisibility()

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	header := table.Row{"Type", "Part", "File", "Members"}
	if visibility {
		header = append(header, "Public", "Private")
	}
	header = append(header, "Status", "Lines")
	tbl.AppendHeader(header)

	for _, t := range s.Types {
		for _, g := range t.Groups {
			row := table.Row{t.Name, g.Part, g.FileName, strings.Join(g.Members, ", ")}
			if visibility {
				row = append(row, g.Exposed, g.Hidden)
			}
			row = append(row, g.Status, fmt.Sprintf("+%d -%d", g.LinesAdded, g.LinesRemoved))
			tbl.AppendRow(row)
		}
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %s files", humanize.Comma(int64(s.FileCount())))})
	tbl.Render()

	verb := "Wrote"
	if s.DryRun {
		verb = "Would write"
	}
	color.New(color.FgGreen).Fprintf(w, "✓ %s %s %s for %s %s (%s members) to %s in %s\n",
		verb,
		humanize.Comma(int64(s.FileCount())), plural(s.FileCount(), "file", "files"),
		humanize.Comma(int64(len(s.Types))), plural(len(s.Types), "type", "types"),
		humanize.Comma(int64(s.MemberCount())),
		s.OutputDir,
		s.Duration.Round(time.Millisecond))

	if len(s.Warnings) > 0 {
		color.New(color.FgYellow).Fprintf(w, "%s %s skipped (see warnings above)\n",
			humanize.Comma(int64(len(s.Warnings))), plural(len(s.Warnings), "declaration", "declarations"))
	}
}

// RenderInspection prints the extracted namespace, directives, types and
// members of a file.
func RenderInspection(w io.Writer, in *splitter.Inspection) {
	fmt.Fprintf(w, "File: %s\n", in.Path)
	if in.Namespace != "" {
		fmt.Fprintf(w, "Namespace: %s\n", in.Namespace)
	}
	fmt.Fprintf(w, "Directives: %d\n", len(in.Directives))
	for _, d := range in.Directives {
		fmt.Fprintf(w, "  %s\n", d)
	}
	fmt.Fprintf(w, "Found %d %s\n", len(in.Types), plural(len(in.Types), "type", "types"))

	if len(in.Types) > 0 {
		tbl := table.NewWriter()
		tbl.SetOutputMirror(w)
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"Type", "Member", "Kind", "Public", "Lines"})

		members := 0
		for _, t := range in.Types {
			tbl.AppendRow(table.Row{t.Name, "", t.Keyword, t.Visibility == "public", lineRange(t.StartLine, t.EndLine)})
			for _, m := range t.Members {
				tbl.AppendRow(table.Row{"", m.Name, m.Kind, m.Exposed, lineRange(m.StartLine, m.EndLine)})
				members++
			}
			tbl.AppendSeparator()
		}

		tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d members", members)})
		tbl.Render()
	}

	for _, warn := range in.Warnings {
		color.New(color.FgYellow).Fprintf(w, "warning: %s\n", warn)
	}
}

func lineRange(start, end int) string {
	return fmt.Sprintf("%d-%d", start, end)
}
