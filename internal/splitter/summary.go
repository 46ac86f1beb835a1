package splitter

import (
	"time"

	"github.com/mvp-joe/splitcs/internal/extraction"
)

// ChangeStatus tells how an output file compares with what was on disk.
type ChangeStatus string

const (
	StatusCreated   ChangeStatus = "created"
	StatusUpdated   ChangeStatus = "updated"
	StatusUnchanged ChangeStatus = "unchanged"
)

// Summary describes a completed run.
type Summary struct {
	RunID     string               `json:"run_id" yaml:"run_id"`
	InputPath string               `json:"input_path" yaml:"input_path"`
	OutputDir string               `json:"output_dir" yaml:"output_dir"`
	Policy    string               `json:"policy" yaml:"policy"`
	DryRun    bool                 `json:"dry_run" yaml:"dry_run"`
	Types     []TypeSummary        `json:"types" yaml:"types"`
	Warnings  []extraction.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	StartedAt time.Time            `json:"started_at" yaml:"started_at"`
	Duration  time.Duration        `json:"duration" yaml:"duration"`
}

// TypeSummary describes the files produced for one type.
type TypeSummary struct {
	Name    string         `json:"name" yaml:"name"`
	Keyword string         `json:"keyword" yaml:"keyword"`
	Members int            `json:"members" yaml:"members"`
	Exposed int            `json:"exposed" yaml:"exposed"`
	Hidden  int            `json:"hidden" yaml:"hidden"`
	Groups  []GroupSummary `json:"groups" yaml:"groups"`
}

// GroupSummary describes one output file.
type GroupSummary struct {
	Part         int          `json:"part" yaml:"part"`
	FileName     string       `json:"file_name" yaml:"file_name"`
	Path         string       `json:"path" yaml:"path"`
	Members      []string     `json:"members" yaml:"members"`
	Exposed      int          `json:"exposed" yaml:"exposed"`
	Hidden       int          `json:"hidden" yaml:"hidden"`
	Status       ChangeStatus `json:"status" yaml:"status"`
	LinesAdded   int          `json:"lines_added" yaml:"lines_added"`
	LinesRemoved int          `json:"lines_removed" yaml:"lines_removed"`
}

// FileCount returns the number of output files across all types.
func (s *Summary) FileCount() int {
	n := 0
	for _, t := range s.Types {
		n += len(t.Groups)
	}
	return n
}

// MemberCount returns the number of members distributed across all types.
func (s *Summary) MemberCount() int {
	n := 0
	for _, t := range s.Types {
		n += t.Members
	}
	return n
}

// ShowsVisibility reports whether the exposed/hidden tally is meaningful,
// which is the case for the visibility policy only.
func (s *Summary) ShowsVisibility() bool {
	return s.Policy == ByVisibility{}.Name()
}

func summarizeGroup(part int, fileName, path string, group MemberGroup) GroupSummary {
	g := GroupSummary{
		Part:     part,
		FileName: fileName,
		Path:     path,
		Members:  make([]string, 0, len(group)),
	}
	for _, m := range group {
		g.Members = append(g.Members, m.Name)
		if m.Exposed {
			g.Exposed++
		} else {
			g.Hidden++
		}
	}
	return g
}
