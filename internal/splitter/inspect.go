package splitter

import "github.com/mvp-joe/splitcs/internal/extraction"

// Inspection is the serializable view of an extraction result.
type Inspection struct {
	Path       string               `json:"path" yaml:"path"`
	Namespace  string               `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Directives []string             `json:"directives" yaml:"directives"`
	Types      []TypeInspection     `json:"types" yaml:"types"`
	Warnings   []extraction.Warning `json:"warnings" yaml:"warnings"`
}

// TypeInspection describes one extracted type.
type TypeInspection struct {
	Name       string             `json:"name" yaml:"name"`
	Keyword    string             `json:"keyword" yaml:"keyword"`
	Visibility string             `json:"visibility" yaml:"visibility"`
	Namespace  string             `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	StartLine  int                `json:"start_line" yaml:"start_line"`
	EndLine    int                `json:"end_line" yaml:"end_line"`
	Members    []MemberInspection `json:"members" yaml:"members"`
}

// MemberInspection describes one extracted member.
type MemberInspection struct {
	Name      string `json:"name" yaml:"name"`
	Kind      string `json:"kind" yaml:"kind"`
	Exposed   bool   `json:"exposed" yaml:"exposed"`
	Signature string `json:"signature" yaml:"signature"`
	StartLine int    `json:"start_line" yaml:"start_line"`
	EndLine   int    `json:"end_line" yaml:"end_line"`
}

// Inspect converts an extraction result into an Inspection.
func Inspect(result *extraction.Result) *Inspection {
	file := result.File
	in := &Inspection{
		Path:       file.Path,
		Namespace:  file.Namespace,
		Directives: append([]string{}, file.Directives...),
		Types:      make([]TypeInspection, 0, len(file.Types)),
		Warnings:   append([]extraction.Warning{}, result.Warnings...),
	}
	for _, t := range file.Types {
		ti := TypeInspection{
			Name:       t.Name,
			Keyword:    t.Keyword,
			Visibility: string(t.Visibility),
			Namespace:  t.Namespace,
			StartLine:  t.StartLine,
			EndLine:    t.EndLine,
			Members:    make([]MemberInspection, 0, len(t.Members)),
		}
		for _, m := range t.Members {
			ti.Members = append(ti.Members, MemberInspection{
				Name:      m.Name,
				Kind:      string(m.Kind),
				Exposed:   m.Exposed,
				Signature: m.Signature,
				StartLine: m.StartLine,
				EndLine:   m.EndLine,
			})
		}
		in.Types = append(in.Types, ti)
	}
	return in
}
