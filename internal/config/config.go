package config

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mvp-joe/splitcs/internal/extraction"
	"github.com/mvp-joe/splitcs/internal/splitter"
)

// Split modes accepted by split.default_mode.
const (
	ModeVisibility = "visibility"
	ModeRoundRobin = "round_robin"
)

// Config represents the complete splitcs configuration.
// It can be loaded from .splitcs/config.yml with environment variable overrides.
type Config struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Parsing ParsingConfig `yaml:"parsing" mapstructure:"parsing"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Split   SplitConfig   `yaml:"split" mapstructure:"split"`
}

// InputConfig restricts what is accepted as input.
type InputConfig struct {
	Patterns    []string `yaml:"patterns" mapstructure:"patterns"`           // glob patterns for supported files
	MaxFileSize string   `yaml:"max_file_size" mapstructure:"max_file_size"` // e.g. "50 MB"; "0" disables the limit
}

// ParsingConfig controls declaration recognition.
type ParsingConfig struct {
	TypeKeywords        []string `yaml:"type_keywords" mapstructure:"type_keywords"` // class, struct, record, interface
	IncludeProperties   bool     `yaml:"include_properties" mapstructure:"include_properties"`
	IncludeConstructors bool     `yaml:"include_constructors" mapstructure:"include_constructors"`
	SkipLiterals        bool     `yaml:"skip_literals" mapstructure:"skip_literals"` // ignore braces in strings and comments
}

// OutputConfig controls where and how part files are written.
type OutputConfig struct {
	Directory           string `yaml:"directory" mapstructure:"directory"`
	CreateDirectories   bool   `yaml:"create_directories" mapstructure:"create_directories"`
	IndentSize          int    `yaml:"indent_size" mapstructure:"indent_size"`
	UseSpaces           bool   `yaml:"use_spaces" mapstructure:"use_spaces"`
	AddGeneratedComment bool   `yaml:"add_generated_comment" mapstructure:"add_generated_comment"`
	FileNamingPattern   string `yaml:"file_naming_pattern" mapstructure:"file_naming_pattern"` // {TypeName}, {PartNumber}, {Extension}
	Extension           string `yaml:"extension" mapstructure:"extension"`
}

// SplitConfig picks the grouping policy when no count is given on the command line.
type SplitConfig struct {
	DefaultMode  string `yaml:"default_mode" mapstructure:"default_mode"`   // "visibility" or "round_robin"
	DefaultCount int    `yaml:"default_count" mapstructure:"default_count"` // used by round_robin
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Patterns:    []string{"**/*.cs"},
			MaxFileSize: "50 MB",
		},
		Parsing: ParsingConfig{
			TypeKeywords:        []string{"class"},
			IncludeProperties:   true,
			IncludeConstructors: true,
			SkipLiterals:        true,
		},
		Output: OutputConfig{
			Directory:         "./Output",
			CreateDirectories: true,
			IndentSize:        4,
			UseSpaces:         true,
			FileNamingPattern: splitter.DefaultNamePattern,
			Extension:         splitter.DefaultExtension,
		},
		Split: SplitConfig{
			DefaultMode: ModeVisibility,
		},
	}
}

// MaxFileSizeBytes parses Input.MaxFileSize. Empty or "0" means no limit.
func (c InputConfig) MaxFileSizeBytes() (int64, error) {
	s := strings.TrimSpace(c.MaxFileSize)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid max_file_size %q: %w", c.MaxFileSize, err)
	}
	return int64(n), nil
}

// IndentUnit returns the string prepended to each member line.
func (c OutputConfig) IndentUnit() string {
	if !c.UseSpaces {
		return "\t"
	}
	return strings.Repeat(" ", c.IndentSize)
}

// ToSplitterOptions converts the configuration into splitter options.
func (c *Config) ToSplitterOptions() (splitter.Options, error) {
	maxSize, err := c.Input.MaxFileSizeBytes()
	if err != nil {
		return splitter.Options{}, err
	}

	defaultCount := 0
	if c.Split.DefaultMode == ModeRoundRobin {
		defaultCount = c.Split.DefaultCount
	}

	return splitter.Options{
		Extraction: extraction.Options{
			TypeKeywords:        c.Parsing.TypeKeywords,
			IncludeProperties:   c.Parsing.IncludeProperties,
			IncludeConstructors: c.Parsing.IncludeConstructors,
			SkipLiterals:        c.Parsing.SkipLiterals,
		},
		Renderer: splitter.Renderer{
			Indent:           c.Output.IndentUnit(),
			GeneratedComment: c.Output.AddGeneratedComment,
			Extension:        c.Output.Extension,
			NamePattern:      c.Output.FileNamingPattern,
		},
		OutputDir:         c.Output.Directory,
		CreateDirectories: c.Output.CreateDirectories,
		MaxFileSize:       maxSize,
		InputPatterns:     c.Input.Patterns,
		DefaultCount:      defaultCount,
	}, nil
}
