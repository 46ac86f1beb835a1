package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/splitcs/internal/extraction"
)

var (
	// ErrInvalidPattern indicates an input glob that does not compile
	ErrInvalidPattern = errors.New("invalid input pattern")

	// ErrInvalidSize indicates an unparseable max_file_size
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidKeyword indicates an unsupported type keyword
	ErrInvalidKeyword = errors.New("invalid type keyword")

	// ErrInvalidOutput indicates unusable output settings
	ErrInvalidOutput = errors.New("invalid output settings")

	// ErrInvalidSplitMode indicates an unknown split mode or count
	ErrInvalidSplitMode = errors.New("invalid split settings")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateInput(&cfg.Input); err != nil {
		errs = append(errs, err)
	}
	if err := validateParsing(&cfg.Parsing); err != nil {
		errs = append(errs, err)
	}
	if err := validateOutput(&cfg.Output); err != nil {
		errs = append(errs, err)
	}
	if err := validateSplit(&cfg.Split); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateInput(cfg *InputConfig) error {
	var errs []error

	// Patterns can be empty: every input is then accepted
	for _, p := range cfg.Patterns {
		if _, err := glob.Compile(p, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err))
		}
	}

	if _, err := cfg.MaxFileSizeBytes(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidSize, err))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateParsing(cfg *ParsingConfig) error {
	var errs []error

	if len(cfg.TypeKeywords) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one type keyword required", ErrInvalidKeyword))
	}
	for _, kw := range cfg.TypeKeywords {
		if !extraction.SupportedKeyword(kw) {
			errs = append(errs, fmt.Errorf("%w: %s (valid: class, struct, record, interface)", ErrInvalidKeyword, kw))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateOutput(cfg *OutputConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Directory) == "" {
		errs = append(errs, fmt.Errorf("%w: directory is required", ErrInvalidOutput))
	}
	if cfg.UseSpaces && (cfg.IndentSize < 1 || cfg.IndentSize > 16) {
		errs = append(errs, fmt.Errorf("%w: indent_size must be between 1 and 16, got %d", ErrInvalidOutput, cfg.IndentSize))
	}
	if !strings.Contains(cfg.FileNamingPattern, "{PartNumber}") {
		errs = append(errs, fmt.Errorf("%w: file_naming_pattern must contain {PartNumber}, got %q", ErrInvalidOutput, cfg.FileNamingPattern))
	}
	// Without the type name, parts of different types in one input collide.
	if !strings.Contains(cfg.FileNamingPattern, "{TypeName}") && !strings.Contains(cfg.FileNamingPattern, "{ClassName}") {
		errs = append(errs, fmt.Errorf("%w: file_naming_pattern must contain {TypeName}, got %q", ErrInvalidOutput, cfg.FileNamingPattern))
	}
	if cfg.Extension != "" && !strings.HasPrefix(cfg.Extension, ".") {
		errs = append(errs, fmt.Errorf("%w: extension must start with '.', got %q", ErrInvalidOutput, cfg.Extension))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateSplit(cfg *SplitConfig) error {
	var errs []error

	switch cfg.DefaultMode {
	case ModeVisibility:
	case ModeRoundRobin:
		if cfg.DefaultCount <= 0 {
			errs = append(errs, fmt.Errorf("%w: round_robin needs a positive default_count, got %d", ErrInvalidSplitMode, cfg.DefaultCount))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: default_mode must be 'visibility' or 'round_robin', got '%s'", ErrInvalidSplitMode, cfg.DefaultMode))
	}

	if cfg.DefaultCount < 0 {
		errs = append(errs, fmt.Errorf("%w: default_count cannot be negative, got %d", ErrInvalidSplitMode, cfg.DefaultCount))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

// validationErrors reports several problems at once while keeping each one
// reachable through errors.Is.
type validationErrors []error

func (v validationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Error())
	}
	return "validation failed:\n  - " + strings.Join(msgs, "\n  - ")
}

func (v validationErrors) Unwrap() []error { return v }

// joinErrors returns nil, the single error, or a validationErrors.
func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return validationErrors(errs)
}
