package splitter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mvp-joe/splitcs/internal/extraction"
)

// Options is the splitter's view of the configuration.
type Options struct {
	Extraction        extraction.Options
	Renderer          Renderer
	OutputDir         string
	CreateDirectories bool
	MaxFileSize       int64 // bytes; 0 disables the check
	InputPatterns     []string
	DefaultCount      int // applied when a request carries no split count
}

// DefaultOptions returns options matching the default configuration.
func DefaultOptions() Options {
	return Options{
		Extraction:        extraction.DefaultOptions(),
		Renderer:          DefaultRenderer(),
		OutputDir:         "./Output",
		CreateDirectories: true,
		MaxFileSize:       50 * 1000 * 1000,
		InputPatterns:     []string{"**/*.cs"},
	}
}

// Request describes one split run.
type Request struct {
	InputPath  string
	OutputDir  string // empty means Options.OutputDir
	SplitCount int    // 0 means no fixed count
	TypeName   string // empty means every type
	DryRun     bool
}

// Validate checks the request before any I/O happens.
func (r Request) Validate() error {
	if r.InputPath == "" {
		return fmt.Errorf("%w: no input path given", ErrInputNotFound)
	}
	if r.SplitCount < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSplitCount, r.SplitCount)
	}
	return nil
}

// ResultCache stores extraction results by content key.
type ResultCache interface {
	Get(key string) (*extraction.Result, bool)
	Set(key string, result *extraction.Result)
}

// Option configures optional collaborators of a Splitter.
type Option func(*Splitter)

// WithProgress sets the progress reporter.
func WithProgress(p ProgressReporter) Option {
	return func(s *Splitter) { s.progress = p }
}

// WithCache sets a cache consulted before extracting.
func WithCache(c ResultCache) Option {
	return func(s *Splitter) { s.cache = c }
}

// Splitter runs the read, extract, group, render and write pipeline.
// A Splitter holds no per-run state and may be reused for serial runs.
type Splitter struct {
	opts      Options
	fs        FileSystem
	extractor *extraction.Extractor
	matcher   *InputMatcher
	progress  ProgressReporter
	cache     ResultCache
	logger    *zap.Logger
}

// New creates a Splitter. A nil logger is replaced by a no-op logger.
func New(opts Options, fsys FileSystem, logger *zap.Logger, options ...Option) (*Splitter, error) {
	if opts.DefaultCount < 0 {
		return nil, fmt.Errorf("%w: default count %d", ErrInvalidSplitCount, opts.DefaultCount)
	}
	extractor, err := extraction.NewExtractor(opts.Extraction)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}
	matcher, err := NewInputMatcher(opts.InputPatterns)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Splitter{
		opts:      opts,
		fs:        fsys,
		extractor: extractor,
		matcher:   matcher,
		progress:  NoOpProgressReporter{},
		logger:    logger,
	}
	for _, o := range options {
		o(s)
	}
	return s, nil
}

// Parse reads and extracts the input file without writing anything.
func (s *Splitter) Parse(path string) (*extraction.Result, error) {
	size, err := s.fs.FileSize(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if s.opts.MaxFileSize > 0 && size > s.opts.MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %s, limit is %s", ErrInputTooLarge, path,
			humanize.Bytes(uint64(size)), humanize.Bytes(uint64(s.opts.MaxFileSize)))
	}

	s.progress.OnParseStart(path)

	text, err := s.fs.ReadAllText(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	key := CacheKey(path, text)
	result, cached := s.lookup(key)
	if !cached {
		lines, err := s.fs.ReadAllLines(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input lines: %w", err)
		}
		result = s.extractor.Extract(path, text, lines)
		if s.cache != nil {
			s.cache.Set(key, result)
		}
	}

	s.logger.Debug("Parsed input",
		zap.String("path", path),
		zap.Bool("cached", cached),
		zap.Int("types", len(result.File.Types)),
		zap.Int("members", result.File.MemberCount()),
		zap.Int("warnings", len(result.Warnings)))
	s.progress.OnParseComplete(len(result.File.Types), result.File.MemberCount())

	return result, nil
}

func (s *Splitter) lookup(key string) (*extraction.Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

// SupportedInput reports whether path matches the configured input patterns.
func (s *Splitter) SupportedInput(path string) bool {
	return s.matcher.Match(path)
}

// Run executes one split. Fatal problems are returned as errors wrapping the
// package sentinels; recoverable extraction problems end up in the summary.
func (s *Splitter) Run(ctx context.Context, req Request) (*Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = s.opts.OutputDir
	}
	count := req.SplitCount
	if count == 0 {
		count = s.opts.DefaultCount
	}
	policy := PolicyFor(count)

	if !s.SupportedInput(req.InputPath) {
		s.logger.Warn("Input does not match any input pattern",
			zap.String("path", req.InputPath),
			zap.Strings("patterns", s.matcher.Patterns()))
	}

	result, err := s.Parse(req.InputPath)
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		s.logger.Warn("Skipped declaration",
			zap.String("kind", string(w.Kind)),
			zap.String("site", w.Site),
			zap.String("name", w.Name),
			zap.Int("line", w.Line))
		s.progress.OnWarning(w)
	}

	types, err := selectTypes(result.File, req.TypeName)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:     uuid.NewString(),
		InputPath: req.InputPath,
		OutputDir: outputDir,
		Policy:    policy.Name(),
		DryRun:    req.DryRun,
		Types:     []TypeSummary{},
		Warnings:  result.Warnings,
		StartedAt: started,
	}

	for _, t := range types {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ts, err := s.splitType(t, result.File.Directives, policy, outputDir, req.DryRun)
		if err != nil {
			return nil, err
		}
		summary.Types = append(summary.Types, ts)
	}

	summary.Duration = time.Since(started)
	s.logger.Info("Split complete",
		zap.String("run_id", summary.RunID),
		zap.String("input", req.InputPath),
		zap.Int("types", len(summary.Types)),
		zap.Int("files", summary.FileCount()),
		zap.Bool("dry_run", req.DryRun),
		zap.Duration("duration", summary.Duration))
	s.progress.OnComplete(summary)

	return summary, nil
}

func (s *Splitter) splitType(t *extraction.TypeDeclaration, directives []string, policy Policy, outputDir string, dryRun bool) (TypeSummary, error) {
	groups := policy.Group(t.Members)
	ts := TypeSummary{
		Name:    t.Name,
		Keyword: t.Keyword,
		Members: len(t.Members),
		Exposed: t.ExposedCount(),
		Hidden:  len(t.Members) - t.ExposedCount(),
		Groups:  make([]GroupSummary, 0, len(groups)),
	}
	if len(groups) == 0 {
		s.logger.Debug("Type has no members, nothing to write", zap.String("type", t.Name))
		return ts, nil
	}

	s.progress.OnTypeStart(t.Name, len(groups))
	if !dryRun {
		if err := s.ensureDirectory(outputDir); err != nil {
			return ts, err
		}
	}

	for i, group := range groups {
		lines := s.opts.Renderer.Render(t, directives, group)
		name := s.opts.Renderer.FileName(t.Name, i+1)
		path := filepath.Join(outputDir, name)

		gs := summarizeGroup(i+1, name, path, group)
		gs.Status, gs.LinesAdded, gs.LinesRemoved = changeStatus(s.existingLines(path), lines)

		if !dryRun && gs.Status != StatusUnchanged {
			if err := s.fs.WriteAllLines(path, lines); err != nil {
				return ts, fmt.Errorf("%w: %s: %v", ErrOutputUnwritable, path, err)
			}
		}

		s.logger.Debug("Rendered part",
			zap.String("type", t.Name),
			zap.String("path", path),
			zap.String("status", string(gs.Status)),
			zap.Int("members", len(group)))
		s.progress.OnFileWritten(path, gs.Status)
		ts.Groups = append(ts.Groups, gs)
	}

	s.progress.OnTypeComplete(t.Name)
	return ts, nil
}

func (s *Splitter) ensureDirectory(dir string) error {
	if s.fs.DirectoryExists(dir) {
		return nil
	}
	if !s.opts.CreateDirectories {
		return fmt.Errorf("%w: directory %s does not exist", ErrOutputUnwritable, dir)
	}
	if err := s.fs.CreateDirectory(dir); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputUnwritable, dir, err)
	}
	return nil
}

// existingLines returns the current content of path, or nil when there is none.
func (s *Splitter) existingLines(path string) []string {
	lines, err := s.fs.ReadAllLines(path)
	if err != nil {
		return nil
	}
	return lines
}

// selectTypes applies the optional, case-insensitive type filter.
func selectTypes(file *extraction.SourceFile, name string) ([]*extraction.TypeDeclaration, error) {
	if name != "" {
		t, ok := file.FindType(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrTypeNotFound, name, file.Path)
		}
		return []*extraction.TypeDeclaration{t}, nil
	}
	types := make([]*extraction.TypeDeclaration, 0, len(file.Types))
	for i := range file.Types {
		types = append(types, &file.Types[i])
	}
	return types, nil
}

// CacheKey identifies an extraction result by path and content.
func CacheKey(path, text string) string {
	sum := sha256.Sum256([]byte(text))
	return path + "@" + hex.EncodeToString(sum[:])
}
