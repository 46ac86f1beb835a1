package splitter

import "github.com/mvp-joe/splitcs/internal/extraction"

// ProgressReporter receives fire-and-forget callbacks while a run proceeds.
// Implementations can draw progress bars, log, or stay silent.
type ProgressReporter interface {
	// OnParseStart is called before the input is read.
	OnParseStart(path string)

	// OnParseComplete is called once extraction finishes.
	OnParseComplete(types, members int)

	// OnWarning is called for each recoverable extraction warning.
	OnWarning(w extraction.Warning)

	// OnTypeStart is called before a type's groups are rendered.
	OnTypeStart(typeName string, groups int)

	// OnFileWritten is called after each output file (or would-be file in a dry run).
	OnFileWritten(path string, status ChangeStatus)

	// OnTypeComplete is called after all of a type's files are handled.
	OnTypeComplete(typeName string)

	// OnComplete is called when the run succeeds.
	OnComplete(summary *Summary)
}

// NoOpProgressReporter does nothing. Used for --quiet and in tests.
type NoOpProgressReporter struct{}

func (NoOpProgressReporter) OnParseStart(path string)                       {}
func (NoOpProgressReporter) OnParseComplete(types, members int)             {}
func (NoOpProgressReporter) OnWarning(w extraction.Warning)                 {}
func (NoOpProgressReporter) OnTypeStart(typeName string, groups int)        {}
func (NoOpProgressReporter) OnFileWritten(path string, status ChangeStatus) {}
func (NoOpProgressReporter) OnTypeComplete(typeName string)                 {}
func (NoOpProgressReporter) OnComplete(summary *Summary)                    {}
