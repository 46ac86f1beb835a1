package watcher

import "context"

// FileWatcher monitors input files for changes with debouncing and pause/resume support.
type FileWatcher interface {
	// Start begins watching, calling callback with debounced file changes.
	Start(ctx context.Context, callback func(files []string)) error

	// Stop stops the file watcher and cleans up resources.
	Stop() error

	// Pause stops firing callbacks but continues accumulating events.
	Pause()

	// Resume resumes firing callbacks. If events accumulated during pause, fires immediately.
	Resume()
}

// Runner performs one complete run in response to changed inputs.
type Runner interface {
	Run(ctx context.Context, changed []string) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, changed []string) error

func (f RunnerFunc) Run(ctx context.Context, changed []string) error {
	return f(ctx, changed)
}
