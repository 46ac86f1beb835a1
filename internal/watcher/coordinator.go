package watcher

import (
	"context"

	"go.uber.org/zap"
)

// Coordinator feeds debounced file changes into a Runner, one run at a time.
type Coordinator struct {
	files  FileWatcher
	runner Runner
	logger *zap.Logger
}

// NewCoordinator creates a coordinator.
func NewCoordinator(files FileWatcher, runner Runner, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		files:  files,
		runner: runner,
		logger: logger,
	}
}

// Start begins routing changes to the runner. Blocks until ctx is cancelled.
func (c *Coordinator) Start(ctx context.Context) error {
	if err := c.files.Start(ctx, func(files []string) {
		c.handleFileChange(ctx, files)
	}); err != nil {
		c.cleanup()
		return err
	}

	<-ctx.Done()
	c.cleanup()
	return ctx.Err()
}

func (c *Coordinator) cleanup() {
	if err := c.files.Stop(); err != nil {
		c.logger.Warn("File watcher stop failed", zap.Error(err))
	}
}

// handleFileChange runs once for a batch of changes. Events arriving during
// the run are held back and delivered as the next batch.
func (c *Coordinator) handleFileChange(ctx context.Context, files []string) {
	if len(files) == 0 || ctx.Err() != nil {
		return
	}

	c.files.Pause()
	defer c.files.Resume()

	c.logger.Info("Input changed", zap.Strings("files", files))
	if err := c.runner.Run(ctx, files); err != nil {
		// A failed run leaves previous output in place; keep watching.
		c.logger.Error("Run failed", zap.Error(err))
	}
}
