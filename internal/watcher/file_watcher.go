package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 500 * time.Millisecond

// inputWatcher reports changes to an explicit set of files. It subscribes to
// the files' parent directories so that editors which save by rename stay
// tracked, and drops events for every other file in those directories.
type inputWatcher struct {
	fsw      *fsnotify.Watcher
	inputs   map[string]bool // cleaned absolute paths
	debounce time.Duration
	logger   *zap.Logger

	onChange func(files []string)
	cancel   context.CancelFunc

	mu      sync.Mutex
	pending map[string]struct{}
	held    bool
	timer   *time.Timer

	ready    chan struct{} // debounce expired or hold released
	finished chan struct{}
	stopOnce sync.Once
}

// NewFileWatcher creates a watcher for the given files. Every file's
// directory must exist; the files themselves may come and go.
func NewFileWatcher(files []string, debounce time.Duration, logger *zap.Logger) (FileWatcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	inputs := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		inputs[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return &inputWatcher{
		fsw:      fsw,
		inputs:   inputs,
		debounce: debounce,
		logger:   logger,
		pending:  make(map[string]struct{}),
		ready:    make(chan struct{}, 1),
		finished: make(chan struct{}),
	}, nil
}

// Start launches the event loop. A nil callback leaves the watcher idle.
func (w *inputWatcher) Start(ctx context.Context, callback func(files []string)) error {
	if callback == nil {
		return nil
	}
	w.onChange = callback

	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	go w.loop(loopCtx)
	return nil
}

// Stop ends the event loop and releases the fsnotify watcher. Safe to call
// more than once, with or without a prior Start.
func (w *inputWatcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		if w.cancel == nil {
			close(w.finished)
		} else {
			w.cancel()
			<-w.finished
		}
		err = w.fsw.Close()
	})
	return err
}

// Pause holds back callbacks; changes keep accumulating.
func (w *inputWatcher) Pause() {
	w.mu.Lock()
	w.held = true
	w.mu.Unlock()
}

// Resume releases held changes, delivering them right away if there are any.
func (w *inputWatcher) Resume() {
	w.mu.Lock()
	wasHeld := w.held
	w.held = false
	w.mu.Unlock()

	if wasHeld {
		w.notify()
	}
}

func (w *inputWatcher) notify() {
	select {
	case w.ready <- struct{}{}:
	default:
	}
}

func (w *inputWatcher) loop(ctx context.Context) {
	defer close(w.finished)

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
				w.timer = nil
			}
			w.mu.Unlock()
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.record(filepath.Clean(ev.Name))
			}

		case <-w.ready:
			if files := w.drain(); len(files) > 0 {
				// Runs on the loop goroutine, so callbacks never overlap.
				w.onChange(files)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", zap.Error(err))
		}
	}
}

// record adds a changed file and restarts the quiet period.
func (w *inputWatcher) record(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.notify)
}

// drain empties the pending set unless callbacks are held.
func (w *inputWatcher) drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.held || len(w.pending) == 0 {
		return nil
	}
	files := make([]string, 0, len(w.pending))
	for f := range w.pending {
		files = append(files, f)
	}
	w.pending = make(map[string]struct{})
	sort.Strings(files)
	return files
}

func (w *inputWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return w.inputs[filepath.Clean(ev.Name)]
}
