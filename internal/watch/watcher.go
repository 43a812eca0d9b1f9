package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/specialistvlad/specgraph/internal/ctxlog"
)

// DefaultDebounce is the quiet period before the callback runs.
const DefaultDebounce = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".idea":        true,
	".vscode":      true,
}

// Options configures a Watcher.
type Options struct {
	// Root is the directory tree to watch.
	Root string
	// Extension selects the files whose changes matter, e.g. ".sdl".
	Extension string
	Debounce  time.Duration
	// OnChange runs on the watcher goroutine after each quiet period.
	OnChange func(ctx context.Context)
}

// Watcher watches a directory tree for source changes.
type Watcher struct {
	opts    Options
	fsw     *fsnotify.Watcher
	logger  *slog.Logger
	watched int
}

// New creates a watcher and registers every directory under opts.Root.
// Events that happen after New returns are observed by Run.
func New(ctx context.Context, opts Options) (*Watcher, error) {
	if opts.OnChange == nil {
		return nil, errors.New("watch: OnChange must be set")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		opts:   opts,
		fsw:    fsw,
		logger: ctxlog.FromContext(ctx),
	}
	if err := w.addWatchDirs(opts.Root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch directories: %w", err)
	}
	w.logger.Debug("File watcher ready.", "root", opts.Root, "directories", w.watched, "extension", opts.Extension)
	return w, nil
}

// Run processes events until ctx is done or the underlying watcher closes.
// It closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				w.addIfDirectory(event.Name)
			}
			if !w.isRelevantChange(event) {
				continue
			}
			w.logger.Debug("Source change detected.", "file", event.Name, "op", event.Op.String())
			timer.Reset(w.opts.Debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.opts.OnChange(ctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error.", "error", err)
		}
	}
}

// Close releases the watcher without running it.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Ext(event.Name) == w.opts.Extension
}

func (w *Watcher) addWatchDirs(root string) error {
	return addWatchDirsWithAdder(root, func(path string) error {
		if err := w.fsw.Add(path); err != nil {
			return err
		}
		w.watched++
		return nil
	})
}

// addWatchDirsWithAdder walks root and hands every directory to add.
// Directories that vanish during the walk are ignored.
func addWatchDirsWithAdder(root string, add func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	})
}

func (w *Watcher) addIfDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.addWatchDirs(path); err != nil {
		w.logger.Warn("Failed to watch new directory.", "dir", path, "error", err)
	}
}
