// Package watch re-runs a callback when files below a directory change.
//
// Events are filtered with doublestar patterns relative to the base
// directory and coalesced over a debounce window, so an editor's
// write-then-rename shows up as a single callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Config.Debounce is unset.
const DefaultDebounce = 300 * time.Millisecond

var defaultIgnores = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
}

// ErrAlreadyRunning is returned when Run is called twice.
var ErrAlreadyRunning = errors.New("watch: Run called more than once")

// Config holds the parameters for a Watcher.
type Config struct {
	// BaseDir is the directory to watch recursively.
	BaseDir string
	// Patterns select files that trigger the callback ("**/*.js"). Empty
	// means every non-ignored file.
	Patterns []string
	// Ignore adds patterns to the built-in ignores.
	Ignore []string
	// Debounce is the quiet period after the last event.
	Debounce time.Duration
	// OnChange receives the changed paths relative to BaseDir.
	OnChange func(ctx context.Context, changed []string) error
}

// Watcher monitors a directory tree and fires a debounced callback.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	ignores  []string
	debounce time.Duration
	baseDir  string
	started  atomic.Bool
}

// New validates cfg and registers every non-ignored directory below
// BaseDir.
func New(cfg Config) (*Watcher, error) {
	absBase, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve base directory: %w", err)
	}

	if err := validatePatterns(cfg.Patterns); err != nil {
		return nil, err
	}

	if err := validatePatterns(cfg.Ignore); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		ignores:  append(slices.Clone(defaultIgnores), cfg.Ignore...),
		debounce: debounce,
		baseDir:  absBase,
	}

	if err := w.addDirectories(); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run blocks until ctx is cancelled or the watcher fails. It returns nil on
// cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	fire := func() {
		if ctx.Err() != nil {
			return
		}

		if !running.CompareAndSwap(false, true) {
			// previous callback still busy, retry after another window
			mu.Lock()
			timer.Reset(w.debounce)
			mu.Unlock()

			return
		}
		defer running.Store(false)

		mu.Lock()
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if len(changed) == 0 || w.cfg.OnChange == nil {
			return
		}

		if err := w.cfg.OnChange(ctx, changed); err != nil {
			slog.Error("Watch callback failed", "changed", len(changed), "error", err)
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()

		if err := w.fsw.Close(); err != nil {
			slog.Error("Failed to close fsnotify watcher", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed unexpectedly")
			}

			rel, err := filepath.Rel(w.baseDir, evt.Name)
			if err != nil {
				rel = evt.Name
			}

			if evt.Has(fsnotify.Create) {
				w.maybeAddDir(evt.Name)
			}

			if w.isIgnored(rel) || !w.matches(rel) {
				continue
			}

			slog.Debug("Watch event", "path", rel, "op", evt.Op.String())

			mu.Lock()
			pending[filepath.ToSlash(rel)] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed unexpectedly")
			}

			if isFatal(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}

			slog.Warn("fsnotify error", "error", err)
		}
	}
}

func (w *Watcher) addDirectories() error {
	if err := w.addTree(w.baseDir); err != nil {
		return fmt.Errorf("watch: walk directory tree: %w", err)
	}

	return nil
}

// addTree registers root and every non-ignored directory below it.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			slog.Warn("Skipping inaccessible path", "path", path, "error", walkErr)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(w.baseDir, path)
		if err != nil {
			return nil //nolint:nilerr // unreachable for paths below baseDir
		}

		if rel != "." && (w.isIgnored(rel) || w.isIgnored(rel+"/")) {
			return filepath.SkipDir
		}

		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, err)
		}

		return nil
	})
}

// maybeAddDir starts watching a directory created after Run began. Its
// subdirectories may already exist (mkdir -p), so the whole tree is added.
func (w *Watcher) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	if err := w.addTree(path); err != nil {
		slog.Warn("Failed to watch new directory", "path", path, "error", err)
	}
}

func (w *Watcher) isIgnored(rel string) bool {
	return matchAny(w.ignores, rel)
}

func (w *Watcher) matches(rel string) bool {
	if len(w.cfg.Patterns) == 0 {
		return true
	}

	return matchAny(w.cfg.Patterns, rel)
}

func matchAny(patterns []string, rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range patterns {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return true
		}
	}

	return false
}

func validatePatterns(patterns []string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("watch: invalid pattern %q: %w", pat, doublestar.ErrBadPattern)
		}
	}

	return nil
}

// isFatal reports resource exhaustion: the watcher cannot recover from a
// full inotify watch table or file descriptor limit.
func isFatal(err error) bool {
	return errors.Is(err, syscall.ENOSPC) ||
		errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE)
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}
