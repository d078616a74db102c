package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"mpakit.dev/pkg/mpakit/internal/adapter"
	"mpakit.dev/pkg/mpakit/internal/controller"
	m "mpakit.dev/pkg/mpakit/internal/model"
	"mpakit.dev/pkg/mpakit/internal/watch"
)

// ErrNoEntries is returned when FailEmpty is set and nothing was resolved.
var ErrNoEntries = errors.New("no entries resolved")

// EntriesArgs contains the arguments for a one-shot resolution.
type EntriesArgs struct {
	Request m.ScanRequest
	// Manifest is where the entry table is written. Empty skips writing.
	Manifest m.Path
	// ShowDiff prints a diff against the manifest already on disk.
	ShowDiff bool
	// FailEmpty escalates an empty result to ErrNoEntries.
	FailEmpty bool
}

// WatchArgs contains the arguments for continuous resolution.
type WatchArgs struct {
	EntriesArgs
	Debounce time.Duration
}

// Runner is anything that blocks until its context ends.
type Runner interface {
	Run(ctx context.Context) error
}

// WatcherFactory builds the change source used by Watch.
type WatcherFactory func(cfg watch.Config) (Runner, error)

// Workflow defines the entry discovery commands.
type Workflow interface {
	Entries(ctx context.Context, args EntriesArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	Resolver
	adapter.ManifestStore
	controller.UI
	newWatcher WatcherFactory
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	resolver Resolver,
	manifestStore adapter.ManifestStore,
	ui controller.UI,
	newWatcher WatcherFactory,
) Workflow {
	if newWatcher == nil {
		newWatcher = func(cfg watch.Config) (Runner, error) {
			return watch.New(cfg)
		}
	}

	return &workflow{
		Resolver:      resolver,
		ManifestStore: manifestStore,
		UI:            ui,
		newWatcher:    newWatcher,
	}
}

func (w *workflow) Entries(ctx context.Context, args EntriesArgs) error {
	resolution, err := w.Resolve(ctx, args.Request)
	if err != nil {
		slog.Error("Failed to resolve entries", "error", err)
		return fmt.Errorf("resolve entries: %w", err)
	}

	if err := w.DisplayResolution(ctx, resolution); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Manifest != "" {
		if err := w.publish(ctx, args, nil, resolution.Entries); err != nil {
			return err
		}
	}

	if args.FailEmpty && resolution.Empty() {
		return fmt.Errorf("%w for %s", ErrNoEntries, m.ExtensionList(resolution.Extensions))
	}

	return nil
}

// publish writes the manifest, first diffing it against previous (or the
// manifest on disk when previous is nil) if requested.
func (w *workflow) publish(ctx context.Context, args EntriesArgs, previous map[string]string, entries *m.EntryMap) error {
	if args.ShowDiff {
		if previous == nil {
			loaded, err := w.LoadManifest(ctx, args.Manifest)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load manifest: %w", err)
			}

			previous = loaded
		}

		if err := w.showDiff(ctx, previous, entries.Table()); err != nil {
			return err
		}
	}

	if err := w.SaveManifest(ctx, args.Manifest, entries); err != nil {
		slog.Error("Failed to save manifest", "path", args.Manifest, "error", err)
		return fmt.Errorf("save manifest: %w", err)
	}

	slog.Info("Saved entry manifest", "path", args.Manifest, "entries", entries.Len())

	return nil
}

func (w *workflow) showDiff(ctx context.Context, before, after map[string]string) error {
	diff, err := DiffEntries(before, after)
	if err != nil {
		return fmt.Errorf("diff entries: %w", err)
	}

	return w.DisplayDiff(ctx, diff)
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	resolution, err := w.Resolve(ctx, args.Request)
	if err != nil {
		slog.Error("Failed to resolve entries", "error", err)
		return fmt.Errorf("resolve entries: %w", err)
	}

	if err := w.DisplayResolution(ctx, resolution); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Manifest != "" {
		if err := w.SaveManifest(ctx, args.Manifest, resolution.Entries); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}
	}

	current := resolution.Entries.Table()

	patterns := make([]string, 0, len(resolution.Extensions))
	for _, ext := range resolution.Extensions {
		patterns = append(patterns, adapter.GlobPattern(ext))
	}

	runner, err := w.newWatcher(watch.Config{
		BaseDir:  string(args.Request.SourceRoot),
		Patterns: patterns,
		Debounce: args.Debounce,
		OnChange: func(ctx context.Context, changed []string) error {
			slog.Debug("Source tree changed", "files", changed)

			next, err := w.Resolve(ctx, args.Request)
			if err != nil {
				return fmt.Errorf("resolve entries: %w", err)
			}

			if err := w.showDiff(ctx, current, next.Entries.Table()); err != nil {
				return err
			}

			if args.Manifest != "" {
				if err := w.SaveManifest(ctx, args.Manifest, next.Entries); err != nil {
					return fmt.Errorf("save manifest: %w", err)
				}
			}

			current = next.Entries.Table()

			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	slog.Info("Watching for entry changes", "root", args.Request.SourceRoot, "patterns", patterns)

	return runner.Run(ctx)
}
