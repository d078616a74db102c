// Package pkg exposes entry discovery to Go build tooling that cannot import
// mpakit's internal packages.
package pkg

import (
	"context"
	"io"
	"os"

	"mpakit.dev/pkg/mpakit/internal/adapter"
	"mpakit.dev/pkg/mpakit/internal/controller"
	"mpakit.dev/pkg/mpakit/internal/domain"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// Options is the option bag accepted by ResolveEntries.
type Options struct {
	// SourceRoot is the directory scanned for entries. Empty means "src",
	// relative to the working directory, as on the command line.
	SourceRoot string
	// BaseDir overrides SourceRoot as the directory keys are relative to.
	BaseDir string
	// Includes is a comma-separated allow-list of keys.
	Includes string
	// Excludes is a comma-separated deny-list of keys, ignored when Includes
	// is set.
	Excludes string
	// NoSkip keeps files whose name starts with an underscore.
	NoSkip bool
	// Verbose prints the resolved entry table to Output.
	Verbose bool

	// Output receives the verbose table. Defaults to os.Stdout.
	Output io.Writer
	// ErrOutput receives diagnostics. Defaults to os.Stderr.
	ErrOutput io.Writer
}

// ResolveEntries scans opts.SourceRoot for files with the given extensions
// (".js" when none are given) and returns the key to path entry table.
// Diagnostics such as an empty result are written to ErrOutput, they do not
// fail the call.
func ResolveEntries(ctx context.Context, extensions []string, opts Options) (map[string]string, error) {
	fs := adapter.NewLocalSourceFSAdapter()
	resolver := domain.NewResolver(fs, adapter.NewLocalDirectiveReader())

	sourceRoot := opts.SourceRoot
	if sourceRoot == "" {
		sourceRoot = string(m.DefaultSourceRoot)
	}

	req := domain.Options{
		SourceRoot: sourceRoot,
		BaseDir:    opts.BaseDir,
		Includes:   opts.Includes,
		Excludes:   opts.Excludes,
		NoSkip:     opts.NoSkip,
		Verbose:    opts.Verbose,
	}.Request(extensions)

	resolution, err := resolver.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if !opts.Verbose {
		out = io.Discard
	}

	errOut := opts.ErrOutput
	if errOut == nil {
		errOut = os.Stderr
	}

	ui := controller.NewSimpleUI(out, errOut, controller.FormatTable)
	if err := ui.DisplayResolution(ctx, resolution); err != nil {
		return nil, err
	}

	return resolution.Entries.Table(), nil
}
