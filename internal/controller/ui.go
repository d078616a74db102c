// Package controller renders entry resolutions for the command line.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// OutputFormat selects how resolutions are rendered.
type OutputFormat string

// Supported output formats.
const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// ErrUnknownFormat is returned for output formats other than table, json or
// yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch format := OutputFormat(value); format {
	case FormatTable, FormatJSON, FormatYAML:
		return format, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// UI defines the reporting collaborator invoked with finished resolutions.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResolution(ctx context.Context, resolution m.Resolution) error
	DisplayDiff(ctx context.Context, diff string) error
}

// NewUI picks the interactive pager for tables on a terminal and the plain
// writer everywhere else.
func NewUI(out, errOut io.Writer, format OutputFormat, tty bool) UI {
	simple := NewSimpleUI(out, errOut, format)
	if tty && format == FormatTable {
		return NewTUI(out, simple)
	}

	return simple
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
