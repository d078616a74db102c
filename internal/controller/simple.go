package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"mpakit.dev/pkg/mpakit/internal/adapter"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// SimpleUI writes resolutions as plain text, JSON or YAML.
type SimpleUI struct {
	out    io.Writer
	errOut io.Writer
	format OutputFormat
}

// NewSimpleUI creates a new SimpleUI. Entry tables go to out, diagnostics to
// errOut so machine-readable output stays clean.
func NewSimpleUI(out, errOut io.Writer, format OutputFormat) *SimpleUI {
	if format == "" {
		format = FormatTable
	}

	return &SimpleUI{out: out, errOut: errOut, format: format}
}

// DisplayResolution prints the resolution in the configured format followed
// by its diagnostics.
func (s *SimpleUI) DisplayResolution(ctx context.Context, resolution m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.format {
	case FormatJSON, FormatYAML:
		data, err := adapter.EncodeManifest(adapter.ManifestFormat(s.format), resolution.Entries.Table())
		if err != nil {
			return err
		}

		if _, err := s.out.Write(data); err != nil {
			return err
		}
	case FormatTable:
		if resolution.Verbose {
			s.printf(s.out, "Entries for %s\n\n%s", m.ExtensionList(resolution.Extensions), RenderEntryTable(resolution.Entries))
		} else {
			s.printf(s.out, "Resolved %d entries for %s\n", resolution.Entries.Len(), m.ExtensionList(resolution.Extensions))
		}
	default:
		return fmt.Errorf("unsupported output format %q", s.format)
	}

	s.DisplayDiagnostics(resolution.Diagnostics)

	return nil
}

// DisplayDiagnostics prints one line per diagnostic.
func (s *SimpleUI) DisplayDiagnostics(diagnostics []m.Diagnostic) {
	for _, diagnostic := range diagnostics {
		s.printf(s.errOut, "%s: %s\n", diagnostic.Severity, diagnostic.Message)
	}
}

// DisplayDiff prints a unified diff of the entry table.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf(s.out, "Entries unchanged\n")
		return nil
	}

	s.printf(s.out, "%s", diff)

	return nil
}

// RenderEntryTable renders entries as an aligned table in insertion order.
func RenderEntryTable(entries *m.EntryMap) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Key", "Path", "Ext"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, entry := range entries.Entries() {
		table.Append([]string{entry.Key, string(entry.Path), string(entry.Extension)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Entries %d", entries.Len()), "", ""})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
