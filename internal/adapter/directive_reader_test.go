package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "mpakit.dev/pkg/mpakit/internal/model"
)

func TestLocalDirectiveReader_HasDirective(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     bool
	}{
		{"marker only", "/*not entry*/", true},
		{"marker then code", "/*not entry*/\nexport default 1\n", true},
		{"empty file", "", false},
		{"shorter than marker", "/*not*/", false},
		{"marker after whitespace", " /*not entry*/", false},
		{"different comment", "/*is entry!!*/", false},
		{"marker on second line", "\n/*not entry*/", false},
		{"uppercase marker", "/*NOT ENTRY*/", false},
	}

	reader := NewLocalDirectiveReader()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "page.js")
			writeTestFile(t, path, tt.contents)

			got, err := reader.HasDirective(context.Background(), m.Path(path))
			if err != nil {
				t.Fatalf("HasDirective() error = %v", err)
			}

			if got != tt.want {
				t.Fatalf("HasDirective(%q) = %v, want %v", tt.contents, got, tt.want)
			}
		})
	}
}

func TestLocalDirectiveReader_DoesNotModifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.js")
	writeTestFile(t, path, "/*not entry*/ body")

	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if _, err := NewLocalDirectiveReader().HasDirective(context.Background(), m.Path(path)); err != nil {
		t.Fatalf("HasDirective() error = %v", err)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if !after.ModTime().Equal(before.ModTime()) || after.Size() != before.Size() {
		t.Fatalf("HasDirective() modified %s", path)
	}
}

func TestLocalDirectiveReader_Errors(t *testing.T) {
	reader := NewLocalDirectiveReader()

	t.Run("missing file", func(t *testing.T) {
		_, err := reader.HasDirective(context.Background(), m.Path(filepath.Join(t.TempDir(), "gone.js")))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("HasDirective() error = %v, want not exist", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := reader.HasDirective(ctx, "unused.js")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("HasDirective() error = %v, want context.Canceled", err)
		}
	})
}
