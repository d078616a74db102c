// Package adapter contains filesystem and output adapters for mpakit.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// ErrNotDirectory is returned when a scan root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning source trees. It hides direct `os` access so the
// resolver can be tested without touching the disk.
type SourceFSAdapter interface {
	// Glob returns the absolute paths of regular files below root matching
	// root/**/*<ext>. No match is an empty result, not an error.
	Glob(ctx context.Context, root m.Path, ext m.Extension) ([]m.Path, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// AbsPath resolves path against the working directory.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions,
	// creating parent directories as needed.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the resolver.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Glob walks root and collects files ending in ext.
func (a *LocalSourceFSAdapter) Glob(ctx context.Context, root m.Path, ext m.Extension) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(string(root))
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", absRoot, ErrNotDirectory)
	}

	pattern := GlobPattern(ext)
	matches := []m.Path{}

	// dotfiles and anything below a dot directory are tool artifacts, never entries
	err = doublestar.GlobWalk(os.DirFS(absRoot), pattern, func(path string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		full := filepath.Join(absRoot, filepath.FromSlash(path))
		if !isRegularFile(full, d) {
			return nil
		}

		matches = append(matches, m.Path(full))

		return nil
	}, doublestar.WithNoHidden())
	if err != nil {
		return nil, fmt.Errorf("glob %s in %s: %w", pattern, absRoot, err)
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })

	return matches, nil
}

// isRegularFile reports whether d is a regular file, following symlinks.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}

	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// GlobPattern builds the recursive doublestar pattern for ext.
func GlobPattern(ext m.Extension) string {
	return "**/*" + escapeGlob(string(ext))
}

func escapeGlob(value string) string {
	var b strings.Builder

	for _, r := range value {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteRune('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - path is a manifest location chosen by the user
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}
