package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "mpakit.dev/pkg/mpakit/internal/model"
)

// EntryKey derives the logical entry name of path: its location relative to
// base with the extension suffix removed, always slash-separated so keys are
// usable as chunk names on every platform.
func EntryKey(base, path m.Path, ext m.Extension) (string, error) {
	rel, err := filepath.Rel(string(base), string(path))
	if err != nil {
		return "", fmt.Errorf("relative key for %s: %w", path, err)
	}

	return strings.TrimSuffix(filepath.ToSlash(rel), string(ext)), nil
}
