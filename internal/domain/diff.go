package domain

import (
	"maps"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffEntries renders a unified diff between two entry tables. Equal tables
// produce an empty string.
func DiffEntries(before, after map[string]string) (string, error) {
	if maps.Equal(before, after) {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        entryLines(before),
		B:        entryLines(after),
		FromFile: "entries (before)",
		ToFile:   "entries (after)",
		Context:  1,
	}

	return difflib.GetUnifiedDiffString(diff)
}

func entryLines(table map[string]string) []string {
	keys := slices.Sorted(maps.Keys(table))
	lines := make([]string, 0, len(keys))

	for _, key := range keys {
		lines = append(lines, key+" => "+table[key]+"\n")
	}

	return lines
}
