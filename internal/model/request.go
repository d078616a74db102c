package model

import "strings"

// ScanRequest describes a single entry resolution. It is built once by the
// caller and never mutated by the resolver.
type ScanRequest struct {
	Extensions []Extension
	SourceRoot Path
	// BaseDir overrides SourceRoot as the directory keys are relative to.
	BaseDir Path
	// Includes is an allow-list of keys. Empty means not configured.
	Includes []string
	// Excludes is a deny-list of keys, consulted only without Includes.
	Excludes []string

	AllowLeadingUnderscore bool
	Verbose                bool

	// Threads bounds concurrent directive probes. Values below 2 probe
	// sequentially.
	Threads int
	// Strict turns key collisions into errors.
	Strict bool
	// SkipUnreadable downgrades directive probe failures to warnings.
	SkipUnreadable bool
}

// KeyBase returns the directory that entry keys are relative to.
func (r ScanRequest) KeyBase() Path {
	if strings.TrimSpace(string(r.BaseDir)) != "" {
		return r.BaseDir
	}

	return r.SourceRoot
}

// EffectiveExtensions returns the normalized, de-duplicated extensions of the
// request, falling back to DefaultExtension when none are given.
func (r ScanRequest) EffectiveExtensions() []Extension {
	if len(r.Extensions) == 0 {
		return []Extension{DefaultExtension}
	}

	seen := make(map[Extension]struct{}, len(r.Extensions))
	exts := make([]Extension, 0, len(r.Extensions))

	for _, ext := range r.Extensions {
		normalized := ext.Normalize()
		if _, ok := seen[normalized]; ok {
			continue
		}

		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}

	return exts
}

// ParseKeyList splits a comma-separated key list. Blank items are dropped,
// so an empty string yields nil (list not configured).
func ParseKeyList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}

		keys = append(keys, key)
	}

	if len(keys) == 0 {
		return nil
	}

	return keys
}
