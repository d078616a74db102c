// Package model defines the data structures for entry discovery.
package model

import "strings"

// Path represents a file system path.
type Path string

// Extension is a file extension including its leading dot (e.g. ".js").
type Extension string

// DefaultExtension is used when a request names no extensions.
const DefaultExtension Extension = ".js"

// DefaultSourceRoot is the source tree scanned when none is configured.
const DefaultSourceRoot Path = "src"

// Normalize returns the extension with surrounding whitespace removed and a
// leading dot added when missing.
func (e Extension) Normalize() Extension {
	ext := strings.TrimSpace(string(e))
	if ext == "" {
		return ""
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return Extension(ext)
}

// CandidateFile is a file produced by the tree scanner for one requested
// extension. It only lives for the duration of a single resolution.
type CandidateFile struct {
	Path      Path
	Extension Extension
}

// Directive is the marker a file may start with to opt out of entry
// discovery even when its name passes every naming rule.
const Directive = "/*not entry*/"

// DirectiveLength is the number of leading bytes probed for the Directive.
const DirectiveLength = len(Directive)
