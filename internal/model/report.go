package model

import "strings"

// Severity represents diagnostic severity.
type Severity string

const (
	// SeverityWarning indicates a recoverable resolution warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a condition callers may choose to escalate.
	SeverityError Severity = "error"
)

// Diagnostic codes reported by the resolver.
const (
	CodeNoEntries             = "no_entries"
	CodeNoEntriesForExtension = "no_entries_for_extension"
	CodeKeyCollision          = "key_collision"
	CodeUnreadableCandidate   = "unreadable_candidate"
)

// Diagnostic is a structured, non-fatal observation made during resolution.
// It is returned to callers instead of being printed so rendering stays in
// the controller layer.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	// Path is the file the diagnostic is about (optional).
	Path Path
	// Key is the entry key the diagnostic is about (optional).
	Key string
	// Cause is the underlying error (optional).
	Cause error
}

// Resolution is the outcome of resolving entries for one ScanRequest.
type Resolution struct {
	Entries     *EntryMap
	Diagnostics []Diagnostic
	Extensions  []Extension
	Verbose     bool
}

// Empty reports whether no entry was discovered.
func (r Resolution) Empty() bool {
	return r.Entries.Len() == 0
}

// HasDiagnostic reports whether a diagnostic with the given code exists.
func (r Resolution) HasDiagnostic(code string) bool {
	for _, diagnostic := range r.Diagnostics {
		if diagnostic.Code == code {
			return true
		}
	}

	return false
}

// ExtensionList joins extensions for display ("'.js' and '.css'").
func ExtensionList(exts []Extension) string {
	names := make([]string, 0, len(exts))
	for _, ext := range exts {
		names = append(names, "'"+string(ext)+"'")
	}

	return strings.Join(names, " and ")
}
