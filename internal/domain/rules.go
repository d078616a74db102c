package domain

import (
	"context"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"mpakit.dev/pkg/mpakit/internal/adapter"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// Rule names, reported as the reason a candidate was rejected.
const (
	RuleExtension  = "extension"
	RuleUnderscore = "underscore"
	RuleNameShape  = "name-shape"
	RuleDirective  = "directive"
	RuleList       = "list"
)

// Candidate is a scanned file together with the key it would be published
// under. The key is derived before filtering so list rules can consult it.
type Candidate struct {
	File m.CandidateFile
	Key  string
}

// Stem returns the file name with the candidate extension removed.
func (c Candidate) Stem() string {
	return strings.TrimSuffix(filepath.Base(string(c.File.Path)), string(c.File.Extension))
}

// FilterRule decides whether a candidate stays in the entry set.
type FilterRule interface {
	Name() string
	Allow(ctx context.Context, candidate Candidate, req m.ScanRequest) (bool, error)
}

// ExtensionRule requires the file extension to equal the requested one
// exactly, so ".js" never picks up "x.jsx" or "x.JS".
type ExtensionRule struct{}

// Name implements FilterRule.
func (ExtensionRule) Name() string { return RuleExtension }

// Allow implements FilterRule.
func (ExtensionRule) Allow(_ context.Context, candidate Candidate, _ m.ScanRequest) (bool, error) {
	return m.Extension(filepath.Ext(string(candidate.File.Path))) == candidate.File.Extension, nil
}

// UnderscoreRule drops partials whose name starts with "_".
type UnderscoreRule struct{}

// Name implements FilterRule.
func (UnderscoreRule) Name() string { return RuleUnderscore }

// Allow implements FilterRule.
func (UnderscoreRule) Allow(_ context.Context, candidate Candidate, req m.ScanRequest) (bool, error) {
	if req.AllowLeadingUnderscore {
		return true, nil
	}

	return !strings.HasPrefix(candidate.Stem(), "_"), nil
}

var nameShapePattern = regexp.MustCompile(`[A-Za-z0-9]+$`)

// NameShape reports whether a file stem ends in at least one ASCII letter or
// digit. Editor backups and generated names ("page~", "tmp-") fail it.
func NameShape(stem string) bool {
	return nameShapePattern.MatchString(stem)
}

// NameShapeRule applies NameShape to the candidate stem.
type NameShapeRule struct{}

// Name implements FilterRule.
func (NameShapeRule) Name() string { return RuleNameShape }

// Allow implements FilterRule.
func (NameShapeRule) Allow(_ context.Context, candidate Candidate, _ m.ScanRequest) (bool, error) {
	return NameShape(candidate.Stem()), nil
}

// DirectiveRule drops files that opt out with the leading directive.
type DirectiveRule struct {
	Reader adapter.DirectiveReader
}

// Name implements FilterRule.
func (DirectiveRule) Name() string { return RuleDirective }

// Allow implements FilterRule.
func (r DirectiveRule) Allow(ctx context.Context, candidate Candidate, _ m.ScanRequest) (bool, error) {
	excluded, err := r.Reader.HasDirective(ctx, candidate.File.Path)
	if err != nil {
		return false, err
	}

	return !excluded, nil
}

// ListRule applies the include list, or the exclude list when no include
// list is configured. Each list is checked on its own; neither assumes the
// other is present.
type ListRule struct{}

// Name implements FilterRule.
func (ListRule) Name() string { return RuleList }

// Allow implements FilterRule.
func (ListRule) Allow(_ context.Context, candidate Candidate, req m.ScanRequest) (bool, error) {
	if len(req.Includes) > 0 {
		return slices.Contains(req.Includes, candidate.Key), nil
	}

	if len(req.Excludes) > 0 {
		return !slices.Contains(req.Excludes, candidate.Key), nil
	}

	return true, nil
}

// Verdict is the outcome of running a candidate through a FilterChain.
type Verdict struct {
	Accepted   bool
	RejectedBy string
}

// FilterChain runs rules in order and stops at the first rejection.
type FilterChain struct {
	rules []FilterRule
}

// NewFilterChain returns the standard chain: metadata rules first, then the
// directive probe, then the allow/deny lists.
func NewFilterChain(reader adapter.DirectiveReader) *FilterChain {
	return NewCustomFilterChain(
		ExtensionRule{},
		UnderscoreRule{},
		NameShapeRule{},
		DirectiveRule{Reader: reader},
		ListRule{},
	)
}

// NewCustomFilterChain builds a chain from explicit rules.
func NewCustomFilterChain(rules ...FilterRule) *FilterChain {
	return &FilterChain{rules: rules}
}

// Rules returns the rule names in evaluation order.
func (fc *FilterChain) Rules() []string {
	names := make([]string, 0, len(fc.rules))
	for _, rule := range fc.rules {
		names = append(names, rule.Name())
	}

	return names
}

// Evaluate runs candidate through the chain.
func (fc *FilterChain) Evaluate(ctx context.Context, candidate Candidate, req m.ScanRequest) (Verdict, error) {
	for _, rule := range fc.rules {
		ok, err := rule.Allow(ctx, candidate, req)
		if err != nil {
			return Verdict{RejectedBy: rule.Name()}, err
		}

		if !ok {
			return Verdict{RejectedBy: rule.Name()}, nil
		}
	}

	return Verdict{Accepted: true}, nil
}
