// Package domain implements entry discovery: scanning a source tree and
// turning the files that pass the filter chain into an ordered entry table.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"mpakit.dev/pkg/mpakit/internal/adapter"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

var (
	// ErrInvalidExtension is returned for blank extensions.
	ErrInvalidExtension = errors.New("invalid extension")
	// ErrSourceRoot is returned when the source root cannot be scanned.
	ErrSourceRoot = errors.New("invalid source root")
	// ErrKeyCollision is returned in strict mode when two files share a key.
	ErrKeyCollision = errors.New("entry key collision")
)

// Resolver turns a ScanRequest into the entry table a bundler consumes.
type Resolver interface {
	Resolve(ctx context.Context, req m.ScanRequest) (m.Resolution, error)
}

type resolver struct {
	fs    adapter.SourceFSAdapter
	chain *FilterChain
}

// NewResolver creates a Resolver backed by the provided filesystem and
// directive reader, using the standard filter chain.
func NewResolver(fs adapter.SourceFSAdapter, reader adapter.DirectiveReader) Resolver {
	return NewResolverWithChain(fs, NewFilterChain(reader))
}

// NewResolverWithChain creates a Resolver evaluating candidates with chain.
func NewResolverWithChain(fs adapter.SourceFSAdapter, chain *FilterChain) Resolver {
	return &resolver{fs: fs, chain: chain}
}

// slot holds the outcome for one candidate so probes can run concurrently
// while the merge stays in scan order.
type slot struct {
	entry      m.Entry
	accepted   bool
	diagnostic *m.Diagnostic
}

func (r *resolver) Resolve(ctx context.Context, req m.ScanRequest) (m.Resolution, error) {
	exts := req.EffectiveExtensions()
	result := m.Resolution{
		Entries:    m.NewEntryMap(),
		Extensions: exts,
		Verbose:    req.Verbose,
	}

	for _, ext := range exts {
		if ext == "" {
			return result, fmt.Errorf("%w: empty extension", ErrInvalidExtension)
		}
	}

	root, base, err := r.roots(ctx, req)
	if err != nil {
		return result, err
	}

	slog.Debug("Resolving entries", "root", root, "base", base, "extensions", exts, "threads", req.Threads)

	for _, ext := range exts {
		slots, err := r.resolveExtension(ctx, req, root, base, ext)
		if err != nil {
			return result, err
		}

		accepted := 0

		for _, s := range slots {
			if s.diagnostic != nil {
				result.Diagnostics = append(result.Diagnostics, *s.diagnostic)
			}

			if !s.accepted {
				continue
			}

			accepted++

			if err := r.merge(&result, s.entry, req.Strict); err != nil {
				return result, err
			}
		}

		if accepted == 0 {
			result.Diagnostics = append(result.Diagnostics, m.Diagnostic{
				Severity: m.SeverityWarning,
				Code:     m.CodeNoEntriesForExtension,
				Message:  fmt.Sprintf("no entry found for '%s' under %s", ext, root),
				Path:     root,
			})
		}
	}

	if result.Empty() {
		slog.Warn("Got no entry", "extensions", exts, "root", root)
		result.Diagnostics = append(result.Diagnostics, m.Diagnostic{
			Severity: m.SeverityError,
			Code:     m.CodeNoEntries,
			Message:  fmt.Sprintf("got no entry for %s", m.ExtensionList(exts)),
			Path:     root,
		})
	}

	slog.Debug("Resolved entries", "count", result.Entries.Len(), "diagnostics", len(result.Diagnostics))

	return result, nil
}

func (r *resolver) roots(ctx context.Context, req m.ScanRequest) (m.Path, m.Path, error) {
	root, err := r.fs.AbsPath(ctx, req.SourceRoot)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSourceRoot, err)
	}

	info, err := r.fs.FileInfo(ctx, root)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSourceRoot, err)
	}

	if !info.IsDir() {
		return "", "", fmt.Errorf("%w: %s: %w", ErrSourceRoot, root, adapter.ErrNotDirectory)
	}

	base := root
	if req.BaseDir != "" {
		base, err = r.fs.AbsPath(ctx, req.KeyBase())
		if err != nil {
			return "", "", fmt.Errorf("resolve base dir: %w", err)
		}
	}

	return root, base, nil
}

// merge inserts entry, applying the last-wins collision policy.
func (r *resolver) merge(result *m.Resolution, entry m.Entry, strict bool) error {
	previous, replaced := result.Entries.Set(entry)
	if !replaced || previous.Path == entry.Path {
		return nil
	}

	if strict {
		return fmt.Errorf("%w: %q from %s and %s", ErrKeyCollision, entry.Key, previous.Path, entry.Path)
	}

	slog.Warn("Entry key collision", "key", entry.Key, "kept", entry.Path, "dropped", previous.Path)
	result.Diagnostics = append(result.Diagnostics, m.Diagnostic{
		Severity: m.SeverityWarning,
		Code:     m.CodeKeyCollision,
		Message:  fmt.Sprintf("entry %q from %s replaced by %s", entry.Key, previous.Path, entry.Path),
		Path:     entry.Path,
		Key:      entry.Key,
	})

	return nil
}

func (r *resolver) resolveExtension(ctx context.Context, req m.ScanRequest, root, base m.Path, ext m.Extension) ([]slot, error) {
	paths, err := r.fs.Glob(ctx, root, ext)
	if err != nil {
		return nil, fmt.Errorf("scan %s for '%s': %w", root, ext, err)
	}

	slog.Debug("Scanned candidates", "extension", ext, "count", len(paths))

	candidates := make([]Candidate, 0, len(paths))

	for _, path := range paths {
		key, err := EntryKey(base, path, ext)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, Candidate{
			File: m.CandidateFile{Path: path, Extension: ext},
			Key:  key,
		})
	}

	slots := make([]slot, len(candidates))

	if req.Threads < 2 || len(candidates) < 2 {
		for i, candidate := range candidates {
			if err := r.evaluate(ctx, req, candidate, &slots[i]); err != nil {
				return nil, err
			}
		}

		return slots, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(req.Threads)

	for i, candidate := range candidates {
		target := &slots[i]

		group.Go(func() error {
			return r.evaluate(groupCtx, req, candidate, target)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *resolver) evaluate(ctx context.Context, req m.ScanRequest, candidate Candidate, target *slot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	verdict, err := r.chain.Evaluate(ctx, candidate, req)
	if err != nil {
		if !req.SkipUnreadable || ctx.Err() != nil {
			return fmt.Errorf("probe %s: %w", candidate.File.Path, err)
		}

		slog.Warn("Skipping unreadable candidate", "path", candidate.File.Path, "error", err)
		target.diagnostic = &m.Diagnostic{
			Severity: m.SeverityWarning,
			Code:     m.CodeUnreadableCandidate,
			Message:  fmt.Sprintf("skipped unreadable file %s: %v", candidate.File.Path, err),
			Path:     candidate.File.Path,
			Key:      candidate.Key,
			Cause:    err,
		}

		return nil
	}

	if !verdict.Accepted {
		slog.Debug("Rejected candidate", "path", candidate.File.Path, "key", candidate.Key, "rule", verdict.RejectedBy)
		return nil
	}

	target.accepted = true
	target.entry = m.Entry{
		Key:       candidate.Key,
		Path:      candidate.File.Path,
		Extension: candidate.File.Extension,
	}

	return nil
}
