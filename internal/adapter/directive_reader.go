package adapter

import (
	"context"
	"errors"
	"io"
	"os"

	m "mpakit.dev/pkg/mpakit/internal/model"
)

// DirectiveReader inspects the leading bytes of a candidate file for the
// "not entry" directive. Implementations must never modify the file.
type DirectiveReader interface {
	HasDirective(ctx context.Context, path m.Path) (bool, error)
}

// LocalDirectiveReader reads directives from the local filesystem.
type LocalDirectiveReader struct{}

// NewLocalDirectiveReader constructs a LocalDirectiveReader.
func NewLocalDirectiveReader() *LocalDirectiveReader {
	return &LocalDirectiveReader{}
}

// HasDirective reports whether the file at path starts with m.Directive.
// Files shorter than the directive never carry it.
func (r *LocalDirectiveReader) HasDirective(ctx context.Context, path m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// #nosec G304 - path comes from the scanned source tree
	f, err := os.Open(string(path))
	if err != nil {
		return false, err
	}

	defer func() {
		_ = f.Close()
	}()

	head := make([]byte, m.DirectiveLength)

	_, err = io.ReadFull(f, head)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return string(head) == m.Directive, nil
}
