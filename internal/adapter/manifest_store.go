package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// ManifestFormat selects how an entry manifest is encoded.
type ManifestFormat string

const (
	// ManifestJSON encodes the entry table as a JSON object.
	ManifestJSON ManifestFormat = "json"
	// ManifestYAML encodes the entry table as a YAML mapping.
	ManifestYAML ManifestFormat = "yaml"
)

// ErrUnknownManifestFormat is returned for formats other than json or yaml.
var ErrUnknownManifestFormat = errors.New("unknown manifest format")

// ManifestStore persists entry tables so a bundler configuration can load
// them without running the resolver itself.
type ManifestStore interface {
	SaveManifest(ctx context.Context, path m.Path, entries *m.EntryMap) error
	LoadManifest(ctx context.Context, path m.Path) (map[string]string, error)
}

type manifestStore struct {
	fs SourceFSAdapter
}

// NewManifestStore creates a ManifestStore writing through fs.
func NewManifestStore(fs SourceFSAdapter) ManifestStore {
	return &manifestStore{fs: fs}
}

// FormatForPath picks the manifest format from the file extension.
func FormatForPath(path m.Path) ManifestFormat {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return ManifestYAML
	default:
		return ManifestJSON
	}
}

// EncodeManifest renders the entry table in the given format.
func EncodeManifest(format ManifestFormat, table map[string]string) ([]byte, error) {
	switch format {
	case ManifestJSON:
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	case ManifestYAML:
		return yaml.Marshal(table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownManifestFormat, format)
	}
}

func (s *manifestStore) SaveManifest(ctx context.Context, path m.Path, entries *m.EntryMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeManifest(FormatForPath(path), entries.Table())
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := s.fs.WriteFile(ctx, path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

func (s *manifestStore) LoadManifest(ctx context.Context, path m.Path) (map[string]string, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	table := map[string]string{}

	switch FormatForPath(path) {
	case ManifestYAML:
		err = yaml.Unmarshal(data, &table)
	default:
		err = json.Unmarshal(data, &table)
	}

	if err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return table, nil
}
