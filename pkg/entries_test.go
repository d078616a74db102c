package pkg

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, contents := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
}

func TestResolveEntries(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, map[string]string{
		"index.js":          "",
		"about/main.js":     "",
		"about/_helpers.js": "",
		"vendor/shim.js":    "/*not entry*/\nwindow.x = 1",
		"styles/site.css":   "",
	})

	tests := []struct {
		name       string
		extensions []string
		opts       Options
		want       map[string]string
	}{
		{
			name:       "defaults to js",
			extensions: nil,
			opts:       Options{SourceRoot: root},
			want: map[string]string{
				"index":      filepath.Join(root, "index.js"),
				"about/main": filepath.Join(root, "about", "main.js"),
			},
		},
		{
			name:       "noskip keeps partials",
			extensions: []string{"js"},
			opts:       Options{SourceRoot: root, NoSkip: true},
			want: map[string]string{
				"index":          filepath.Join(root, "index.js"),
				"about/main":     filepath.Join(root, "about", "main.js"),
				"about/_helpers": filepath.Join(root, "about", "_helpers.js"),
			},
		},
		{
			name:       "includes win over excludes",
			extensions: []string{".js", ".css"},
			opts:       Options{SourceRoot: root, Includes: "index, styles/site", Excludes: "index"},
			want: map[string]string{
				"index":       filepath.Join(root, "index.js"),
				"styles/site": filepath.Join(root, "styles", "site.css"),
			},
		},
		{
			name:       "base dir above the source root",
			extensions: []string{".css"},
			opts:       Options{SourceRoot: filepath.Join(root, "styles"), BaseDir: root},
			want: map[string]string{
				"styles/site": filepath.Join(root, "styles", "site.css"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			tt.opts.Output = &out
			tt.opts.ErrOutput = &errOut

			got, err := ResolveEntries(context.Background(), tt.extensions, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestResolveEntries_VerbosePrintsTable(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, map[string]string{"home.js": ""})

	var out bytes.Buffer
	got, err := ResolveEntries(context.Background(), []string{".js"}, Options{
		SourceRoot: root,
		Verbose:    true,
		Output:     &out,
		ErrOutput:  &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Contains(t, out.String(), "Entries for '.js'")
	assert.Contains(t, out.String(), "home")
	assert.Contains(t, out.String(), filepath.Join(root, "home.js"))
}

func TestResolveEntries_EmptyReportsDiagnostic(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, map[string]string{"readme.md": ""})

	var errOut bytes.Buffer
	got, err := ResolveEntries(context.Background(), []string{".ts"}, Options{
		SourceRoot: root,
		Output:     &bytes.Buffer{},
		ErrOutput:  &errOut,
	})
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.Contains(t, errOut.String(), "got no entry for '.ts'")
}

func TestResolveEntries_InvalidExtension(t *testing.T) {
	_, err := ResolveEntries(context.Background(), []string{" "}, Options{
		SourceRoot: t.TempDir(),
		Output:     &bytes.Buffer{},
		ErrOutput:  &bytes.Buffer{},
	})
	require.Error(t, err)
}

func TestResolveEntries_EmptySourceRootScansSrc(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{
		"src/home.js":  "",
		"tools/gen.js": "",
	})

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	got, err := ResolveEntries(context.Background(), nil, Options{
		Output:    &bytes.Buffer{},
		ErrOutput: &bytes.Buffer{},
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Contains(t, got, "home")
	assert.Equal(t, "home.js", filepath.Base(got["home"]))
}
