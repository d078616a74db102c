package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type writtenConfig struct {
	Version int `yaml:"version"`
	Entries struct {
		Extensions []string `yaml:"extensions"`
		Source     string   `yaml:"source"`
		Noskip     bool     `yaml:"noskip"`
		Verbose    bool     `yaml:"verbose"`
		Parallel   int      `yaml:"parallel"`
		Strict     bool     `yaml:"strict"`
		FailEmpty  bool     `yaml:"fail_empty"`
	} `yaml:"entries"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
	Watch struct {
		Debounce string `yaml:"debounce"`
	} `yaml:"watch"`
}

// chdirTemp moves the test into an empty directory, where init writes.
func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

// initTestCmd builds a root with fresh entries and watch flags so no value
// bound by an earlier test leaks into the written file.
func initTestCmd(out *bytes.Buffer, args ...string) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd(), newEntriesCmd(), newWatchCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init"}, args...))

	return cmd
}

func readWrittenConfig(t *testing.T, path string) writtenConfig {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg writtenConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	return cfg
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	tempDir := chdirTemp(t)

	out := &bytes.Buffer{}
	require.NoError(t, initTestCmd(out).Execute())

	targetPath := filepath.Join(tempDir, configFileName)
	cfg := readWrittenConfig(t, targetPath)

	assert.Equal(t, currentConfigVersion, cfg.Version)
	assert.Equal(t, []string{".js"}, cfg.Entries.Extensions)
	assert.Equal(t, defaultSource, cfg.Entries.Source)
	assert.Equal(t, defaultVerbose, cfg.Entries.Verbose)
	assert.Equal(t, defaultParallel, cfg.Entries.Parallel)
	assert.False(t, cfg.Entries.Noskip)
	assert.False(t, cfg.Entries.Strict)
	assert.False(t, cfg.Entries.FailEmpty)
	assert.Equal(t, defaultFormat, cfg.Output.Format)
	assert.Equal(t, "300ms", cfg.Watch.Debounce)

	assert.Contains(t, out.String(), "wrote "+configFileName)
	assert.Contains(t, out.String(), `source "src"`)
}

func TestInitCmd_RecordsFlags(t *testing.T) {
	tempDir := chdirTemp(t)

	require.NoError(t, initTestCmd(&bytes.Buffer{}, "-s", "app", "-p", "4", "--noskip").Execute())

	cfg := readWrittenConfig(t, filepath.Join(tempDir, configFileName))

	assert.Equal(t, "app", cfg.Entries.Source)
	assert.Equal(t, 4, cfg.Entries.Parallel)
	assert.True(t, cfg.Entries.Noskip)
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	err := initTestCmd(&bytes.Buffer{}).Execute()
	require.Error(t, err)

	contents, readErr := os.ReadFile(targetPath)
	require.NoError(t, readErr)
	assert.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	require.NoError(t, initTestCmd(&bytes.Buffer{}, "--force").Execute())

	cfg := readWrittenConfig(t, targetPath)
	assert.Equal(t, defaultSource, cfg.Entries.Source)
}
