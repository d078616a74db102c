package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI(t *testing.T) {
	var out bytes.Buffer

	_, isTUI := NewUI(&out, &out, FormatTable, true).(*TUI)
	assert.True(t, isTUI)

	_, isSimple := NewUI(&out, &out, FormatJSON, true).(*SimpleUI)
	assert.True(t, isSimple, "machine-readable formats never page")

	_, isSimple = NewUI(&out, &out, FormatTable, false).(*SimpleUI)
	assert.True(t, isSimple)
}

func TestParseOutputFormat(t *testing.T) {
	for _, value := range []string{"table", "json", "yaml"} {
		format, err := ParseOutputFormat(value)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(value), format)
	}

	format, err := ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, format)

	_, err = ParseOutputFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTTY(f))
}
