package mines

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBoard(t *testing.T) {
	b, err := LoadBoard(strings.NewReader("3 2\n0 1 0\n0 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())

	assert.True(t, b.Dig(1, 0))
	assert.False(t, b.Dig(0, 1))
}

func TestLoadBoardCRLF(t *testing.T) {
	b, err := LoadBoard(strings.NewReader("2 2\r\n1 0\r\n0 0\r\n"))
	require.NoError(t, err)
	assert.False(t, b.Dig(1, 1))
	assert.Equal(t, render("- -", "- 1"), b.String())
}

func TestLoadBoardNoTrailingNewline(t *testing.T) {
	_, err := LoadBoard(strings.NewReader("1 1\n0"))
	assert.NoError(t, err)
}

func TestLoadBoardWideRows(t *testing.T) {
	const width = 40000
	row := strings.Repeat("0 ", width-1) + "1\n"
	b, err := LoadBoard(strings.NewReader(fmt.Sprintf("%d 1\n%s", width, row)))
	require.NoError(t, err)
	assert.Equal(t, width, b.Width())
	assert.True(t, b.Dig(width-1, 0))

	const tooWide = maxRowBytes/2 + 1
	row = strings.Repeat("0 ", tooWide-1) + "0\n"
	_, err = LoadBoard(strings.NewReader(fmt.Sprintf("%d 1\n%s", tooWide, row)))
	assert.ErrorAs(t, err, &ConfigError{})
}

func TestLoadBoardMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header missing height", "3\n0 0 0\n"},
		{"header not numeric", "a b\n"},
		{"zero width", "0 1\n\n"},
		{"too few rows", "2 2\n0 0\n"},
		{"too few values", "2 1\n0\n"},
		{"too many values", "2 1\n0 0 0\n"},
		{"bad value", "2 1\n0 2\n"},
		{"double space", "2 1\n0  0\n"},
		{"extra rows", "1 1\n0\n1\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadBoard(strings.NewReader(test.input))
			assert.ErrorAs(t, err, &ConfigError{})
		})
	}
}

func TestLoadBoardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 1\n1 0\n"), 0o644))

	b, err := LoadBoardFile(path)
	require.NoError(t, err)
	assert.True(t, b.Dig(0, 0))

	_, err = LoadBoardFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
