package dictionary_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
)

func TestRead_NormalisesAndFilters(t *testing.T) {
	raw := "  Cat\nbat\n\nbad\nbad\ncot\ncats\nc4t\n\tDOG \n"
	words, err := dictionary.Read(strings.NewReader(raw), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"bad", "bat", "cat", "cot", "dog"}, words)
}

func TestRead_AnyLength(t *testing.T) {
	words, err := dictionary.Read(strings.NewReader("ox\ncat\nox\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "ox"}, words)
}

func TestRead_NegativeLength(t *testing.T) {
	_, err := dictionary.Read(strings.NewReader("cat"), -1)
	require.ErrorIs(t, err, dictionary.ErrBadLength)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := dictionary.Load(filepath.Join(dir, "nope.txt"), 3)
	require.True(t, errors.Is(err, dictionary.ErrMissingInput), "got %v", err)

	empty := filepath.Join(dir, "3_letter.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n  \nfour\n"), 0o644))
	_, err = dictionary.Load(empty, 3)
	require.ErrorIs(t, err, dictionary.ErrEmptyInput)
}

func TestLoad_OK(t *testing.T) {
	dir := t.TempDir()
	path := dictionary.Path(dir, 3)
	require.NoError(t, dictionary.SaveFile(path, []string{"cat", "bat"}))

	words, err := dictionary.Load(path, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"bat", "cat"}, words)
	assert.Equal(t, "3_letter.txt", filepath.Base(path))
}

func TestSplit(t *testing.T) {
	raw := "cat\nstone\nox\nSHONE\ncat\nbat\n"
	got, err := dictionary.Split(strings.NewReader(raw), 3, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"bat", "cat"}, got[3])
	assert.Equal(t, []string{"shone", "stone"}, got[5])
	assert.Empty(t, got[7])

	_, err = dictionary.Split(strings.NewReader(raw), 0)
	require.ErrorIs(t, err, dictionary.ErrBadLength)
}

func TestWriteWords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dictionary.WriteWords(&buf, []string{"bat", "cat"}))
	assert.Equal(t, "bat\ncat\n", buf.String())
}

func TestNormalize(t *testing.T) {
	w, ok := dictionary.Normalize("  Hello\r", 5)
	require.True(t, ok)
	assert.Equal(t, "hello", w)

	_, ok = dictionary.Normalize("don't", 5)
	assert.False(t, ok)
}
