package dictionary_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordchain/internal/dictionary"
)

func writeList(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRead(t *testing.T) {
	words, err := dictionary.Read(strings.NewReader("Cat\n  dog \r\n\n\tCOT\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog", "cot"}, words)
}

func TestRead_Empty(t *testing.T) {
	words, err := dictionary.Read(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestLoad_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeList(t, dir, "a.txt", "cat\ncot\n")
	b := writeList(t, dir, "b.txt", "COG\ndog\ncat\n")

	d := dictionary.Load(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), a, b)
	require.Equal(t, 4, d.Len())
	require.Equal(t, []string{"cat", "cog", "cot", "dog"}, d.Words())
}

func TestLoad_UnreadablePath(t *testing.T) {
	dir := t.TempDir()
	a := writeList(t, dir, "a.txt", "cat\n")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	d := dictionary.Load(context.Background(), logger, a, filepath.Join(dir, "missing.txt"))

	require.Equal(t, 1, d.Len())
	require.True(t, d.Contains("cat"))
	require.Contains(t, logs.String(), "level=ERROR")
	require.Contains(t, logs.String(), "missing.txt")
}

func TestLoad_NoPaths(t *testing.T) {
	d := dictionary.Load(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NotNil(t, d)
	require.Zero(t, d.Len())
}
