package input

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerber-estimate/core/types"
	"gerber-estimate/internal/errors"
)

func buildZip(t *testing.T, entries map[string]string, order []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range order {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(entries[name]))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExpandArchive(t *testing.T) {
	order := []string{
		"gerbers/",
		"gerbers/board-F_Cu.gtl",
		"gerbers/board-B_Cu.gbl",
		"__MACOSX/gerbers/._board-B_Cu.gbl",
		"gerbers/._board-F_Cu.gtl",
	}
	entries := map[string]string{
		"gerbers/board-F_Cu.gtl":            "%MOMM*%",
		"gerbers/board-B_Cu.gbl":            "%MOIN*%",
		"__MACOSX/gerbers/._board-B_Cu.gbl": "junk",
		"gerbers/._board-F_Cu.gtl":          "junk",
	}
	data := buildZip(t, entries, order)

	files, err := Expand(context.Background(), []types.Upload{{Name: "job.ZIP", Data: data}})
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "gerbers/board-F_Cu.gtl", files[0].Name)
	assert.Equal(t, "%MOMM*%", files[0].Content)
	assert.Equal(t, "gerbers/board-B_Cu.gbl", files[1].Name)
	assert.Equal(t, "%MOIN*%", files[1].Content)
}

func TestExpandCorruptArchive(t *testing.T) {
	_, err := Expand(context.Background(), []types.Upload{{Name: "job.zip", Data: []byte("not a zip at all")}})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeArchive), "expected archive error, got %v", err)
}

func TestExpandCancelled(t *testing.T) {
	data := buildZip(t, map[string]string{"a.gtl": "X0Y0D02*"}, []string{"a.gtl"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Expand(ctx, []types.Upload{{Name: "job.zip", Data: data}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpandPassThrough(t *testing.T) {
	uploads := []types.Upload{
		{Name: "board.gtl", Data: []byte("X0Y0D02*")},
		{Name: "bundle.zip", Data: []byte("only archives when alone")},
	}

	files, err := Expand(context.Background(), uploads)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "bundle.zip", files[1].Name)
	assert.Equal(t, "only archives when alone", files[1].Content)
}

func TestNewEnvelopeFromPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "inner"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.gbl"), []byte("B"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.gtl"), []byte("A"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inner", "c.g2"), []byte("C"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".DS_Store"), []byte("x"), 0644))

	env, err := NewEnvelopeFromPaths([]string{dir})
	require.NoError(t, err)

	var names []string
	for _, u := range env.Uploads {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"a.gtl", "b.gbl", "inner/c.g2"}, names)
	assert.Equal(t, SourceCLI, env.Source)
	assert.EqualValues(t, 3, env.TotalBytes())
	assert.Len(t, env.ContentHash, 64)

	again, err := NewEnvelopeFromPaths([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, env.ContentHash, again.ContentHash)
}

func TestNewEnvelopeFromPathsMissing(t *testing.T) {
	_, err := NewEnvelopeFromPaths([]string{filepath.Join(t.TempDir(), "nope.zip")})
	assert.Error(t, err)
}
