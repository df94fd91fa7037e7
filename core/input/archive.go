package input

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"

	"gerber-estimate/core/types"
	"gerber-estimate/internal/errors"
)

// Expand turns uploads into scannable text files. A lone upload named *.zip
// is opened as an archive and replaced by its file entries; anything else is
// passed through. A corrupt archive is an error, never an empty result.
func Expand(ctx context.Context, uploads []types.Upload) ([]types.InputFile, error) {
	if len(uploads) == 1 && uploads[0].IsArchive() {
		return expandArchive(ctx, uploads[0])
	}

	files := make([]types.InputFile, 0, len(uploads))
	for _, u := range uploads {
		files = append(files, types.InputFile{Name: u.Name, Content: string(u.Data)})
	}
	return files, nil
}

func expandArchive(ctx context.Context, archive types.Upload) ([]types.InputFile, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive.Data), int64(len(archive.Data)))
	if err != nil {
		return nil, errors.Archive(archive.Name, err)
	}

	files := make([]types.InputFile, 0, len(reader.File))
	for _, entry := range reader.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.FileInfo().IsDir() || skipEntry(entry.Name) {
			continue
		}

		content, err := readEntry(entry)
		if err != nil {
			return nil, errors.Archive(archive.Name, err).WithContext("entry", entry.Name)
		}
		files = append(files, types.InputFile{Name: entry.Name, Content: content})
	}
	return files, nil
}

func readEntry(entry *zip.File) (string, error) {
	rc, err := entry.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// skipEntry drops macOS resource forks, which carry layer-like names
// ("__MACOSX/._board-In1_Cu.g2") but no artwork
func skipEntry(name string) bool {
	if strings.HasPrefix(name, "__MACOSX/") {
		return true
	}
	return strings.HasPrefix(path.Base(name), "._")
}
