// Package input - Normalized input envelope
// Every entry point (CLI paths, HTTP multipart) produces an Envelope; the
// analyzer consumes only this.
package input

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gerber-estimate/core/types"
)

// SourceType indicates the source of input
type SourceType int

const (
	SourceCLI SourceType = iota // Local CLI invocation
	SourceAPI                   // HTTP upload
)

// String returns the source type name
func (t SourceType) String() string {
	switch t {
	case SourceCLI:
		return "cli"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Envelope is the normalized input to the analyzer
type Envelope struct {
	Source  SourceType
	Uploads []types.Upload

	// ContentHash identifies the upload set: names and bytes, in order
	ContentHash string

	CreatedAt time.Time
}

// NewEnvelope wraps uploads from a source
func NewEnvelope(source SourceType, uploads []types.Upload) *Envelope {
	return &Envelope{
		Source:      source,
		Uploads:     uploads,
		ContentHash: hashUploads(uploads),
		CreatedAt:   time.Now().UTC(),
	}
}

// TotalBytes returns the summed payload size
func (env *Envelope) TotalBytes() int64 {
	var n int64
	for _, u := range env.Uploads {
		n += int64(len(u.Data))
	}
	return n
}

// NewEnvelopeFromPaths reads CLI paths. Files are taken as-is (a single .zip
// path stays an archive); directories are walked.
func NewEnvelopeFromPaths(paths []string) (*Envelope, error) {
	var uploads []types.Upload
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", p, err)
		}

		if !info.IsDir() {
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, err
			}
			uploads = append(uploads, types.Upload{Name: filepath.Base(p), Data: data})
			continue
		}

		dirUploads, err := ReadDirectory(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", p, err)
		}
		uploads = append(uploads, dirUploads...)
	}

	return NewEnvelope(SourceCLI, uploads), nil
}

// ReadDirectory returns every regular file under root, sorted by relative
// path. Hidden files and directories are skipped.
func ReadDirectory(root string) ([]types.Upload, error) {
	var uploads []types.Upload

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && len(name) > 0 && name[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if len(name) > 0 && name[0] == '.' {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		uploads = append(uploads, types.Upload{
			Name: filepath.ToSlash(relPath),
			Data: content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].Name < uploads[j].Name
	})
	return uploads, nil
}

func hashUploads(uploads []types.Upload) string {
	h := sha256.New()
	for _, u := range uploads {
		h.Write([]byte(u.Name))
		h.Write([]byte{0})
		sum := sha256.Sum256(u.Data)
		h.Write(sum[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
