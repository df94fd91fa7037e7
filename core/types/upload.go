package types

import "strings"

// Upload is one payload handed to the analyzer: a single manufacturing file
// or a zip archive of them
type Upload struct {
	// Name is the original filename
	Name string `json:"name"`

	// Data is the raw payload
	Data []byte `json:"-"`
}

// IsArchive reports whether the upload is named like a zip archive
func (u Upload) IsArchive() bool {
	return strings.HasSuffix(strings.ToLower(u.Name), ".zip")
}

// InputFile is a named text file ready for scanning
type InputFile struct {
	Name    string `json:"name"`
	Content string `json:"-"`
}
