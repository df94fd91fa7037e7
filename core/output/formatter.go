// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"gerber-estimate/core/types"
	"gerber-estimate/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report. Without detail only the plain analysis
	// result is written.
	Render(w io.Writer, report *types.Report, detail bool) error
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&TableFormatter{})
	r.Register(&JSONFormatter{Indent: "  "})
	r.Register(&YAMLFormatter{})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[Format(name)]
	if !ok {
		return nil, errors.NotSupported("output format " + name)
	}
	return f, nil
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// JSONFormatter renders JSON
type JSONFormatter struct {
	Indent string
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes JSON
func (f *JSONFormatter) Render(w io.Writer, report *types.Report, detail bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	if detail {
		return enc.Encode(report)
	}
	return enc.Encode(report.Result())
}

// YAMLFormatter renders YAML
type YAMLFormatter struct{}

// Format returns FormatYAML
func (f *YAMLFormatter) Format() Format { return FormatYAML }

// Render writes YAML
func (f *YAMLFormatter) Render(w io.Writer, report *types.Report, detail bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	if detail {
		return enc.Encode(report)
	}
	return enc.Encode(report.Result())
}
