// Package exportspec loads YAML descriptions of export jobs: the field
// list, header order preference, delivery hints, and output format for one
// export, kept outside the code that runs it.
package exportspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats a spec may request.
const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
	FormatTable = "table"
)

// Spec describes one export job.
type Spec struct {
	// Fields lists the columns to export, in declaration order. Empty means
	// derive the fields from the record source.
	Fields []string `yaml:"fields"`

	// HeaderOrder optionally permutes the exported columns: listed fields
	// come first, in list order, the rest keep their declaration order.
	HeaderOrder []string `yaml:"header_order"`

	// Filename is the download filename hint, without extension.
	Filename string `yaml:"filename"`

	// ContentType is the delivery content-type label.
	ContentType string `yaml:"content_type"`

	// Format selects the output format: csv, jsonl, or table. Empty means
	// csv.
	Format string `yaml:"format"`
}

// Load reads and validates a spec from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export spec: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a spec from YAML bytes.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse export spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec for values no component can act on.
func (s *Spec) Validate() error {
	switch s.Format {
	case "", FormatCSV, FormatJSONL, FormatTable:
	default:
		return fmt.Errorf("unsupported format %q (supported: %s, %s, %s)",
			s.Format, FormatCSV, FormatJSONL, FormatTable)
	}
	return nil
}
