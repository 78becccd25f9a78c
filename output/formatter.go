package output

import (
	"io"

	"github.com/vegasq/csvwrangler/exporter"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to serialize an export to the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the export in the formatter's specific format
	Format(e exporter.Exporter) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
