package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/csvwrangler/exporter"
)

// CSVFormatter writes an export as CSV. Rows are pulled from the export's
// lazy form one at a time, so large exports are never held fully in memory.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the export as CSV, the header-label row first. Zero-cell
// separator rows from composite exports come out as blank lines. An export
// failure stops formatting mid-stream; rows already written stay written.
func (c *CSVFormatter) Format(e exporter.Exporter) error {
	csvWriter := csv.NewWriter(c.writer)

	for row, err := range e.Rows() {
		if err != nil {
			return err
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
