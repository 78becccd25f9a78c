package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/csvwrangler/exporter"
)

// JSONFormatter writes an export as JSON Lines: one object per data row,
// keyed by the labels from the export's header row.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per data row. The first row of the export
// supplies the keys; cells beyond the header's width are dropped, and
// missing cells are simply absent from the object.
func (j *JSONFormatter) Format(e exporter.Exporter) error {
	encoder := json.NewEncoder(j.writer)

	var labels []string
	first := true
	for row, err := range e.Rows() {
		if err != nil {
			return err
		}
		if first {
			labels = row
			first = false
			continue
		}
		obj := make(map[string]string, len(labels))
		for i, label := range labels {
			if i < len(row) {
				obj[label] = row[i]
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}

	return nil
}
