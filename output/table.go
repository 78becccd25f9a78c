package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvwrangler/exporter"
)

// TableFormatter writes an export as a pretty-printed text table, suitable
// for terminal inspection rather than machine consumption.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the export as a table with the header-label row as the
// table header. The table is rendered only after the export completes, so a
// failed export produces no output at all.
func (t *TableFormatter) Format(e exporter.Exporter) error {
	table := tablewriter.NewWriter(t.writer)

	first := true
	for row, err := range e.Rows() {
		if err != nil {
			return err
		}
		if first {
			table.SetHeader(row)
			first = false
			continue
		}
		table.Append(row)
	}

	table.Render()
	return nil
}
