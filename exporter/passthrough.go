package exporter

import "iter"

// PassthroughExporter re-emits an already tabular input verbatim. The first
// inner slice is the header-label row, the rest are data rows. No
// extraction, reordering, or cell conversion happens, and rows of any width
// pass through unchanged: short or empty rows are legal input and are
// preserved as-is.
type PassthroughExporter struct {
	Data [][]string
}

// NewPassthroughExporter builds a PassthroughExporter over the given table.
func NewPassthroughExporter(data [][]string) *PassthroughExporter {
	return &PassthroughExporter{Data: data}
}

// Rows yields every input row unchanged, in input order.
func (e *PassthroughExporter) Rows() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for _, row := range e.Data {
			if !yield(row, nil) {
				return
			}
		}
	}
}

// ToList materializes the export.
func (e *PassthroughExporter) ToList() ([][]string, error) {
	return Materialize(e.Rows())
}
