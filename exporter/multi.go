package exporter

import "iter"

// MultiExporter concatenates the exports of an ordered list of exporters of
// any kind, emitting exactly one empty row between consecutive sub-exports.
// Separators are placed by list position, never before the first or after
// the last sub-export, so an empty list yields an empty export and a single
// sub-exporter yields its rows with no separators at all.
type MultiExporter struct {
	Exporters []Exporter
}

// NewMultiExporter builds a MultiExporter over the given exporters, in
// order.
func NewMultiExporter(exporters ...Exporter) *MultiExporter {
	return &MultiExporter{Exporters: exporters}
}

// Rows yields each sub-export's full row sequence in list order, with a
// single blank separator row at each junction. A sub-export failure is
// yielded in place and ends the whole composite sequence.
func (e *MultiExporter) Rows() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for i, sub := range e.Exporters {
			if i > 0 && !yield([]string{}, nil) {
				return
			}
			for row, err := range sub.Rows() {
				if !yield(row, err) {
					return
				}
				if err != nil {
					return
				}
			}
		}
	}
}

// ToList materializes the export.
func (e *MultiExporter) ToList() ([][]string, error) {
	return Materialize(e.Rows())
}
