package exporter

import (
	"fmt"
	"iter"
	"slices"
)

// RecordExporter projects records of any type onto rows of display strings
// using declared Header bindings. It is the generic exporter: concrete
// record shapes only need to supply the Headers and a Fetch function.
//
// All fields are supplied at construction and treated as immutable for the
// lifetime of the exporter; nothing is shared between instances.
type RecordExporter[T any] struct {
	// Headers declares the output columns in declaration order.
	Headers []Header[T]

	// HeaderOrder optionally lists labels in the desired left-to-right
	// placement. Listed labels come first, in list order; unlisted labels
	// follow, keeping their relative declaration order.
	HeaderOrder []string

	// Fetch returns the records to export. It may be called once per export
	// production and must return a consistent sequence within one
	// production; errors propagate to the caller unretried.
	Fetch func() ([]T, error)
}

// GetHeaders returns the declared header bindings in declaration order,
// before any reordering.
func (e *RecordExporter[T]) GetHeaders() []Header[T] {
	return e.Headers
}

// SortedHeaders returns the declared headers permuted by the HeaderOrder
// preference. With no preference configured it returns declaration order
// unchanged.
func (e *RecordExporter[T]) SortedHeaders() []Header[T] {
	return sortHeaders(e.Headers, e.HeaderOrder)
}

// HeaderLabels returns the labels of SortedHeaders, in the same order. This
// is the export's first row.
func (e *RecordExporter[T]) HeaderLabels() []string {
	return headerLabels(e.SortedHeaders())
}

// Rows yields the header-label row, then one row per fetched record, each
// cell extracted by the corresponding sorted header's callback. Extraction
// for a record is deferred until that record's row is pulled.
func (e *RecordExporter[T]) Rows() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		if e.Fetch == nil {
			yield(nil, ErrNoFetch)
			return
		}
		records, err := e.Fetch()
		if err != nil {
			yield(nil, fmt.Errorf("fetch records: %w", err))
			return
		}
		headers := e.SortedHeaders()
		if !yield(headerLabels(headers), nil) {
			return
		}
		for _, record := range records {
			row := make([]string, len(headers))
			for i, h := range headers {
				cell, err := h.Callback(record)
				if err != nil {
					yield(nil, fmt.Errorf("extract %q: %w", h.Label, err))
					return
				}
				row[i] = cell
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// ToList materializes the export.
func (e *RecordExporter[T]) ToList() ([][]string, error) {
	return Materialize(e.Rows())
}

// sortHeaders applies a header order preference with a stable sort: each
// header's key is the index of its label's first occurrence in order, or
// len(order) for unlisted labels, so all unlisted headers tie past the last
// preferred position and keep their relative declaration order.
func sortHeaders[T any](headers []Header[T], order []string) []Header[T] {
	if len(order) == 0 {
		return headers
	}
	rank := make(map[string]int, len(order))
	for i, label := range order {
		if _, ok := rank[label]; !ok {
			rank[label] = i
		}
	}
	key := func(h Header[T]) int {
		if i, ok := rank[h.Label]; ok {
			return i
		}
		return len(order)
	}
	sorted := slices.Clone(headers)
	slices.SortStableFunc(sorted, func(a, b Header[T]) int {
		return key(a) - key(b)
	})
	return sorted
}

func headerLabels[T any](headers []Header[T]) []string {
	labels := make([]string, len(headers))
	for i, h := range headers {
		labels[i] = h.Label
	}
	return labels
}
