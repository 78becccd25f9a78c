package exporter

import (
	"errors"
	"iter"
)

// ErrNoFetch is returned when a RecordExporter is asked to produce rows
// without a Fetch function configured.
var ErrNoFetch = errors.New("exporter: no fetch function configured")

// Exporter is the contract shared by every exporter kind: a producer of a
// finite row sequence whose first row carries the column labels.
//
// The two forms must agree: ToList returns exactly the rows that draining
// Rows would yield. Both may be invoked repeatedly on the same instance and
// must produce the same result each time; producing an export re-runs the
// underlying record fetch and mutates no exporter state.
type Exporter interface {
	// ToList materializes the full export: the header-label row followed by
	// one row of display strings per record.
	ToList() ([][]string, error)

	// Rows produces the same export lazily. The sequence is forward-only and
	// consumable once; restart by calling Rows again. A failure is yielded
	// as a final (nil, err) element after any rows already produced.
	Rows() iter.Seq2[[]string, error]
}

// Materialize drains a lazy row sequence into a slice, stopping at the first
// error. It is the single definition of the materialized/lazy equivalence:
// every exporter's ToList is Materialize applied to its Rows.
func Materialize(rows iter.Seq2[[]string, error]) ([][]string, error) {
	out := [][]string{}
	for row, err := range rows {
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
