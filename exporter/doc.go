// Package exporter converts in-memory record collections into normalized
// tabular output: rows of display strings headed by a row of column labels.
//
// Every exporter kind satisfies the same two-method Exporter contract. ToList
// materializes the full export as a slice of rows; Rows produces the same
// rows lazily, one at a time, computing each record's row only when it is
// pulled. Both forms always yield identical content for the same exporter
// state.
//
// # Exporter Kinds
//
//   - RecordExporter: the generic exporter. Declares Header bindings (a
//     column label plus an extraction callback) and a Fetch function that
//     supplies the records.
//   - SimpleExporter: exports map-shaped records using a flat list of field
//     names as both the lookup keys and the column labels. Missing values
//     render as empty strings.
//   - PassthroughExporter: re-emits an already tabular [][]string input
//     verbatim.
//   - MultiExporter: concatenates the exports of several exporters, with a
//     single blank row between consecutive sub-exports.
//
// # Basic Usage
//
// Declare headers and a fetch function:
//
//	exp := &exporter.RecordExporter[User]{
//	    Headers: []exporter.Header[User]{
//	        {Label: "name", Callback: func(u User) (string, error) { return u.Name, nil }},
//	        {Label: "age", Callback: func(u User) (string, error) { return strconv.Itoa(u.Age), nil }},
//	    },
//	    Fetch: func() ([]User, error) { return loadUsers() },
//	}
//
//	rows, err := exp.ToList()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or stream row by row without materializing the whole export:
//
//	for row, err := range exp.Rows() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    writer.Write(row)
//	}
//
// # Column Ordering
//
// Exporters with declared headers accept an optional HeaderOrder: labels it
// lists are placed first, in the order listed; labels absent from the
// preference keep their relative declaration order after them. The
// preference only permutes columns, it never drops, duplicates, or renames
// one.
//
// # Error Handling
//
// Failures from Fetch or from a header callback are not caught: they surface
// to the caller and abort the remainder of the export. Rows already yielded
// by a lazy production are not retracted, so a streaming consumer observes a
// truncated sequence followed by the error. The package performs no retries.
package exporter
