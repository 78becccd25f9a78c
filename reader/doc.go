// Package reader provides a parquet-backed record source for exporters.
//
// It uses the segmentio/parquet-go library to read parquet files and
// returns rows as maps, the record shape the exporter package's
// SimpleExporter consumes. Column names are available in schema order so an
// export's field list can be derived straight from the file.
//
// Example:
//
//	r, err := reader.NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	rows, err := r.ReadAll()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	exp := exporter.NewSimpleExporter(r.Fields(), rows)
package reader
