// Package output provides formatters that serialize an export into a
// tabular text format.
//
// This package defines the Formatter interface and provides implementations
// for common output formats. All formatters consume rows through the
// exporter package's common contract: a header-label row followed by rows
// of display strings.
//
// # Supported Formats
//
//   - CSV: Comma-separated values with header row (streams row by row)
//   - JSON Lines: One JSON object per line, keyed by the header labels
//   - Table: Pretty-printed text table
//
// # Basic Usage
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(exp); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	file, err := os.Create("output.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(exp); err != nil {
//	    log.Fatal(err)
//	}
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(e exporter.Exporter) error
//	    SetOutput(w io.Writer)
//	}
package output
