package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/vegasq/csvwrangler/exporter"
	"github.com/vegasq/csvwrangler/exportspec"
	"github.com/vegasq/csvwrangler/httpexport"
	"github.com/vegasq/csvwrangler/output"
	"github.com/vegasq/csvwrangler/reader"
)

var (
	formatFlag = flag.String("f", "csv", "Output format: csv, jsonl, table")
	fieldsFlag = flag.String("fields", "", "Comma-separated fields to export (default: all columns in schema order)")
	orderFlag  = flag.String("order", "", "Comma-separated header order preference")
	specFlag   = flag.String("spec", "", "YAML export spec file (flags override its values)")
	limitFlag  = flag.Int("limit", 0, "Limit number of rows per file (0 = unlimited)")
	serveFlag  = flag.String("serve", "", "Serve the export over HTTP at this address instead of writing to stdout")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.parquet> [more.parquet ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to export Parquet files as CSV, JSON Lines, or tables.\n")
		fmt.Fprintf(os.Stderr, "Multiple files are concatenated with a blank separator row between them.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f table data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -fields id,name -order name,id data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -spec export.yaml data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -serve :8080 data.parquet more.parquet\n", os.Args[0])
	}

	flag.Parse()

	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing parquet file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}

	spec := &exportspec.Spec{}
	if *specFlag != "" {
		var err error
		spec, err = exportspec.Load(*specFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fields := spec.Fields
	if *fieldsFlag != "" {
		fields = splitList(*fieldsFlag)
	}
	order := spec.HeaderOrder
	if *orderFlag != "" {
		order = splitList(*orderFlag)
	}
	format := *formatFlag
	if spec.Format != "" && !flagWasSet("f") {
		format = spec.Format
	}

	exporters := make([]exporter.Exporter, 0, flag.NArg())
	for _, filename := range flag.Args() {
		exp, err := buildExporter(filename, fields, order, *limitFlag)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", filename)
				fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
		exporters = append(exporters, exp)
	}

	var exp exporter.Exporter
	if len(exporters) == 1 {
		exp = exporters[0]
	} else {
		exp = exporter.NewMultiExporter(exporters...)
	}

	if *serveFlag != "" {
		opts := httpexport.Options{
			Filename:    spec.Filename,
			ContentType: spec.ContentType,
		}
		if err := serve(*serveFlag, exp, opts); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	var formatter output.Formatter
	switch format {
	case "csv":
		formatter = output.NewCSVFormatter(os.Stdout)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(os.Stdout)
	case "table":
		formatter = output.NewTableFormatter(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", format)
		fmt.Fprintf(os.Stderr, "Supported formats: csv, jsonl, table\n")
		os.Exit(1)
	}

	if err := formatter.Format(exp); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// buildExporter wires one parquet file into a field-keyed exporter. With no
// explicit field list the file's own columns are exported in schema order.
func buildExporter(filename string, fields, order []string, limit int) (exporter.Exporter, error) {
	r, err := reader.NewReader(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	if len(fields) == 0 {
		fields = r.Fields()
	}

	return &exporter.SimpleExporter{
		Fields:      fields,
		Data:        rows,
		HeaderOrder: order,
	}, nil
}

func serve(addr string, exp exporter.Exporter, opts httpexport.Options) error {
	mux := http.NewServeMux()
	mux.Handle("/export", httpexport.Handler(exp, opts))
	mux.Handle("/export/stream", httpexport.StreamHandler(exp, opts))

	slog.Info("serving export", "addr", addr)
	return http.ListenAndServe(addr, mux)
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
