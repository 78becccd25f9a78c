// Package httpexport delivers exports as downloadable CSV over HTTP.
//
// Two delivery modes are supported. Write materializes the whole export
// before touching the response, so failures can still become error
// responses. Stream pulls from the export's lazy form and flushes each row
// as it is produced, which keeps memory flat for large exports at the cost
// of a possibly truncated body if the export fails mid-stream.
package httpexport

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vegasq/csvwrangler/exporter"
)

// Defaults applied when Options fields are left empty.
const (
	DefaultFilename    = "export"
	DefaultContentType = "text/csv"
)

// Options is passthrough delivery configuration: a display filename hint
// (without the .csv extension) and a content-type label. Both are forwarded
// to the client unmodified.
type Options struct {
	Filename    string
	ContentType string
}

func (o Options) filename() string {
	if o.Filename == "" {
		return DefaultFilename
	}
	return o.Filename
}

func (o Options) contentType() string {
	if o.ContentType == "" {
		return DefaultContentType
	}
	return o.ContentType
}

func setDownloadHeaders(w http.ResponseWriter, opts Options) {
	w.Header().Set("Content-Type", opts.contentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", opts.filename()+".csv"))
}

// Write delivers the export fully buffered: the export is materialized
// first, then written as CSV in one pass. No response headers are set if
// the export fails, leaving the caller free to send an error response.
func Write(w http.ResponseWriter, e exporter.Exporter, opts Options) error {
	rows, err := e.ToList()
	if err != nil {
		return err
	}

	setDownloadHeaders(w, opts)
	csvWriter := csv.NewWriter(w)
	for _, row := range rows {
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// Stream delivers the export incrementally: each row is written and
// flushed as the lazy form produces it. An export failure mid-stream
// leaves the client with a truncated body; the error is returned so the
// caller can log it, but it cannot be turned into an error response once
// rows have been sent.
func Stream(w http.ResponseWriter, e exporter.Exporter, opts Options) error {
	setDownloadHeaders(w, opts)

	flusher, _ := w.(http.Flusher)
	csvWriter := csv.NewWriter(w)
	for row, err := range e.Rows() {
		if err != nil {
			return err
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	return nil
}

// Handler serves the export as a buffered CSV download. Export failures
// become a 500 response.
func Handler(e exporter.Exporter, opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := Write(w, e, opts); err != nil {
			slog.Error("export failed", "filename", opts.filename(), "error", err)
			http.Error(w, "export failed", http.StatusInternalServerError)
		}
	})
}

// StreamHandler serves the export as a streamed CSV download. Failures
// after the first row can only truncate the body, so they are logged rather
// than reported to the client.
func StreamHandler(e exporter.Exporter, opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := Stream(w, e, opts); err != nil {
			slog.Error("streamed export failed", "filename", opts.filename(), "error", err)
		}
	})
}
