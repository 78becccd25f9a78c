package reader

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/segmentio/parquet-go"
)

// Reader reads parquet files and returns rows as maps.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup. Each read method opens a fresh row cursor over
// the parquet file, so reads are repeatable and side-effect-free on the
// Reader itself.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Fields returns the column names in schema declaration order. The result
// is suitable as a SimpleExporter field list covering every column in the
// file.
func (r *Reader) Fields() []string {
	fields := r.pqFile.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name()
	}
	return names
}

// ReadAll reads all rows from the parquet file into memory.
//
// Each row is returned as a map where keys are column names and values are
// the column values. The entire file is loaded into memory, so this method
// may not be suitable for very large files; use Rows to stream instead.
func (r *Reader) ReadAll() ([]map[string]any, error) {
	rows := make([]map[string]any, 0)
	for row, err := range r.Rows() {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Rows reads the parquet file one row at a time. The sequence is
// forward-only and ends normally at EOF; calling Rows again starts a fresh
// read from the beginning of the file.
func (r *Reader) Rows() iter.Seq2[map[string]any, error] {
	return func(yield func(map[string]any, error) bool) {
		pqReader := parquet.NewReader(r.pqFile)
		defer pqReader.Close()

		for {
			row := make(map[string]any)
			err := pqReader.Read(&row)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				yield(nil, fmt.Errorf("failed to read row: %w", err))
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// Records returns a fetch function over the whole file, in the shape a
// RecordExporter or SimpleExporter wiring expects.
func (r *Reader) Records() func() ([]map[string]any, error) {
	return r.ReadAll
}

// Schema returns the parquet file schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the parquet reader and releases associated resources.
//
// Should be called when done reading to avoid resource leaks. It is safe
// to call Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
