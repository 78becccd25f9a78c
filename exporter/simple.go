package exporter

import (
	"fmt"
	"iter"
)

// SimpleExporter exports map-shaped records using a flat list of field
// names, used both as the lookup keys and as the header labels. Header
// bindings are derived from Fields on each export production rather than
// declared, so HeaderOrder applies to field names the same way it applies
// to declared labels.
//
// Repeated field names are not deduplicated; they produce repeated
// identical columns.
type SimpleExporter struct {
	Fields      []string
	Data        []map[string]any
	HeaderOrder []string
}

// NewSimpleExporter builds a SimpleExporter over the given field names and
// records.
func NewSimpleExporter(fields []string, data []map[string]any) *SimpleExporter {
	return &SimpleExporter{Fields: fields, Data: data}
}

// Rows yields the field-name row, then one row per record with each cell
// rendered by RenderCell.
func (e *SimpleExporter) Rows() iter.Seq2[[]string, error] {
	return e.record().Rows()
}

// ToList materializes the export.
func (e *SimpleExporter) ToList() ([][]string, error) {
	return e.record().ToList()
}

// record derives the backing RecordExporter for one export production.
func (e *SimpleExporter) record() *RecordExporter[map[string]any] {
	headers := make([]Header[map[string]any], len(e.Fields))
	for i, field := range e.Fields {
		headers[i] = Header[map[string]any]{
			Label: field,
			Callback: func(record map[string]any) (string, error) {
				return RenderCell(record[field]), nil
			},
		}
	}
	return &RecordExporter[map[string]any]{
		Headers:     headers,
		HeaderOrder: e.HeaderOrder,
		Fetch:       func() ([]map[string]any, error) { return e.Data, nil },
	}
}

// RenderCell converts a single cell value to its display string. Absent or
// nil values render as the empty string rather than a textual null;
// everything else uses its default textual representation.
func RenderCell(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
