package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/vegasq/csvwrangler/exporter"
)

func TestJSONFormatter_Format(t *testing.T) {
	exp := exporter.NewSimpleExporter([]string{"id", "name"}, []map[string]any{
		{"id": 1, "name": "alice"},
		{"id": 2},
	})

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(exp); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Format() produced %d lines, want 2", len(lines))
	}

	want := []map[string]string{
		{"id": "1", "name": "alice"},
		{"id": "2", "name": ""},
	}
	for i, line := range lines {
		var got map[string]string
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if !reflect.DeepEqual(got, want[i]) {
			t.Errorf("line %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestJSONFormatter_HeaderOnlyExport(t *testing.T) {
	exp := exporter.NewPassthroughExporter([][]string{{"a", "b"}})

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(exp); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() = %q, want no output for a header-only export", buf.String())
	}
}

func TestJSONFormatter_ShortRows(t *testing.T) {
	exp := exporter.NewPassthroughExporter([][]string{
		{"a", "b"},
		{"1"},
	})

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(exp); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := map[string]string{"a": "1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Format() = %v, want %v", got, want)
	}
}
