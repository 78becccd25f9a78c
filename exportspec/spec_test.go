package exportspec

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *Spec
		wantErr bool
	}{
		{
			name: "full spec",
			in: `fields: [id, name, age]
header_order: [name, id]
filename: users
content_type: text/csv
format: csv
`,
			want: &Spec{
				Fields:      []string{"id", "name", "age"},
				HeaderOrder: []string{"name", "id"},
				Filename:    "users",
				ContentType: "text/csv",
				Format:      "csv",
			},
		},
		{
			name: "minimal spec",
			in:   `fields: [a]`,
			want: &Spec{Fields: []string{"a"}},
		},
		{
			name:    "unsupported format",
			in:      `format: xlsx`,
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			in:      `fields: [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	content := "fields: [id, name]\nfilename: users\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write spec file: %v", err)
	}

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(spec.Fields, []string{"id", "name"}) {
		t.Errorf("Fields = %v, want [id name]", spec.Fields)
	}
	if spec.Filename != "users" {
		t.Errorf("Filename = %q, want users", spec.Filename)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}
