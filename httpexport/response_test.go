package httpexport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vegasq/csvwrangler/exporter"
)

func testExporter() exporter.Exporter {
	return exporter.NewSimpleExporter([]string{"id", "name"}, []map[string]any{
		{"id": 1, "name": "alice"},
		{"id": 2, "name": "bob"},
	})
}

func failingExporter() exporter.Exporter {
	return &exporter.RecordExporter[string]{
		Headers: []exporter.Header[string]{
			{Label: "v", Callback: func(s string) (string, error) { return s, nil }},
		},
		Fetch: func() ([]string, error) {
			return nil, errors.New("backing store unavailable")
		},
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name            string
		opts            Options
		wantType        string
		wantDisposition string
	}{
		{
			name:            "defaults",
			opts:            Options{},
			wantType:        "text/csv",
			wantDisposition: `attachment; filename="export.csv"`,
		},
		{
			name:            "custom filename and content type",
			opts:            Options{Filename: "users", ContentType: "text/csv; charset=utf-8"},
			wantType:        "text/csv; charset=utf-8",
			wantDisposition: `attachment; filename="users.csv"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := Write(rec, testExporter(), tt.opts); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			if got := rec.Header().Get("Content-Type"); got != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", got, tt.wantType)
			}
			if got := rec.Header().Get("Content-Disposition"); got != tt.wantDisposition {
				t.Errorf("Content-Disposition = %q, want %q", got, tt.wantDisposition)
			}

			want := "id,name\n1,alice\n2,bob\n"
			if got := rec.Body.String(); got != want {
				t.Errorf("body = %q, want %q", got, want)
			}
		})
	}
}

func TestWrite_ExportErrorLeavesHeadersUnset(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Write(rec, failingExporter(), Options{})
	if err == nil {
		t.Fatal("Write() error = nil, want export failure")
	}
	if got := rec.Header().Get("Content-Disposition"); got != "" {
		t.Errorf("Content-Disposition set despite failure: %q", got)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body written despite failure: %q", rec.Body.String())
	}
}

func TestStream(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := Stream(rec, testExporter(), Options{Filename: "users"}); err != nil {
		t.Fatalf("Stream() error = %v", err)
	}

	want := "id,name\n1,alice\n2,bob\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="users.csv"` {
		t.Errorf("Content-Disposition = %q", got)
	}
}

func TestStream_TruncatesOnMidStreamError(t *testing.T) {
	extractErr := errors.New("malformed record")
	exp := &exporter.RecordExporter[int]{
		Headers: []exporter.Header[int]{
			{Label: "n", Callback: func(n int) (string, error) {
				if n == 2 {
					return "", extractErr
				}
				return "ok", nil
			}},
		},
		Fetch: func() ([]int, error) { return []int{1, 2, 3}, nil },
	}

	rec := httptest.NewRecorder()
	err := Stream(rec, exp, Options{})
	if !errors.Is(err, extractErr) {
		t.Fatalf("Stream() error = %v, want wrapped %v", err, extractErr)
	}

	// Rows yielded before the failure are already on the wire.
	want := "n\nok\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestHandler(t *testing.T) {
	srv := httptest.NewServer(Handler(testExporter(), Options{Filename: "users"}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="users.csv"` {
		t.Errorf("Content-Disposition = %q", got)
	}
}

func TestHandler_ExportError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export", nil)

	Handler(failingExporter(), Options{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestStreamHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export", nil)

	StreamHandler(testExporter(), Options{}).ServeHTTP(rec, req)

	want := "id,name\n1,alice\n2,bob\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}
