package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"capbrowse/internal/loader"
	"capbrowse/internal/record"
)

const samples = `[{"id":"a1","audio_path":"/data/x/Y01.wav","final_caption":"a cat meows"},{"id":"b2"}]`

func TestLoadRemoteAddsCacheBuster(t *testing.T) {
	var gotQuery, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samples))
	}))
	defer srv.Close()

	fixed := time.UnixMilli(1700000000123)
	records, err := loader.Load(context.Background(), srv.URL+"/data/samples.json?v=2", loader.Options{
		Client:    srv.Client(),
		CacheBust: true,
		Now:       func() time.Time { return fixed },
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(records) != 2 || records[0].Text(record.KeyID) != "a1" {
		t.Fatalf("unexpected records: %d", len(records))
	}
	if !strings.Contains(gotQuery, "t=1700000000123") || !strings.Contains(gotQuery, "v=2") {
		t.Fatalf("expected cache buster alongside existing params, got %q", gotQuery)
	}
	if gotAccept != "application/json" {
		t.Fatalf("unexpected Accept header: %q", gotAccept)
	}
}

func TestLoadRemoteWithoutCacheBuster(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	records, err := loader.Load(context.Background(), srv.URL, loader.Options{Client: srv.Client()})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(records) != 0 || gotQuery != "" {
		t.Fatalf("unexpected result: %d records, query %q", len(records), gotQuery)
	}
}

func TestLoadRemoteStatusError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := loader.Load(context.Background(), srv.URL+"/samples.json", loader.Options{Client: srv.Client(), CacheBust: true})
	var loadErr *loader.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %T %v", err, err)
	}
	if loadErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", loadErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "/samples.json?t=") {
		t.Fatalf("expected status and requested URL in message, got %q", err.Error())
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestLoadRemoteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := loader.Load(context.Background(), url, loader.Options{Timeout: time.Second})
	var loadErr *loader.LoadError
	if !errors.As(err, &loadErr) || loadErr.StatusCode != 0 || loadErr.Err == nil {
		t.Fatalf("expected transport LoadError, got %v", err)
	}
}

func TestLoadLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.json")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBF"+samples), 0o644); err != nil {
		t.Fatalf("write samples: %v", err)
	}
	for _, source := range []string{path, "file://" + path} {
		records, err := loader.Load(context.Background(), source, loader.Options{})
		if err != nil {
			t.Fatalf("Load(%s) returned error: %v", source, err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"), loader.Options{})
	var loadErr *loader.LoadError
	if !errors.As(err, &loadErr) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist LoadError, got %v", err)
	}
}

func TestDecodeErrorsAreDistinct(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		parse  bool
		schema bool
		found  string
	}{
		{"empty", "", true, false, ""},
		{"truncated", `[{"id":"a"`, true, false, ""},
		{"trailing garbage", `[] x`, true, false, ""},
		{"object", `{"id":"a"}`, false, true, "object"},
		{"string", `"samples"`, false, true, "string"},
		{"null", `null`, false, true, "null"},
		{"scalar element", `[{"id":"a"}, 3]`, false, true, "number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Decode([]byte(tt.doc))
			var parseErr *loader.ParseError
			var schemaErr *loader.SchemaError
			if got := errors.As(err, &parseErr); got != tt.parse {
				t.Fatalf("ParseError match = %v, want %v (err %v)", got, tt.parse, err)
			}
			if got := errors.As(err, &schemaErr); got != tt.schema {
				t.Fatalf("SchemaError match = %v, want %v (err %v)", got, tt.schema, err)
			}
			if tt.schema && schemaErr.Found != tt.found {
				t.Fatalf("unexpected found kind %q", schemaErr.Found)
			}
		})
	}
}

func TestDecodeSchemaErrorMessages(t *testing.T) {
	_, err := loader.Decode([]byte(`{"a":1}`))
	if err == nil || !strings.Contains(err.Error(), "top level must be an array") {
		t.Fatalf("unexpected message: %v", err)
	}
	_, err = loader.Decode([]byte(`[{"a":1},[]]`))
	if err == nil || !strings.Contains(err.Error(), "element 1 must be an object") {
		t.Fatalf("unexpected message: %v", err)
	}
}
