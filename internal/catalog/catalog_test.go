package catalog_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"capbrowse/internal/catalog"
	"capbrowse/internal/loader"
	"capbrowse/internal/logging"
	"capbrowse/internal/testsupport"
)

func TestOpenScenario(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSamples(testsupport.ScenarioSamples))

	cat := catalog.Open(context.Background(), cfg, nil, logging.NewNop())
	if err := cat.Err(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", cat.Len())
	}
	first := cat.Records()[0]
	if first.AudioURL != "./audio/Y01.wav" {
		t.Fatalf("expected resolved audio url, got %q", first.AudioURL)
	}
	if cat.Records()[1].HasAudio() {
		t.Fatalf("second record should have no audio")
	}
	if cat.Source() != cfg.Data.Source {
		t.Fatalf("unexpected source %q", cat.Source())
	}
	if n, ok := cat.Find("Y02"); !ok || n.Text("asr") != "hello" {
		t.Fatalf("Find(Y02) = %v, %v", n, ok)
	}
}

func TestOpenKeepsError(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSource(filepath.Join(t.TempDir(), "missing.json")))

	cat := catalog.Open(context.Background(), cfg, nil, logging.NewNop())
	var loadErr *loader.LoadError
	if !errors.As(cat.Err(), &loadErr) {
		t.Fatalf("expected LoadError, got %v", cat.Err())
	}
	if cat.Len() != 0 {
		t.Fatalf("expected no records after failure")
	}
}

func TestNilCatalog(t *testing.T) {
	var cat *catalog.Catalog
	if cat.Len() != 0 || cat.Err() != nil || cat.Source() != "" {
		t.Fatalf("nil catalog should be empty")
	}
	if _, ok := cat.Find("x"); ok {
		t.Fatalf("nil catalog should not find records")
	}
}
