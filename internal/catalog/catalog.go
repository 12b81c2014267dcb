package catalog

import (
	"context"
	"log/slog"
	"time"

	"capbrowse/internal/config"
	"capbrowse/internal/loader"
	"capbrowse/internal/record"
)

// Catalog is an immutable snapshot of the sample collection.
type Catalog struct {
	source   string
	records  []*record.Normalized
	err      error
	loadedAt time.Time
}

// New wraps already-normalized records.
func New(source string, records []*record.Normalized, err error) *Catalog {
	if err != nil {
		records = nil
	}
	return &Catalog{source: source, records: records, err: err, loadedAt: time.Now()}
}

// Open loads and normalizes the configured source. The returned catalog is
// never nil; check Err for load failures.
func Open(ctx context.Context, cfg *config.Config, client loader.HTTPDoer, logger *slog.Logger) *Catalog {
	opts := loader.Options{
		Client:    client,
		CacheBust: cfg.Data.CacheBust,
		Timeout:   cfg.LoadTimeout(),
		Logger:    logger,
	}
	raw, err := loader.Load(ctx, cfg.Data.Source, opts)
	if err != nil {
		return New(cfg.Data.Source, nil, err)
	}
	normalized := record.Normalize(raw, record.AudioConfig{Base: cfg.Data.AudioBase})
	return New(cfg.Data.Source, normalized, nil)
}

// Records returns the full collection in source order. Callers must not
// modify the returned slice.
func (c *Catalog) Records() []*record.Normalized {
	if c == nil {
		return nil
	}
	return c.records
}

// Err returns the load failure, if any.
func (c *Catalog) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}

// Source returns the location the catalog was loaded from.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// LoadedAt reports when the catalog was built.
func (c *Catalog) LoadedAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.loadedAt
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.Records())
}

// Find returns the first record whose id equals id.
func (c *Catalog) Find(id string) (*record.Normalized, bool) {
	return record.FindByID(c.Records(), id)
}
