package testsupport

import (
	"path/filepath"
	"testing"

	"capbrowse/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory. The data
// source points at samples.json inside it; nothing is written until a
// caller asks for it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Data.Source = filepath.Join(base, "samples.json")
	cfgVal.Data.AudioBase = "./audio/"
	cfgVal.Server.Bind = "127.0.0.1:0"
	cfgVal.Browse.DebounceMillis = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSamples writes doc to the configured source path.
func WithSamples(doc string) ConfigOption {
	return func(b *configBuilder) {
		WriteSamples(b.t, b.cfg.Data.Source, doc)
	}
}

// WithSource overrides the data source.
func WithSource(source string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Data.Source = source
	}
}

// WithAudioBase overrides the audio base.
func WithAudioBase(base string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Data.AudioBase = base
	}
}

// WithAudioDir creates an audio directory under the temp root and serves it.
func WithAudioDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.AudioDir = filepath.Join(b.baseDir, "audio")
	}
}

// WithPageSize sets the default page size.
func WithPageSize(size int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Browse.PageSize = size
	}
}
