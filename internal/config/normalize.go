package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeData(); err != nil {
		return err
	}
	c.normalizeBrowse()
	if err := c.normalizeServer(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeData() error {
	if value, ok := os.LookupEnv("CAPBROWSE_SOURCE"); ok && strings.TrimSpace(value) != "" {
		c.Data.Source = value
	}
	if value, ok := os.LookupEnv("CAPBROWSE_AUDIO_BASE"); ok && strings.TrimSpace(value) != "" {
		c.Data.AudioBase = value
	}
	c.Data.Source = strings.TrimSpace(c.Data.Source)
	if c.Data.Source == "" {
		c.Data.Source = defaultSource
	}
	if !isRemote(c.Data.Source) && strings.HasPrefix(c.Data.Source, "~") {
		expanded, err := expandPath(c.Data.Source)
		if err != nil {
			return fmt.Errorf("data.source: %w", err)
		}
		c.Data.Source = expanded
	}
	c.Data.AudioBase = normalizeAudioBase(c.Data.AudioBase)
	if c.Data.TimeoutSeconds == 0 {
		c.Data.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}

// normalizeAudioBase collapses any trailing separator run to a single slash.
// An empty base stays empty so bare file names are used as-is.
func normalizeAudioBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, `/\`) + "/"
}

func (c *Config) normalizeBrowse() {
	if c.Browse.PageSize == 0 {
		c.Browse.PageSize = defaultPageSize
	}
	if len(c.Browse.PageSizes) == 0 {
		c.Browse.PageSizes = append([]int(nil), defaultPageSizes...)
	}
	if !slices.Contains(c.Browse.PageSizes, c.Browse.PageSize) {
		c.Browse.PageSizes = append(c.Browse.PageSizes, c.Browse.PageSize)
	}
	slices.Sort(c.Browse.PageSizes)
	c.Browse.PageSizes = slices.Compact(c.Browse.PageSizes)

	fields := make([]string, 0, len(c.Browse.Fields))
	for _, f := range c.Browse.Fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "raw" {
			f = "json"
		}
		if f == "" || slices.Contains(fields, f) {
			continue
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		fields = append(fields, defaultFields...)
	}
	c.Browse.Fields = fields

	c.Browse.DefaultField = strings.ToLower(strings.TrimSpace(c.Browse.DefaultField))
	if c.Browse.DefaultField == "" {
		c.Browse.DefaultField = defaultField
	}
}

func (c *Config) normalizeServer() error {
	if value, ok := os.LookupEnv("CAPBROWSE_BIND"); ok && strings.TrimSpace(value) != "" {
		c.Server.Bind = value
	}
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultBind
	}
	if strings.TrimSpace(c.Server.AudioDir) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Server.AudioDir))
		if err != nil {
			return fmt.Errorf("server.audio_dir: %w", err)
		}
		c.Server.AudioDir = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

// Overrides carries command-line values that take precedence over both the
// config file and the environment. Empty fields are ignored.
type Overrides struct {
	Source    string
	AudioBase string
	Bind      string
}

// ApplyOverrides copies non-empty overrides into c, normalizes them the same
// way Load does and re-validates.
func (c *Config) ApplyOverrides(o Overrides) error {
	if source := strings.TrimSpace(o.Source); source != "" {
		if !isRemote(source) && strings.HasPrefix(source, "~") {
			expanded, err := expandPath(source)
			if err != nil {
				return fmt.Errorf("data.source: %w", err)
			}
			source = expanded
		}
		c.Data.Source = source
	}
	if strings.TrimSpace(o.AudioBase) != "" {
		c.Data.AudioBase = normalizeAudioBase(o.AudioBase)
	}
	if bind := strings.TrimSpace(o.Bind); bind != "" {
		c.Server.Bind = bind
	}
	return c.Validate()
}
