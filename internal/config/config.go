package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Data describes where samples come from and how audio references resolve.
type Data struct {
	// Source is a local path or an http(s) URL of the JSON array.
	Source string `toml:"source"`
	// AudioBase is prefixed to audio_path basenames: a relative directory
	// such as "./audio/" or an absolute base URL.
	AudioBase      string `toml:"audio_base"`
	CacheBust      bool   `toml:"cache_bust"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Browse contains the defaults for query state and controls.
type Browse struct {
	PageSize       int      `toml:"page_size"`
	PageSizes      []int    `toml:"page_sizes"`
	Fields         []string `toml:"fields"`
	DefaultField   string   `toml:"default_field"`
	DebounceMillis int      `toml:"debounce_ms"`
	AutoExpandJSON bool     `toml:"auto_expand_json"`
}

// Server contains configuration for the local page server.
type Server struct {
	Bind string `toml:"bind"`
	// AudioDir is served under /audio/ when set.
	AudioDir string `toml:"audio_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for capbrowse.
//
// Configuration sections by subsystem:
//   - Data: sample source location and audio reference base
//   - Browse: page size, searchable fields and input debounce
//   - Server: bind address and static audio directory for `capbrowse serve`
//   - Logging: log format, level and optional file
type Config struct {
	Data    Data    `toml:"data"`
	Browse  Browse  `toml:"browse"`
	Server  Server  `toml:"server"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/capbrowse/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("capbrowse.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// LoadTimeout returns the per-load deadline for the sample source.
func (c *Config) LoadTimeout() time.Duration {
	return time.Duration(c.Data.TimeoutSeconds) * time.Second
}

// Debounce returns the query input debounce window.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Browse.DebounceMillis) * time.Millisecond
}

// IsRemoteSource reports whether the data source is fetched over HTTP.
func (c *Config) IsRemoteSource() bool {
	return isRemote(c.Data.Source)
}

func isRemote(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
