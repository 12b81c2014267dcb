package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateBrowse(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateData() error {
	if c.Data.Source == "" {
		return errors.New("data.source must be set")
	}
	if c.Data.TimeoutSeconds < 0 {
		return errors.New("data.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateBrowse() error {
	if c.Browse.PageSize <= 0 {
		return errors.New("browse.page_size must be positive")
	}
	for _, size := range c.Browse.PageSizes {
		if size <= 0 {
			return fmt.Errorf("browse.page_sizes entries must be positive, got %d", size)
		}
	}
	for _, field := range c.Browse.Fields {
		if !slices.Contains(defaultFields, field) {
			return fmt.Errorf("browse.fields: unknown field %q", field)
		}
	}
	if !slices.Contains(c.Browse.Fields, c.Browse.DefaultField) {
		return fmt.Errorf("browse.default_field %q is not listed in browse.fields", c.Browse.DefaultField)
	}
	if c.Browse.DebounceMillis < 0 {
		return errors.New("browse.debounce_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
