package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"capbrowse/internal/catalog"
	"capbrowse/internal/config"
	"capbrowse/internal/logging"
)

type commandContext struct {
	configFlag    *string
	sourceFlag    *string
	audioBaseFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, sourceFlag, audioBaseFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		sourceFlag:    sourceFlag,
		audioBaseFlag: audioBaseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if err := loadDotEnv(".env"); err != nil {
			c.configErr = err
			return
		}
		cfg, _, _, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		overrides := config.Overrides{
			Source:    flagValue(c.sourceFlag),
			AudioBase: flagValue(c.audioBaseFlag),
		}
		if err := cfg.ApplyOverrides(overrides); err != nil {
			c.configErr = fmt.Errorf("apply flags: %w", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// openCatalog loads the configured samples. Load failures are returned as
// errors wrapping the typed loader error.
func (c *commandContext) openCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	cat := catalog.Open(ctx, cfg, nil, logger)
	if err := cat.Err(); err != nil {
		return cat, fmt.Errorf("load samples: %w", err)
	}
	return cat, nil
}

// loadDotEnv populates unset environment variables from path. A missing file
// is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
