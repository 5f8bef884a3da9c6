package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"minfo/internal/config"
	"minfo/internal/logging"
	"minfo/internal/mediainfo"
	"minfo/internal/probecache"
)

type commandContext struct {
	configFlag   *string
	ffprobeFlag  *string
	exiftoolFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, ffprobeFlag, exiftoolFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		ffprobeFlag:  ffprobeFlag,
		exiftoolFlag: exiftoolFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ffprobeBinary returns the flag override or the configured binary.
func (c *commandContext) ffprobeBinary(cfg *config.Config) string {
	if c.ffprobeFlag != nil && strings.TrimSpace(*c.ffprobeFlag) != "" {
		return strings.TrimSpace(*c.ffprobeFlag)
	}
	return cfg.Tools.FFprobeBinary
}

func (c *commandContext) exiftoolBinary(cfg *config.Config) string {
	if c.exiftoolFlag != nil && strings.TrimSpace(*c.exiftoolFlag) != "" {
		return strings.TrimSpace(*c.exiftoolFlag)
	}
	return cfg.Tools.ExiftoolBinary
}

// loadOptions assembles tool options for one CLI run. The cache is opened
// only when enabled and not explicitly bypassed; a cache that fails to open
// degrades to uncached inspection with a warning.
func (c *commandContext) loadOptions(cfg *config.Config, logger *slog.Logger, noCache bool) (mediainfo.Options, func()) {
	opts := mediainfo.Options{
		FFprobeBinary:  c.ffprobeBinary(cfg),
		ExiftoolBinary: c.exiftoolBinary(cfg),
		Timeout:        time.Duration(cfg.Tools.TimeoutSeconds) * time.Second,
		Logger:         logger,
	}

	cleanup := func() {}
	if cfg.ProbeCache.Enabled && !noCache {
		cache, err := probecache.Open(cfg.ProbeCache.Path, logger)
		if err != nil {
			logger.Warn("probe cache unavailable",
				logging.String(logging.FieldPath, cfg.ProbeCache.Path),
				logging.Error(err))
		} else {
			opts.Cache = cache
			cleanup = func() { _ = cache.Close() }
		}
	}
	return opts, cleanup
}

func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString())), nil
}

func (c *commandContext) openCache(cfg *config.Config) (*probecache.Cache, error) {
	return probecache.Open(cfg.ProbeCache.Path, logging.NewNop())
}
