package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/hk-split-maker/lssgen/assets"
	"github.com/hk-split-maker/lssgen/catalog"
	"github.com/hk-split-maker/lssgen/config"
	"github.com/hk-split-maker/lssgen/internal"
	"github.com/hk-split-maker/lssgen/registry"
)

type globalFlags struct {
	config    string
	assets    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     config.AppConfig
	configErr  error
	logger     *slog.Logger

	loaderOnce sync.Once
	loader     *registry.CachedLoader
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig(cmd *cobra.Command) (config.AppConfig, error) {
	c.configOnce.Do(func() {
		cfg, err := config.LoadAppConfig(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if v := strings.TrimSpace(c.flags.assets); v != "" {
			cfg.Assets.Dir = v
		}
		if v := strings.TrimSpace(c.flags.logLevel); v != "" {
			cfg.Logging.Level = v
		}
		if v := strings.TrimSpace(c.flags.logFormat); v != "" {
			cfg.Logging.Format = v
		}
		c.config = cfg
		c.logger = internal.InitLogging(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	})
	return c.config, c.configErr
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

func (c *commandContext) assetsFS() fs.FS {
	if c.config.Assets.Dir == "" {
		return assets.FS
	}
	return os.DirFS(c.config.Assets.Dir)
}

func (c *commandContext) assetsLabel() string {
	if c.config.Assets.Dir == "" {
		return "embedded"
	}
	return c.config.Assets.Dir
}

func (c *commandContext) registry(ctx context.Context) (*registry.Registry, error) {
	c.loaderOnce.Do(func() {
		var src registry.Source = registry.FSSource{FS: assets.FS, Path: c.config.Assets.Splits}
		if c.config.Assets.Dir != "" {
			src = registry.FileSource{Path: filepath.Join(c.config.Assets.Dir, c.config.Assets.Splits)}
		}
		c.loader = registry.NewCachedLoader(src)
	})
	reg, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.log().Debug("split definitions loaded",
		slog.String("assets", c.assetsLabel()),
		slog.Int("count", reg.Len()),
	)
	return reg, nil
}

func (c *commandContext) catalog() (*catalog.Catalog, error) {
	cat, err := catalog.Open(c.assetsFS(), catalog.Layout{
		Directory:  c.config.Assets.Directory,
		Categories: c.config.Assets.Categories,
	})
	if err != nil {
		return nil, fmt.Errorf("open category catalog (%s): %w", c.assetsLabel(), err)
	}
	return cat, nil
}
