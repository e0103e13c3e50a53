package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/patterns/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"PATTERNS_RUNTIME_PATH" envDefault:".patterns"`
	// Logging file, relative to the runtime path unless absolute
	LogConfig string `env:"PATTERNS_LOG_CONFIG" envDefault:"logging.toml"`

	Debug bool `env:"PATTERNS_DEBUG" envDefault:"false"`
	// Force the line-buffered console even on a terminal
	Plain bool `env:"PATTERNS_PLAIN" envDefault:"false"`
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse app config: %w", err)
	}
	return c, nil
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return ResolveRuntimePath(c.RuntimePath)
}

func (c AppConfig) GetLogConfigPath() string {
	if filepath.IsAbs(c.LogConfig) {
		return c.LogConfig
	}
	return filepath.Join(c.GetRuntimePath(), c.LogConfig)
}

func (c AppConfig) IsDebug() bool {
	return c.Debug
}

func (c AppConfig) IsPlainConsole() bool {
	return c.Plain
}
