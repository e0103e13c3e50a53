package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/pkg/log"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported logging config format")

// LoggingConfig is the optional logging file. Empty fields keep defaults.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	// stderr, stdout or discard
	Output string `toml:"output" yaml:"output"`
}

// LoadLoggingConfig picks the decoder by file extension.
func LoadLoggingConfig(path string) (LoggingConfig, error) {
	var c LoggingConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &c); err != nil {
			return c, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return c, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return c, nil
}

// Apply overlays the file settings on base. Unknown values are ignored.
func (c LoggingConfig) Apply(base log.Options) log.Options {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err == nil && c.Level != "" {
		base.Level = lvl
	}

	switch strings.ToLower(c.Format) {
	case log.FormatJSON:
		base.Format = log.FormatJSON
	case log.FormatConsole:
		base.Format = log.FormatConsole
	}

	switch strings.ToLower(c.Output) {
	case "stdout":
		base.Out = os.Stdout
	case "stderr":
		base.Out = os.Stderr
	case "discard":
		base.Out = io.Discard
	}
	return base
}

// LogOptions never fails: a missing or broken logging file leaves the
// defaults in place. Debug mode always wins over the file's level.
func LogOptions(cfg core.AppConfig) log.Options {
	opts := log.DefaultOptions(cfg.IsDebug())

	lc, err := LoadLoggingConfig(cfg.GetLogConfigPath())
	if err != nil {
		return opts
	}
	opts = lc.Apply(opts)
	if cfg.IsDebug() {
		opts.Level = zerolog.DebugLevel
	}
	return opts
}
