// Package config loads the guru server configuration.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/guruhq/landing/scrollstep"
	"github.com/guruhq/landing/scrollstep/dom"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: GURU_CAROUSEL__COOLDOWN sets carousel.cooldown.
const EnvPrefix = "GURU_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var validFormats = map[LogFormat]bool{
	LogText: true,
	LogJSON: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	if err := c.Carousel.ScrollStep(1).Validate(); err != nil {
		return fmt.Errorf("carousel: %w", err)
	}
	if _, err := dom.MarkerAttr(c.Carousel.HandOffSelector); err != nil {
		return fmt.Errorf("carousel.handoff_selector: %w", err)
	}
	return nil
}

// ScrollStep converts the carousel settings to a controller config for
// stepCount steps.
func (c CarouselConfig) ScrollStep(stepCount int) scrollstep.Config {
	return scrollstep.Config{
		StepCount:         stepCount,
		Threshold:         c.Threshold,
		Cooldown:          c.Cooldown,
		Breakpoint:        c.Breakpoint,
		SmallIntersection: c.SmallIntersection,
		LargeIntersection: c.LargeIntersection,
		HandOffSelector:   c.HandOffSelector,
	}
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return lvl, nil
}

// Logger builds the logger described by l. verbose forces debug level.
func (l LogConfig) Logger(w io.Writer, verbose bool) (*slog.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
