package config

import "time"

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// Config is the top-level guru configuration, corresponding to guru.yml.
type Config struct {
	Addr      string         `koanf:"addr"`
	AssetsDir string         `koanf:"assets_dir"`
	StepsFile string         `koanf:"steps_file"`
	Log       LogConfig      `koanf:"log"`
	Links     LinksConfig    `koanf:"links"`
	Carousel  CarouselConfig `koanf:"carousel"`
	CORS      CORSConfig     `koanf:"cors"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string    `koanf:"level"`
	Format LogFormat `koanf:"format"`
}

// LinksConfig holds the external links of the navbar and call-to-action
// buttons.
type LinksConfig struct {
	SignIn        string `koanf:"sign_in"`
	FindTutor     string `koanf:"find_tutor"`
	StartTeaching string `koanf:"start_teaching"`
}

// CarouselConfig tunes the How It Works carousel. Every value is rendered
// into the section's data attributes and read by the browser binding.
// HandOffSelector must be a bare attribute selector such as
// "[data-one-stop-solution]"; the following section is rendered with that
// attribute.
type CarouselConfig struct {
	Threshold         float64       `koanf:"threshold"`
	Cooldown          time.Duration `koanf:"cooldown"`
	Breakpoint        int           `koanf:"breakpoint"`
	SmallIntersection float64       `koanf:"small_intersection"`
	LargeIntersection float64       `koanf:"large_intersection"`
	HandOffSelector   string        `koanf:"handoff_selector"`
}

// CORSConfig holds the origins allowed to call the JSON API.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}
