package config

import "github.com/guruhq/landing/scrollstep"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:      ":8080",
		AssetsDir: "static",
		Log: LogConfig{
			Level:  "info",
			Format: LogText,
		},
		Links: LinksConfig{
			SignIn:        "/signin",
			FindTutor:     "/signup?role=student",
			StartTeaching: "/signup?role=tutor",
		},
		Carousel: CarouselConfig{
			Threshold:         scrollstep.DefaultThreshold,
			Cooldown:          scrollstep.DefaultCooldown,
			Breakpoint:        scrollstep.DefaultBreakpoint,
			SmallIntersection: scrollstep.DefaultSmallIntersection,
			LargeIntersection: scrollstep.DefaultLargeIntersection,
			HandOffSelector:   scrollstep.DefaultHandOffSelector,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}
