package scrollstep

import (
	"errors"
	"fmt"
	"time"
)

// Defaults used by DefaultConfig.
const (
	DefaultThreshold         = 50
	DefaultCooldown          = 500 * time.Millisecond
	DefaultBreakpoint        = 1024
	DefaultSmallIntersection = 0.2
	DefaultLargeIntersection = 0.4
	DefaultHandOffSelector   = "[data-one-stop-solution]"
)

// Config holds the fixed parameters of a controller.
type Config struct {
	// StepCount is the number of steps the cursor moves over.
	StepCount int
	// Threshold is the absolute accumulated wheel delta that commits a transition.
	Threshold float64
	// Cooldown is how long wheel input is swallowed after a commit.
	Cooldown time.Duration
	// Breakpoint is the viewport width below which the device is small.
	Breakpoint int
	// SmallIntersection and LargeIntersection are the observer thresholds
	// used for each device class.
	SmallIntersection float64
	LargeIntersection float64
	// HandOffSelector locates the section that receives the scroll when the
	// last step is passed.
	HandOffSelector string
}

// DefaultConfig returns the stock configuration for stepCount steps.
func DefaultConfig(stepCount int) Config {
	return Config{
		StepCount:         stepCount,
		Threshold:         DefaultThreshold,
		Cooldown:          DefaultCooldown,
		Breakpoint:        DefaultBreakpoint,
		SmallIntersection: DefaultSmallIntersection,
		LargeIntersection: DefaultLargeIntersection,
		HandOffSelector:   DefaultHandOffSelector,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.StepCount < 1 {
		return fmt.Errorf("step count must be at least 1, got %d", c.StepCount)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", c.Threshold)
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("cooldown must be non-negative, got %s", c.Cooldown)
	}
	if c.Breakpoint < 0 {
		return fmt.Errorf("breakpoint must be non-negative, got %d", c.Breakpoint)
	}
	for _, t := range []float64{c.SmallIntersection, c.LargeIntersection} {
		if t < 0 || t > 1 {
			return fmt.Errorf("intersection threshold %v out of range [0, 1]", t)
		}
	}
	if c.HandOffSelector == "" {
		return errors.New("hand-off selector is required")
	}
	return nil
}

// LastIndex is the highest valid cursor.
func (c Config) LastIndex() int {
	return max(c.StepCount-1, 0)
}

// DeviceFor classifies a viewport width.
func (c Config) DeviceFor(width int) Device {
	if width < c.Breakpoint {
		return Small
	}
	return Large
}

// IntersectionThreshold is the observer threshold for the given device.
func (c Config) IntersectionThreshold(d Device) float64 {
	if d == Small {
		return c.SmallIntersection
	}
	return c.LargeIntersection
}

func (c Config) clamp(i int) int {
	return min(max(i, 0), c.LastIndex())
}
