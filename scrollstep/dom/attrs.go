// Package dom connects a [scrollstep.Controller] to the browser. It observes
// every section marked data-how-it-works, feeds intersection, wheel, resize
// and click input to the controller, and reflects the controller state back
// onto the section's data attributes.
//
// The binding itself only builds for js/wasm; other platforms get a stub so
// that packages importing it still compile.
package dom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guruhq/landing/scrollstep"
)

// Attribute and selector names shared with the server-rendered markup.
const (
	SectionSelector = "[data-how-it-works]"
	PanelSelector   = "[data-step-panel]"
	ImageSelector   = "[data-step-image]"
	DotSelector     = "[data-step-dot]"
	TrackSelector   = "[data-step-track]"
	PrevSelector    = "[data-step-prev]"
	NextSelector    = "[data-step-next]"
	SpacerSelector  = "[data-step-spacer]"

	AttrThreshold  = "data-threshold"
	AttrCooldown   = "data-cooldown"
	AttrBreakpoint = "data-breakpoint"
	AttrHandOff    = "data-handoff"

	AttrSmallIntersection = "data-small-intersection"
	AttrLargeIntersection = "data-large-intersection"

	AttrDirection  = "data-direction"
	AttrArmed      = "data-armed"
	AttrDevice     = "data-device"
	AttrIndex      = "data-index"
)

// ErrUnsupported is returned by MountAll outside js/wasm.
var ErrUnsupported = errors.New("dom: binding requires GOOS=js GOARCH=wasm")

// ApplyAttributes overlays the section's data-* overrides on cfg. attr returns
// the attribute value or "" when absent.
func ApplyAttributes(cfg scrollstep.Config, attr func(name string) string) (scrollstep.Config, error) {
	if v := attr(AttrThreshold); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", AttrThreshold, v, err)
		}
		cfg.Threshold = f
	}
	if v := attr(AttrCooldown); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", AttrCooldown, v, err)
		}
		cfg.Cooldown = d
	}
	if v := attr(AttrBreakpoint); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", AttrBreakpoint, v, err)
		}
		cfg.Breakpoint = n
	}
	for _, o := range []struct {
		name string
		dst  *float64
	}{
		{AttrSmallIntersection, &cfg.SmallIntersection},
		{AttrLargeIntersection, &cfg.LargeIntersection},
	} {
		if v := attr(o.name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return cfg, fmt.Errorf("%s=%q: %w", o.name, v, err)
			}
			*o.dst = f
		}
	}
	if v := attr(AttrHandOff); v != "" {
		cfg.HandOffSelector = v
	}
	return cfg, cfg.Validate()
}

// MarkerAttr returns the attribute name of a bare attribute selector such as
// "[data-one-stop-solution]". Hand-off targets are rendered by the server, so
// only selectors of that form can be placed on markup.
func MarkerAttr(selector string) (string, error) {
	name, ok := strings.CutPrefix(selector, "[")
	if ok {
		name, ok = strings.CutSuffix(name, "]")
	}
	if !ok || name == "" || strings.ContainsAny(name, "[]=\"' ") {
		return "", fmt.Errorf("selector %q is not a bare attribute selector like [data-x]", selector)
	}
	return name, nil
}

// ActiveIndex is the index of the first visible step, or 0 when every step
// is hidden.
func ActiveIndex(hidden []bool) int {
	for i, h := range hidden {
		if !h {
			return i
		}
	}
	return 0
}
