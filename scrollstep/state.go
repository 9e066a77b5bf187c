// Package scrollstep drives the "How It Works" carousel: a bounded cursor
// over a fixed list of steps that advances on accumulated wheel input while
// the section is pinned in view, and releases the page scroll at either end.
//
// The transition logic lives in [Update], a pure function over [State] and
// [Event]. [Controller] applies the resulting [Effect] set: it resolves the
// hand-off section, runs the cooldown timer and notifies the renderer.
package scrollstep

import (
	"fmt"
	"strings"
)

// Direction of the last committed transition.
type Direction uint8

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Device is the viewport class.
type Device uint8

const (
	Large Device = iota
	Small
)

func (d Device) String() string {
	if d == Small {
		return "small"
	}
	return "large"
}

// State is the full controller state for one section instance.
type State struct {
	Cursor        int
	InView        bool
	Armed         bool
	Accumulator   float64
	Direction     Direction
	Transitioning bool
	Device        Device
}

// Capturing reports whether wheel events should be delivered to [Update].
// Outside of it the host does not need a wheel listener at all.
func (s State) Capturing() bool {
	return s.InView && s.Device == Large
}

func (s State) String() string {
	return fmt.Sprintf("cursor=%d in_view=%t armed=%t acc=%g dir=%s transitioning=%t device=%s",
		s.Cursor, s.InView, s.Armed, s.Accumulator, s.Direction, s.Transitioning, s.Device)
}

// Event is an input to [Update].
type Event interface {
	event()
}

// Intersected reports the viewport observer result.
type Intersected struct {
	Intersecting bool
}

// Wheel is a vertical wheel delta; positive scrolls forward.
type Wheel struct {
	DeltaY float64
}

// Resized carries the new viewport width.
type Resized struct {
	Width int
}

// CooldownElapsed ends the post-transition window.
type CooldownElapsed struct{}

// Selected is a direct index selection from a progress dot.
type Selected struct {
	Index int
}

// Paged is the index reported by the small-viewport pager.
type Paged struct {
	Index int
}

func (Intersected) event()     {}
func (Wheel) event()           {}
func (Resized) event()         {}
func (CooldownElapsed) event() {}
func (Selected) event()        {}
func (Paged) event()           {}

// Effect is a set of side effects requested by [Update].
type Effect uint8

const (
	// PreventDefault suppresses the native action of the current event.
	PreventDefault Effect = 1 << iota
	// ResolveTarget looks up the hand-off section.
	ResolveTarget
	// HandOff smooth-scrolls to the resolved hand-off section.
	HandOff
	// StartCooldown schedules a CooldownElapsed after the cooldown.
	StartCooldown
	// CancelCooldown drops any pending CooldownElapsed.
	CancelCooldown
	// Reobserve recreates the viewport observer with the device threshold.
	Reobserve
)

// None is the empty effect set.
const None Effect = 0

// Has reports whether all bits of o are set in e.
func (e Effect) Has(o Effect) bool {
	return o != 0 && e&o == o
}

var effectNames = []string{
	"prevent-default", "resolve-target", "hand-off",
	"start-cooldown", "cancel-cooldown", "reobserve",
}

func (e Effect) String() string {
	if e == None {
		return "none"
	}
	var parts []string
	for i, name := range effectNames {
		if e&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
