package scrollstep

import "math"

// Update applies one event to s and returns the next state together with the
// side effects the host must perform. It never fails: out-of-range indexes
// are clamped and events that do not apply in the current state are ignored.
func Update(cfg Config, s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Intersected:
		return intersect(cfg, s, ev.Intersecting)
	case Wheel:
		return wheel(cfg, s, ev.DeltaY)
	case Resized:
		return resize(cfg, s, ev.Width)
	case CooldownElapsed:
		s.Transitioning = false
		return s, None
	case Selected:
		s.Cursor = cfg.clamp(ev.Index)
		return s, None
	case Paged:
		if s.Device != Small {
			return s, None
		}
		s.Cursor = cfg.clamp(ev.Index)
		return s, None
	}
	return s, None
}

func intersect(_ Config, s State, intersecting bool) (State, Effect) {
	s.InView = intersecting
	if !intersecting {
		s.Armed = false
		s.Accumulator = 0
		return s, None
	}
	if s.Device == Small {
		return s, None
	}
	s.Armed = true
	s.Accumulator = 0
	return s, ResolveTarget
}

func wheel(cfg Config, s State, dy float64) (State, Effect) {
	if !s.Capturing() {
		return s, None
	}
	if s.Transitioning {
		return s, PreventDefault
	}
	if !s.Armed {
		return s, None
	}
	if s.Cursor == 0 && dy < 0 {
		s.Armed = false
		s.Accumulator = 0
		return s, None
	}
	if s.Cursor == cfg.LastIndex() && dy > 0 {
		s.Armed = false
		s.Accumulator = 0
		return s, HandOff
	}

	s.Accumulator += dy
	if math.Abs(s.Accumulator) < cfg.Threshold {
		return s, PreventDefault
	}

	step := 1
	s.Direction = Down
	if s.Accumulator < 0 {
		step = -1
		s.Direction = Up
	}
	s.Cursor = cfg.clamp(s.Cursor + step)
	s.Accumulator = 0
	s.Transitioning = true
	return s, PreventDefault | StartCooldown
}

func resize(cfg Config, s State, width int) (State, Effect) {
	d := cfg.DeviceFor(width)
	if d == s.Device {
		return s, None
	}
	s.Device = d
	if d == Large {
		return s, Reobserve
	}
	// The pager owns the cursor from here on.
	s.Armed = false
	s.Accumulator = 0
	s.Transitioning = false
	return s, Reobserve | CancelCooldown
}
