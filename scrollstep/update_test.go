package scrollstep

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func armed(cursor int) State {
	return State{Cursor: cursor, InView: true, Armed: true}
}

func TestUpdate(t *testing.T) {
	cfg := DefaultConfig(5)
	tests := []struct {
		name  string
		state State
		event Event
		want  State
		eff   Effect
	}{
		{
			name:  "entering view on large viewport arms and resolves target",
			state: State{Cursor: 2, Accumulator: 30},
			event: Intersected{Intersecting: true},
			want:  State{Cursor: 2, InView: true, Armed: true},
			eff:   ResolveTarget,
		},
		{
			name:  "entering view on small viewport does not arm",
			state: State{Device: Small},
			event: Intersected{Intersecting: true},
			want:  State{Device: Small, InView: true},
			eff:   None,
		},
		{
			name:  "leaving view disarms and resets accumulator",
			state: State{Cursor: 1, InView: true, Armed: true, Accumulator: 20},
			event: Intersected{Intersecting: false},
			want:  State{Cursor: 1},
			eff:   None,
		},
		{
			name:  "wheel below threshold accumulates",
			state: armed(1),
			event: Wheel{DeltaY: 30},
			want:  State{Cursor: 1, InView: true, Armed: true, Accumulator: 30},
			eff:   PreventDefault,
		},
		{
			name:  "wheel reaching threshold commits forward",
			state: State{Cursor: 1, InView: true, Armed: true, Accumulator: 40},
			event: Wheel{DeltaY: 10},
			want:  State{Cursor: 2, InView: true, Armed: true, Direction: Down, Transitioning: true},
			eff:   PreventDefault | StartCooldown,
		},
		{
			name:  "negative accumulation commits backward",
			state: armed(3),
			event: Wheel{DeltaY: -75},
			want:  State{Cursor: 2, InView: true, Armed: true, Direction: Up, Transitioning: true},
			eff:   PreventDefault | StartCooldown,
		},
		{
			name:  "mixed deltas cancel out",
			state: State{Cursor: 2, InView: true, Armed: true, Accumulator: 45},
			event: Wheel{DeltaY: -45},
			want:  State{Cursor: 2, InView: true, Armed: true},
			eff:   PreventDefault,
		},
		{
			name:  "scrolling back past the first step releases",
			state: State{Cursor: 0, InView: true, Armed: true, Accumulator: 10},
			event: Wheel{DeltaY: -60},
			want:  State{Cursor: 0, InView: true},
			eff:   None,
		},
		{
			name:  "scrolling past the last step hands off",
			state: armed(4),
			event: Wheel{DeltaY: 60},
			want:  State{Cursor: 4, InView: true},
			eff:   HandOff,
		},
		{
			name:  "transitioning swallows wheel without accumulating",
			state: State{Cursor: 2, InView: true, Armed: true, Transitioning: true},
			event: Wheel{DeltaY: 500},
			want:  State{Cursor: 2, InView: true, Armed: true, Transitioning: true},
			eff:   PreventDefault,
		},
		{
			name:  "released section lets wheel through",
			state: State{Cursor: 2, InView: true},
			event: Wheel{DeltaY: 60},
			want:  State{Cursor: 2, InView: true},
			eff:   None,
		},
		{
			name:  "out of view ignores wheel",
			state: State{Cursor: 2},
			event: Wheel{DeltaY: 60},
			want:  State{Cursor: 2},
			eff:   None,
		},
		{
			name:  "small viewport ignores wheel",
			state: State{Cursor: 2, InView: true, Device: Small},
			event: Wheel{DeltaY: 60},
			want:  State{Cursor: 2, InView: true, Device: Small},
			eff:   None,
		},
		{
			name:  "cooldown elapsed clears flag",
			state: State{Cursor: 2, InView: true, Armed: true, Transitioning: true},
			event: CooldownElapsed{},
			want:  armed(2),
			eff:   None,
		},
		{
			name:  "selection bypasses accumulator",
			state: State{Cursor: 0, InView: true, Armed: true, Accumulator: 20},
			event: Selected{Index: 3},
			want:  State{Cursor: 3, InView: true, Armed: true, Accumulator: 20},
			eff:   None,
		},
		{
			name:  "selection is clamped",
			state: State{},
			event: Selected{Index: 42},
			want:  State{Cursor: 4},
			eff:   None,
		},
		{
			name:  "negative selection is clamped",
			state: State{Cursor: 3},
			event: Selected{Index: -1},
			want:  State{},
			eff:   None,
		},
		{
			name:  "pager is ignored on large viewport",
			state: armed(1),
			event: Paged{Index: 3},
			want:  armed(1),
			eff:   None,
		},
		{
			name:  "pager drives cursor on small viewport",
			state: State{Cursor: 1, Device: Small},
			event: Paged{Index: 3},
			want:  State{Cursor: 3, Device: Small},
			eff:   None,
		},
		{
			name:  "shrinking below breakpoint disarms",
			state: State{Cursor: 2, InView: true, Armed: true, Accumulator: 20, Transitioning: true},
			event: Resized{Width: 800},
			want:  State{Cursor: 2, InView: true, Device: Small},
			eff:   Reobserve | CancelCooldown,
		},
		{
			name:  "growing past breakpoint asks for a new observer",
			state: State{Cursor: 2, InView: true, Device: Small},
			event: Resized{Width: 1280},
			want:  State{Cursor: 2, InView: true},
			eff:   Reobserve,
		},
		{
			name:  "resize within the same class is a no-op",
			state: armed(2),
			event: Resized{Width: 1500},
			want:  armed(2),
			eff:   None,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, eff := Update(cfg, tt.state, tt.event)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("Update() state mismatch (-got +want):\n%s", diff)
			}
			if eff != tt.eff {
				t.Errorf("Update() effect = %s, want %s", eff, tt.eff)
			}
		})
	}
}

func TestUpdateFiveSmallEventsCommitOnce(t *testing.T) {
	cfg := DefaultConfig(5)
	s := armed(0)
	commits := 0
	for range 5 {
		var eff Effect
		s, eff = Update(cfg, s, Wheel{DeltaY: 10})
		if eff.Has(StartCooldown) {
			commits++
		}
	}
	if commits != 1 {
		t.Fatalf("commits = %d, want 1", commits)
	}
	if s.Cursor != 1 || s.Direction != Down {
		t.Errorf("got cursor %d direction %s, want 1 down", s.Cursor, s.Direction)
	}
}

func TestUpdateCursorStaysInBounds(t *testing.T) {
	cfg := DefaultConfig(5)
	r := rand.New(rand.NewPCG(1, 2))
	s := State{}
	events := []func() Event{
		func() Event { return Wheel{DeltaY: float64(r.IntN(241) - 120)} },
		func() Event { return Wheel{DeltaY: float64(r.IntN(21) - 10)} },
		func() Event { return CooldownElapsed{} },
		func() Event { return Intersected{Intersecting: r.IntN(4) != 0} },
		func() Event { return Selected{Index: r.IntN(11) - 3} },
		func() Event { return Paged{Index: r.IntN(11) - 3} },
		func() Event { return Resized{Width: 600 + r.IntN(900)} },
	}
	for i := range 10000 {
		ev := events[r.IntN(len(events))]()
		s, _ = Update(cfg, s, ev)
		if s.Cursor < 0 || s.Cursor > cfg.LastIndex() {
			t.Fatalf("step %d: cursor %d out of bounds after %#v", i, s.Cursor, ev)
		}
		if s.Armed && (!s.InView || s.Device == Small) {
			t.Fatalf("step %d: armed outside capture: %s", i, s)
		}
	}
}

func TestUpdateSingleStep(t *testing.T) {
	cfg := DefaultConfig(1)
	got, eff := Update(cfg, armed(0), Wheel{DeltaY: 60})
	if got.Armed || got.Cursor != 0 || eff != HandOff {
		t.Errorf("forward on single step: state %s effect %s", got, eff)
	}
	got, eff = Update(cfg, armed(0), Wheel{DeltaY: -60})
	if got.Armed || got.Cursor != 0 || eff != None {
		t.Errorf("backward on single step: state %s effect %s", got, eff)
	}
}

func TestEffectString(t *testing.T) {
	tests := []struct {
		eff  Effect
		want string
	}{
		{None, "none"},
		{PreventDefault, "prevent-default"},
		{PreventDefault | StartCooldown, "prevent-default|start-cooldown"},
		{Reobserve | CancelCooldown, "cancel-cooldown|reobserve"},
	}
	for _, tt := range tests {
		if got := tt.eff.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.eff, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"no steps", func(c *Config) { c.StepCount = 0 }, true},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, true},
		{"negative cooldown", func(c *Config) { c.Cooldown = -1 }, true},
		{"intersection above one", func(c *Config) { c.LargeIntersection = 1.5 }, true},
		{"empty selector", func(c *Config) { c.HandOffSelector = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(5)
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}
