package scrollstep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

// manualClock is a Scheduler whose time only moves on Advance.
type manualClock struct {
	now    time.Duration
	timers []*manualTimer
}

func (m *manualClock) AfterFunc(d time.Duration, f func()) func() bool {
	t := &manualTimer{at: m.now + d, f: f}
	m.timers = append(m.timers, t)
	return func() bool {
		if t.fired || t.stopped {
			return false
		}
		t.stopped = true
		return true
	}
}

func (m *manualClock) Advance(d time.Duration) {
	end := m.now + d
	for {
		var next *manualTimer
		for _, t := range m.timers {
			if t.fired || t.stopped || t.at > end {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			break
		}
		m.now = next.at
		next.fired = true
		next.f()
	}
	m.now = end
}

func (m *manualClock) pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

type countingSection struct {
	scrolls int
}

func (s *countingSection) ScrollIntoView() { s.scrolls++ }

type mapHost struct {
	sections map[string]Section
	lookups  int
}

func (h *mapHost) Lookup(selector string) (Section, bool) {
	h.lookups++
	s, ok := h.sections[selector]
	return s, ok
}

func newTestController(t *testing.T, steps int) (*Controller, *manualClock, *countingSection, *mapHost) {
	t.Helper()
	clock := &manualClock{}
	next := &countingSection{}
	host := &mapHost{sections: map[string]Section{DefaultHandOffSelector: next}}
	c := New(DefaultConfig(steps), host, WithScheduler(clock))
	t.Cleanup(c.Close)
	return c, clock, next, host
}

func TestControllerArmsOnIntersection(t *testing.T) {
	c, _, _, host := newTestController(t, 5)

	eff := c.Intersect(true)
	assert.True(t, eff.Has(ResolveTarget))
	assert.Equal(t, 1, host.lookups)
	st := c.State()
	assert.True(t, st.Armed)
	assert.True(t, st.InView)
}

func TestControllerCooldownDebouncesBursts(t *testing.T) {
	c, clock, _, _ := newTestController(t, 5)
	c.Intersect(true)

	// t=0
	assert.True(t, c.Wheel(60))
	require.Equal(t, 1, c.State().Cursor)
	require.True(t, c.State().Transitioning)

	// t=100ms, inside the window
	clock.Advance(100 * time.Millisecond)
	assert.True(t, c.Wheel(60), "wheel during cooldown must be prevented")
	assert.Equal(t, 1, c.State().Cursor)
	assert.Zero(t, c.State().Accumulator)

	// t=600ms
	clock.Advance(500 * time.Millisecond)
	require.False(t, c.State().Transitioning)
	assert.True(t, c.Wheel(60))
	assert.Equal(t, 2, c.State().Cursor)
}

func TestControllerReleaseAtFirstStep(t *testing.T) {
	c, _, next, _ := newTestController(t, 5)
	c.Intersect(true)

	assert.False(t, c.Wheel(-60))
	st := c.State()
	assert.False(t, st.Armed)
	assert.Equal(t, 0, st.Cursor)
	assert.Zero(t, next.scrolls)
}

func TestControllerHandOffAtLastStep(t *testing.T) {
	c, _, next, _ := newTestController(t, 5)
	c.Intersect(true)
	c.Select(4)

	assert.False(t, c.Wheel(60))
	st := c.State()
	assert.False(t, st.Armed)
	assert.Equal(t, 4, st.Cursor)
	assert.Equal(t, 1, next.scrolls)

	// Released: later wheel events go to the page untouched.
	assert.False(t, c.Wheel(60))
	assert.Equal(t, 1, next.scrolls)
}

func TestControllerHandOffWithoutTarget(t *testing.T) {
	clock := &manualClock{}
	c := New(DefaultConfig(2), &mapHost{}, WithScheduler(clock))
	defer c.Close()
	c.Intersect(true)
	c.Select(1)

	eff := c.Dispatch(Wheel{DeltaY: 60})
	assert.Equal(t, HandOff, eff)
	assert.False(t, c.State().Armed)
}

func TestControllerNilHost(t *testing.T) {
	c := New(DefaultConfig(1), nil, WithScheduler(&manualClock{}))
	defer c.Close()
	c.Intersect(true)
	assert.NotPanics(t, func() { c.Wheel(60) })
}

func TestControllerSelectWhileArmed(t *testing.T) {
	c, _, _, _ := newTestController(t, 5)
	c.Intersect(true)
	c.Wheel(20)

	c.Select(3)
	st := c.State()
	assert.Equal(t, 3, st.Cursor)
	assert.Equal(t, 20.0, st.Accumulator)
	assert.True(t, st.Armed)
}

func TestControllerSwitchToSmallViewport(t *testing.T) {
	c, clock, _, _ := newTestController(t, 5)
	c.Resize(1440)
	c.Intersect(true)
	c.Wheel(60)
	require.Equal(t, 1, clock.pending())

	eff := c.Resize(800)
	assert.True(t, eff.Has(Reobserve))
	assert.Zero(t, clock.pending(), "cooldown must be cancelled")
	st := c.State()
	assert.False(t, st.Armed)
	assert.Equal(t, Small, st.Device)

	c.Page(3)
	assert.Equal(t, 3, c.State().Cursor)
	assert.False(t, c.Wheel(60))
	assert.Equal(t, 3, c.State().Cursor)
}

func TestControllerOnChange(t *testing.T) {
	clock := &manualClock{}
	var changes []State
	c := New(DefaultConfig(3), nil,
		WithScheduler(clock),
		WithOnChange(func(_, next State) { changes = append(changes, next) }),
	)
	defer c.Close()

	c.Intersect(true)
	c.Wheel(50)
	clock.Advance(DefaultCooldown)

	require.Len(t, changes, 3)
	assert.True(t, changes[0].Armed)
	assert.Equal(t, 1, changes[1].Cursor)
	assert.True(t, changes[1].Transitioning)
	assert.False(t, changes[2].Transitioning)
}

func TestControllerCloseCancelsCooldown(t *testing.T) {
	clock := &manualClock{}
	calls := 0
	c := New(DefaultConfig(3), nil,
		WithScheduler(clock),
		WithOnChange(func(_, _ State) { calls++ }),
	)
	c.Intersect(true)
	c.Wheel(50)
	require.Equal(t, 2, calls)

	c.Close()
	clock.Advance(time.Second)
	assert.Equal(t, 2, calls)
	assert.True(t, c.State().Transitioning)
	assert.Equal(t, None, c.Dispatch(Selected{Index: 2}))
	assert.Equal(t, 1, c.State().Cursor)
}

func TestControllerTimerScheduler(t *testing.T) {
	cfg := DefaultConfig(3)
	cfg.Cooldown = 10 * time.Millisecond
	c := New(cfg, nil)
	defer c.Close()

	c.Intersect(true)
	c.Wheel(50)
	require.True(t, c.State().Transitioning)
	assert.Eventually(t, func() bool { return !c.State().Transitioning }, time.Second, 5*time.Millisecond)
}
