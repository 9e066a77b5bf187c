package scrollstep

import (
	"log/slog"
	"sync"
)

// Section is a page section that can receive the scroll on hand-off.
type Section interface {
	ScrollIntoView()
}

// Host resolves sections by a stable selector.
type Host interface {
	Lookup(selector string) (Section, bool)
}

// Option configures a [Controller].
type Option func(*Controller)

// WithScheduler replaces [TimerScheduler]. The scheduler must not invoke the
// callback synchronously from AfterFunc.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.sched = s
	}
}

// WithLogger sets the logger used for transition debug logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithOnChange registers fn to be called after every state change, outside
// the controller lock.
func WithOnChange(fn func(prev, next State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller owns the state of one carousel section. It is safe for
// concurrent use, although the browser only ever calls it from one thread.
type Controller struct {
	cfg      Config
	host     Host
	sched    Scheduler
	logger   *slog.Logger
	onChange func(prev, next State)

	mu           sync.Mutex
	state        State
	target       Section
	stopCooldown func() bool
	gen          uint64
	closed       bool
}

// New returns a controller positioned on the first step, large viewport, out
// of view. host may be nil, in which case hand-off only releases capture.
func New(cfg Config, host Host, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		host:   host,
		sched:  TimerScheduler,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the controller configuration.
func (c *Controller) Config() Config { return c.cfg }

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch feeds ev through [Update] and performs the resulting effects.
// The returned effect set tells the caller whether to prevent the native
// action or recreate the observer. After Close it does nothing.
func (c *Controller) Dispatch(ev Event) Effect {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return None
	}
	prev, next, eff := c.stepLocked(ev)
	c.mu.Unlock()

	c.perform(prev, next, eff)
	return eff
}

// Intersect reports the observer result.
func (c *Controller) Intersect(intersecting bool) Effect {
	return c.Dispatch(Intersected{Intersecting: intersecting})
}

// Wheel reports a wheel delta and returns true when the native scroll must be
// prevented.
func (c *Controller) Wheel(deltaY float64) bool {
	return c.Dispatch(Wheel{DeltaY: deltaY}).Has(PreventDefault)
}

// Resize reports a new viewport width.
func (c *Controller) Resize(width int) Effect {
	return c.Dispatch(Resized{Width: width})
}

// Select moves the cursor to index from a progress dot.
func (c *Controller) Select(index int) {
	c.Dispatch(Selected{Index: index})
}

// Page moves the cursor to the index reported by the small-viewport pager.
func (c *Controller) Page(index int) {
	c.Dispatch(Paged{Index: index})
}

// Close cancels the pending cooldown and detaches the controller. Late timer
// callbacks and further events are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancelCooldownLocked()
	c.target = nil
}

func (c *Controller) stepLocked(ev Event) (prev, next State, eff Effect) {
	prev = c.state
	next, eff = Update(c.cfg, prev, ev)
	c.state = next
	if eff.Has(CancelCooldown) {
		c.cancelCooldownLocked()
	}
	if eff.Has(StartCooldown) {
		c.startCooldownLocked()
	}
	return prev, next, eff
}

func (c *Controller) perform(prev, next State, eff Effect) {
	if eff.Has(ResolveTarget) {
		c.resolveTarget()
	}
	if eff.Has(StartCooldown) {
		c.logger.Debug("step committed", "from", prev.Cursor, "to", next.Cursor, "direction", next.Direction)
	}
	if prev.Armed && !next.Armed && next.InView && next.Device == Large {
		c.logger.Debug("scroll released", "cursor", next.Cursor)
	}
	if eff.Has(HandOff) {
		c.handOff()
	}
	if c.onChange != nil && prev != next {
		c.onChange(prev, next)
	}
}

func (c *Controller) resolveTarget() {
	var (
		sec Section
		ok  bool
	)
	if c.host != nil {
		sec, ok = c.host.Lookup(c.cfg.HandOffSelector)
	}
	if !ok {
		sec = nil
		c.logger.Debug("hand-off target not found", "selector", c.cfg.HandOffSelector)
	}
	c.mu.Lock()
	if !c.closed {
		c.target = sec
	}
	c.mu.Unlock()
}

func (c *Controller) handOff() {
	c.mu.Lock()
	target := c.target
	c.mu.Unlock()
	if target == nil {
		return
	}
	c.logger.Debug("handing off scroll", "selector", c.cfg.HandOffSelector)
	target.ScrollIntoView()
}

func (c *Controller) startCooldownLocked() {
	c.cancelCooldownLocked()
	c.gen++
	gen := c.gen
	c.stopCooldown = c.sched.AfterFunc(c.cfg.Cooldown, func() {
		c.cooldownFired(gen)
	})
}

func (c *Controller) cancelCooldownLocked() {
	if c.stopCooldown != nil {
		c.stopCooldown()
		c.stopCooldown = nil
	}
	// Invalidate a callback that already started running.
	c.gen++
}

func (c *Controller) cooldownFired(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.stopCooldown = nil
	prev, next, eff := c.stepLocked(CooldownElapsed{})
	c.mu.Unlock()

	c.perform(prev, next, eff)
}
