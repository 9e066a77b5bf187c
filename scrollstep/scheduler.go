package scrollstep

import "time"

// Scheduler runs f once after d. The returned stop function cancels the call
// if it has not run yet and reports whether it did so.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// SchedulerFunc adapts a function to [Scheduler].
type SchedulerFunc func(d time.Duration, f func()) func() bool

func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) func() bool {
	return fn(d, f)
}

// TimerScheduler schedules with [time.AfterFunc]. Under js/wasm the runtime
// backs it with setTimeout.
var TimerScheduler Scheduler = SchedulerFunc(func(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
})
