package chartpane

import "time"

// Clock supplies timestamps for gesture sampling and animation ticks.
// Injected so tests can drive the kinetic animation deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// FrameScheduler schedules a single-shot animation-frame callback.
// At most one callback is outstanding per PaneWidget; the widget never
// schedules a new tick while a previous one is pending.
//
// The callback must be delivered on the goroutine that owns the widget.
// AfterFuncScheduler fires on a timer goroutine, so hosts with their own
// UI loop should wrap it (or implement FrameScheduler directly) to
// forward the callback onto that loop.
type FrameScheduler interface {
	// Schedule arranges for fn to run once with the current time and
	// returns a cancel function. Cancel is a no-op after fn has run.
	Schedule(fn func(now time.Time)) (cancel func())
}

// AfterFuncScheduler schedules frame callbacks with time.AfterFunc at a
// fixed interval, roughly one frame at 60fps by default.
type AfterFuncScheduler struct {
	Interval time.Duration
}

// NewFrameScheduler returns an AfterFuncScheduler with a ~60fps interval.
func NewFrameScheduler() *AfterFuncScheduler {
	return &AfterFuncScheduler{Interval: time.Second / 60}
}

// Schedule implements FrameScheduler.
func (s *AfterFuncScheduler) Schedule(fn func(now time.Time)) func() {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	t := time.AfterFunc(interval, func() {
		fn(time.Now())
	})
	return func() { t.Stop() }
}
