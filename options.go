package chartpane

// ScrollOptions enable drag-to-scroll per input type. Mouse and touch
// are configured independently; touch additionally splits the two axes.
type ScrollOptions struct {
	// PressedMouseMove enables scrolling by mouse drag.
	PressedMouseMove bool
	// HorzTouchDrag enables horizontal (time axis) scrolling by touch drag.
	HorzTouchDrag bool
	// VertTouchDrag enables vertical (price scale) scrolling by touch drag.
	VertTouchDrag bool
}

// KineticScrollOptions enable momentum scrolling after a drag release,
// per input type.
type KineticScrollOptions struct {
	Touch bool
	Mouse bool
}

// Option configures a PaneWidget during creation.
type Option func(*widgetOptions)

type widgetOptions struct {
	scroll            ScrollOptions
	kinetic           KineticScrollOptions
	pinchZoom         bool
	touchMode         bool
	longTapTracking   bool
	scheduler         FrameScheduler
	clock             Clock
	beforeInteraction func()
}

func defaultWidgetOptions() widgetOptions {
	return widgetOptions{
		scroll: ScrollOptions{
			PressedMouseMove: true,
			HorzTouchDrag:    true,
			VertTouchDrag:    true,
		},
		kinetic:   KineticScrollOptions{Touch: true, Mouse: false},
		pinchZoom: true,
		scheduler: NewFrameScheduler(),
		clock:     SystemClock(),
	}
}

// WithScrollOptions overrides the drag-to-scroll configuration.
func WithScrollOptions(o ScrollOptions) Option {
	return func(w *widgetOptions) { w.scroll = o }
}

// WithKineticScrollOptions overrides the momentum-scroll configuration.
func WithKineticScrollOptions(o KineticScrollOptions) Option {
	return func(w *widgetOptions) { w.kinetic = o }
}

// WithPinchZoom enables or disables pinch-to-zoom.
func WithPinchZoom(enabled bool) Option {
	return func(w *widgetOptions) { w.pinchZoom = enabled }
}

// WithTouchMode marks the host as touch-primary. Touch-primary widgets
// suppress the enter-crosshair (no ghost crosshair before a tap) and
// ignore leave events.
func WithTouchMode(enabled bool) Option {
	return func(w *widgetOptions) { w.touchMode = enabled }
}

// WithLongTapTracking gates crosshair movement behind a long press:
// plain moves clear the crosshair instead of relocating it until a
// long tap enters tracking mode. Meaningful on touch-primary hosts.
func WithLongTapTracking(enabled bool) Option {
	return func(w *widgetOptions) { w.longTapTracking = enabled }
}

// WithFrameScheduler injects the animation-frame scheduler used by
// kinetic scrolling.
func WithFrameScheduler(s FrameScheduler) Option {
	return func(w *widgetOptions) {
		if s != nil {
			w.scheduler = s
		}
	}
}

// WithClock injects the timestamp source for gestures and animations.
func WithClock(c Clock) Option {
	return func(w *widgetOptions) {
		if c != nil {
			w.clock = c
		}
	}
}

// WithBeforeInteraction registers a host hook invoked on pointer-down,
// before any crosshair or scroll handling. Browsers use it to clear an
// active text selection or blur a focused control.
func WithBeforeInteraction(fn func()) Option {
	return func(w *widgetOptions) { w.beforeInteraction = fn }
}
