package chartpane

// InputEvent is one raw pointer or touch event delivered to a
// PaneWidget. Local coordinates are relative to the pane's top-left
// corner; client coordinates are relative to the host window and are
// used only to detect that a pressed pointer actually moved.
type InputEvent struct {
	LocalX, LocalY   float64
	ClientX, ClientY float64

	// IsTouch distinguishes touch gestures from mouse input; several
	// behaviors (drag-scroll axes, kinetic scrolling, crosshair gating)
	// are configured per input type.
	IsTouch bool
}

// Local returns the pane-local position of the event.
func (e InputEvent) Local() Point {
	return Point{X: e.LocalX, Y: e.LocalY}
}

// ClickCallback observes the public "clicked" notification. index is
// nil when no bar is under the crosshair at click time.
type ClickCallback func(index *TimePointIndex, p Point)
