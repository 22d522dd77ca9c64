package chartpane

import "github.com/gogpu/gg"

// TimeScale is the horizontal viewport shared by every pane.
// Implemented by the chart's logical model; this package only queries
// and scrolls it, it never owns time-scale state.
type TimeScale interface {
	// IsEmpty reports whether the scale has no data to scroll over.
	IsEmpty() bool

	// RightOffset returns the current offset of the rightmost bar from
	// the right edge, in bar units. Used to detect that a scroll made
	// no further progress.
	RightOffset() float64

	// StartScroll begins a scroll session anchored at the given
	// x-coordinate. ScrollTo moves the viewport so the anchor follows
	// the new coordinate. EndScroll finalizes the session.
	StartScroll(x float64)
	ScrollTo(x float64)
	EndScroll()

	// Zoom scales the viewport by delta around the given x-coordinate.
	// Positive delta zooms in.
	Zoom(zoomPoint float64, delta float64)
}

// PriceMark is one tick on a price scale: a y-coordinate paired with the
// raw value it represents. Label formatting is left to the axis widget.
type PriceMark struct {
	Coordinate float64
	Value      float64
}

// PriceScale is the vertical viewport of a pane (or of a single overlay
// source). Implemented by the chart's logical model.
type PriceScale interface {
	// IsEmpty reports whether the scale has no price range yet.
	IsEmpty() bool

	// StartScroll begins a scroll session anchored at the given
	// y-coordinate. ScrollTo moves the range so the anchor follows the
	// new coordinate. EndScroll finalizes the session.
	StartScroll(y float64)
	ScrollTo(y float64)
	EndScroll()

	// RecomputeRange re-runs auto-ranging against the visible data.
	RecomputeRange()

	// Marks returns the tick marks to render on an axis widget.
	Marks() []PriceMark

	// Precision returns the number of fractional digits for labels.
	Precision() int
}

// HoveredSource pairs the data source currently under the pointer with
// the opaque hit target its renderer reported. Keeping the pair on the
// model lets a tooltip or crosshair binding stay stable across repaints.
type HoveredSource struct {
	Source DataSource
	Object *HitTarget
}

// ChartModel is the slice of the chart's logical model the pane core
// needs. All methods are expected to be cheap queries or synchronous
// mutations; none may block.
type ChartModel interface {
	TimeScale() TimeScale

	// SetAndSaveCrosshair places the crosshair at pane-local (x, y) and
	// saves it as the current position. ClearCrosshair removes it.
	// CrosshairPosition returns the saved position; CrosshairTimeIndex
	// returns the bar index under the crosshair, if any.
	SetAndSaveCrosshair(pane Pane, x, y float64)
	ClearCrosshair()
	CrosshairPosition() Point
	CrosshairTimeIndex() (TimePointIndex, bool)

	// HoveredSource and SetHoveredSource expose the globally hovered
	// (source, object) pair. SetHoveredSource(nil) clears it.
	HoveredSource() *HoveredSource
	SetHoveredSource(hovered *HoveredSource)

	// BackgroundTopColor and BackgroundBottomColor bound the vertical
	// background gradient of the content surface. Equal colors produce
	// a flat fill.
	BackgroundTopColor() gg.RGBA
	BackgroundBottomColor() gg.RGBA

	// CrosshairSource and WatermarkSource are pseudo-sources exposing
	// the same visual-view contract as ordinary data sources. Either
	// may be nil. GridSource supplies the background grid, also nil-able.
	CrosshairSource() DataSource
	WatermarkSource() DataSource
	GridSource() DataSource
}

// Pane is one horizontal chart region: an ordered set of data sources
// plus a left/right price scale pair. Implemented by the chart's logical
// model; PaneWidget holds a non-owning reference and must be detached
// via Destroy when the pane is removed from the model.
type Pane interface {
	// DataSources returns the pane's sources in front-to-back order.
	// The first source that claims a point wins hit-testing.
	DataSources() []DataSource

	// LeftPriceScale and RightPriceScale return the edge scales; a nil
	// return means that edge has no scale. DefaultPriceScale is the
	// scale drag-scrolling moves alongside the time scale.
	LeftPriceScale() PriceScale
	RightPriceScale() PriceScale
	DefaultPriceScale() PriceScale

	// LeftAxisVisible and RightAxisVisible drive the lifecycle of the
	// price-axis sub-widgets.
	LeftAxisVisible() bool
	RightAxisVisible() bool
}
