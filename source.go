package chartpane

import "github.com/gogpu/gg"

// HitTargetKind discriminates the payload of a HitTarget. Each renderer
// kind interprets only its own payload shape; the controller passes the
// value through without looking inside.
type HitTargetKind int

const (
	// HitTargetSeries marks a hit on a series body; Index is the data
	// point index.
	HitTargetSeries HitTargetKind = iota
	// HitTargetShape marks a hit on a drawing or shape; ExternalID
	// identifies the shape.
	HitTargetShape
	// HitTargetText marks a hit on a label or text block.
	HitTargetText
)

// HitTarget is the opaque payload a renderer returns from a successful
// hit-test. It travels with the hovered source so the renderer can draw
// a distinguishing highlight on the next repaint.
type HitTarget struct {
	Kind       HitTargetKind
	ExternalID string
	Index      int
}

// Renderer draws one view of one source at the pane's current size.
// Draw receives whether the owning source is hovered and, if so, the
// hit target recorded when the hover was established.
type Renderer interface {
	Draw(ctx *gg.Context, hovered bool, hit *HitTarget)
}

// BackgroundDrawer is implemented by renderers that also paint below
// every source's foreground. The content surface draws all sources'
// backgrounds first, then all foregrounds, so no source's foreground is
// occluded by another source's background.
type BackgroundDrawer interface {
	DrawBackground(ctx *gg.Context, hovered bool, hit *HitTarget)
}

// HitTester is implemented by renderers that can claim a point.
// Renderers without it are simply skipped during hit-testing.
type HitTester interface {
	// HitTest reports whether the renderer claims pane-local (x, y),
	// returning a non-nil target on a hit.
	HitTest(x, y float64) *HitTarget
}

// PaneView is a per-pane, per-source renderable unit.
type PaneView interface {
	// Renderer resolves the view to a renderer for the given pane
	// dimensions. A nil return means there is nothing to draw.
	Renderer(height, width int) Renderer
}

// ClickHandler is an optional PaneView hook invoked when the view's
// renderer claims a click.
type ClickHandler interface {
	Click(p Point, target *HitTarget)
}

// MoveHandler is an optional PaneView hook invoked when the pointer
// hovers over the view's renderer.
type MoveHandler interface {
	Move(p Point, target *HitTarget)
}

// DataSource is any chart element producing visual views: a series, a
// drawing, the watermark or the crosshair.
type DataSource interface {
	// PaneViews returns the source's ordinary views for the given pane.
	// TopPaneViews returns views painted on the overlay surface above
	// everything except the crosshair; most sources return nil.
	PaneViews(pane Pane) []PaneView
	TopPaneViews(pane Pane) []PaneView

	// PriceScale returns the source's own scale, or nil when the source
	// rides one of the pane's edge scales. Overlay sources with their
	// own scale get re-ranged during a full repaint.
	PriceScale() PriceScale
}
