package chartpane

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"
)

// Multiplier converting a pinch scale delta into a time-axis zoom delta.
const pinchZoomFactor = 5.0

// startScrollPosition is the origin of a drag: pane-local and client
// coordinates plus the timestamp of the first qualifying movement.
type startScrollPosition struct {
	local  Point
	client Point
	time   time.Time
}

// PaneWidget is the interaction controller and paint driver of one
// chart pane. It owns two canvas surfaces (content and overlay),
// translates raw pointer/touch events into crosshair, scroll, zoom and
// click actions against the chart model, and repaints on invalidation.
//
// The widget holds a non-owning reference to its Pane. Once the pane is
// destroyed (Destroy or SetPane(nil)), every event handler and paint
// call becomes a silent no-op; destruction is a normal lifecycle
// transition that can race with queued input.
//
// All methods must be called from the single goroutine that owns the
// chart. Precedence between overlapping interaction modes is resolved
// deterministically: tracking mode masks ordinary crosshair moves and
// scroll starts, and an active pinch suppresses drag-scroll entirely.
type PaneWidget struct {
	model ChartModel
	pane  Pane
	size  Size

	content *canvasBinding
	overlay *canvasBinding

	leftAxis  *PriceAxisWidget
	rightAxis *PriceAxisWidget

	opts widgetOptions

	// Transient interaction session state.
	startScrollPos        *startScrollPosition
	isScrolling           bool
	startTrackPoint       *Point
	initCrosshairPos      *Point
	exitTrackingOnNextTry bool
	longTap               bool
	pinchActive           bool
	prevPinchScale        float64
	scrollAnimation       *KineticAnimation
	cancelTick            func()

	clickHandlers map[int]ClickCallback
	nextClickID   int
}

// NewPaneWidget creates a widget bound to the given model and pane.
func NewPaneWidget(model ChartModel, pane Pane, opts ...Option) *PaneWidget {
	o := defaultWidgetOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &PaneWidget{
		model:         model,
		pane:          pane,
		content:       newCanvasBinding(),
		overlay:       newCanvasBinding(),
		opts:          o,
		clickHandlers: make(map[int]ClickCallback),
	}
}

// Pane returns the widget's pane reference; nil once destroyed.
func (w *PaneWidget) Pane() Pane {
	return w.pane
}

// SetPane rebinds the widget to another pane (or nil on destruction),
// discarding any interaction session in progress.
func (w *PaneWidget) SetPane(pane Pane) {
	w.terminateKineticAnimation()
	w.exitTrackingMode()
	w.startScrollPos = nil
	w.isScrolling = false
	w.pinchActive = false
	w.pane = pane
}

// Destroy detaches the widget from its pane. Queued events arriving
// afterwards are dropped without error.
func (w *PaneWidget) Destroy() {
	w.SetPane(nil)
	w.leftAxis = nil
	w.rightAxis = nil
	w.clickHandlers = make(map[int]ClickCallback)
}

// Size returns the current pane dimensions.
func (w *PaneWidget) Size() Size {
	return w.size
}

// SetSize resizes the pane's surfaces. Negative dimensions are a fatal
// input-validation failure and panic before any state changes.
func (w *PaneWidget) SetSize(size Size) {
	if size.Width < 0 || size.Height < 0 {
		panic(fmt.Sprintf("chartpane: invalid pane size %dx%d", size.Width, size.Height))
	}
	if w.size == size {
		return
	}
	w.size = size
	w.content.resize(size)
	w.overlay.resize(size)
}

// SetLeftAxisSize resizes the left price-axis sub-widget, if present.
func (w *PaneWidget) SetLeftAxisSize(size Size) {
	if w.leftAxis != nil {
		w.leftAxis.SetSize(size)
	}
}

// SetRightAxisSize resizes the right price-axis sub-widget, if present.
func (w *PaneWidget) SetRightAxisSize(size Size) {
	if w.rightAxis != nil {
		w.rightAxis.SetSize(size)
	}
}

// LeftAxis returns the left price-axis sub-widget, or nil while the
// left axis is hidden.
func (w *PaneWidget) LeftAxis() *PriceAxisWidget {
	return w.leftAxis
}

// RightAxis returns the right price-axis sub-widget, or nil while the
// right axis is hidden.
func (w *PaneWidget) RightAxis() *PriceAxisWidget {
	return w.rightAxis
}

// ContentSnapshot exports a raster copy of the content surface.
// Returns nil while the pane has zero area.
func (w *PaneWidget) ContentSnapshot() image.Image {
	return w.content.snapshot()
}

// OverlaySnapshot exports a raster copy of the overlay surface.
// Returns nil while the pane has zero area.
func (w *PaneWidget) OverlaySnapshot() image.Image {
	return w.overlay.snapshot()
}

// SubscribeClick registers a callback for the public "clicked"
// notification and returns its unsubscribe function.
func (w *PaneWidget) SubscribeClick(fn ClickCallback) (unsubscribe func()) {
	id := w.nextClickID
	w.nextClickID++
	w.clickHandlers[id] = fn
	return func() { delete(w.clickHandlers, id) }
}

// HitTest queries the pane's sources front to back for the first view
// whose renderer claims the point. Returns nil when nothing matches or
// the pane is destroyed.
func (w *PaneWidget) HitTest(x, y float64) *HitTestResult {
	return hitTestPane(w.pane, w.size.Height, w.size.Width, x, y)
}

// MouseEnter places the crosshair at the entry point. Touch-primary
// hosts suppress this so no ghost crosshair appears before a tap.
func (w *PaneWidget) MouseEnter(e InputEvent) {
	if w.pane == nil {
		return
	}
	if w.opts.touchMode {
		return
	}
	w.setCrosshair(e.LocalX, e.LocalY)
}

// MouseDown begins a pointer interaction: it arms a pending tracking-
// mode exit when a previous long-press session is still active, cancels
// any in-flight kinetic animation, lets the host clear selection/focus,
// and either re-anchors the tracking origin or moves the crosshair.
func (w *PaneWidget) MouseDown(e InputEvent) {
	w.longTap = false
	w.exitTrackingOnNextTry = w.startTrackPoint != nil
	if w.pane == nil {
		return
	}
	w.terminateKineticAnimation()
	if w.opts.beforeInteraction != nil {
		w.opts.beforeInteraction()
	}
	if w.startTrackPoint != nil {
		// Re-anchor the session so further movement is measured from
		// this press.
		pos := w.model.CrosshairPosition()
		w.initCrosshairPos = &pos
		w.startTrackPoint = &Point{X: e.LocalX, Y: e.LocalY}
		return
	}
	w.setCrosshair(e.LocalX, e.LocalY)
}

// MouseMove handles hover movement with no button pressed.
func (w *PaneWidget) MouseMove(e InputEvent) {
	if w.pane == nil {
		return
	}
	if w.preventCrosshairMove() {
		w.clearCrosshair()
		return
	}
	w.setCrosshair(e.LocalX, e.LocalY)
	w.updateHover(e.Local())
}

// PressedMouseMove handles drag movement. In tracking mode the
// crosshair follows the pointer's delta from the drag origin rather
// than its absolute position; independently, the drag may begin or
// continue a viewport scroll.
func (w *PaneWidget) PressedMouseMove(e InputEvent) {
	if w.pane == nil {
		return
	}
	if w.startTrackPoint != nil {
		delta := e.Local().Sub(*w.startTrackPoint)
		pos := w.initCrosshairPos.Add(delta)
		w.setCrosshair(pos.X, pos.Y)
	} else if !w.preventCrosshairMove() {
		w.setCrosshair(e.LocalX, e.LocalY)
	}
	w.performScroll(e)
}

// MouseClick dispatches a click to the hit view, fires the public
// clicked notification and consumes a pending tracking-mode exit. A tap
// concluding a long press is not a click and is swallowed.
func (w *PaneWidget) MouseClick(e InputEvent) {
	if w.pane == nil {
		return
	}
	if w.longTap {
		w.longTap = false
		if w.exitTrackingOnNextTry {
			w.exitTrackingMode()
		}
		return
	}
	p := e.Local()
	if res := w.HitTest(p.X, p.Y); res != nil {
		if ch, ok := res.View.(ClickHandler); ok {
			ch.Click(p, res.Target)
		}
	}
	var index *TimePointIndex
	if idx, ok := w.model.CrosshairTimeIndex(); ok {
		index = &idx
	}
	for _, fn := range w.clickHandlers {
		fn(index, p)
	}
	if w.exitTrackingOnNextTry {
		w.exitTrackingMode()
	}
}

// MouseUp ends the pressed phase of a gesture. An armed kinetic
// animation with residual velocity takes over the scroll session;
// otherwise the session finalizes immediately.
func (w *PaneWidget) MouseUp(e InputEvent) {
	if w.pane == nil {
		return
	}
	w.pinchActive = false
	w.endScroll(e)
}

// LongTap flags a long press and, on hosts gating the crosshair behind
// it, enters tracking mode anchored at the tap point.
func (w *PaneWidget) LongTap(e InputEvent) {
	w.longTap = true
	if w.pane == nil {
		return
	}
	if w.opts.touchMode && w.opts.longTapTracking && w.startTrackPoint == nil {
		w.startTrackingMode(e.Local(), e.Local())
	}
}

// MouseLeave clears the hover state and, on mouse-primary hosts, the
// crosshair. Touch-primary hosts get no meaningful leave signal.
func (w *PaneWidget) MouseLeave(_ InputEvent) {
	if w.pane == nil {
		return
	}
	w.model.SetHoveredSource(nil)
	if !w.opts.touchMode {
		w.clearCrosshair()
	}
}

// PinchStart resets the reference scale for a pinch gesture. Pinch
// suppresses drag-scroll until the gesture's fingers are released: both
// would otherwise fight over the same viewport transform.
func (w *PaneWidget) PinchStart() {
	w.prevPinchScale = 1
	w.pinchActive = true
	if w.pane == nil {
		return
	}
	w.terminateKineticAnimation()
}

// Pinch applies a zoom step proportional to the scale change since the
// previous sample, centered at the pinch midpoint.
func (w *PaneWidget) Pinch(middle Point, scale float64) {
	if w.pane == nil || !w.opts.pinchZoom {
		return
	}
	w.model.TimeScale().Zoom(middle.X, (scale-w.prevPinchScale)*pinchZoomFactor)
	w.prevPinchScale = scale
}

// StartTrackingMode enters tracking mode programmatically: the
// crosshair is placed at crosshairPos and subsequent pressed movement
// shifts it by the pointer's delta from startTrack.
func (w *PaneWidget) StartTrackingMode(startTrack, crosshairPos Point) {
	if w.pane == nil {
		return
	}
	w.startTrackingMode(startTrack, crosshairPos)
}

func (w *PaneWidget) startTrackingMode(startTrack, crosshairPos Point) {
	w.exitTrackingOnNextTry = false
	w.startTrackPoint = &startTrack
	w.initCrosshairPos = &crosshairPos
	w.setCrosshair(crosshairPos.X, crosshairPos.Y)
	Logger().Debug("tracking mode started", "x", startTrack.X, "y", startTrack.Y)
}

func (w *PaneWidget) exitTrackingMode() {
	w.startTrackPoint = nil
	w.initCrosshairPos = nil
	w.exitTrackingOnNextTry = false
}

// preventCrosshairMove reports whether ordinary crosshair moves are
// suppressed: the host gates the crosshair behind a long press and no
// tracking session is active.
func (w *PaneWidget) preventCrosshairMove() bool {
	return w.opts.longTapTracking && w.startTrackPoint == nil
}

func (w *PaneWidget) setCrosshair(x, y float64) {
	w.model.SetAndSaveCrosshair(w.pane, x, y)
}

func (w *PaneWidget) clearCrosshair() {
	w.model.ClearCrosshair()
}

// updateHover recomputes the hovered (source, object) pair and invokes
// the view's move hook on a hit.
func (w *PaneWidget) updateHover(p Point) {
	res := w.HitTest(p.X, p.Y)
	if res == nil {
		w.model.SetHoveredSource(nil)
		return
	}
	w.model.SetHoveredSource(&HoveredSource{Source: res.Source, Object: res.Target})
	if mh, ok := res.View.(MoveHandler); ok {
		mh.Move(p, res.Target)
	}
}

// performScroll begins or continues a drag-scroll session. Tracking
// mode and an active pinch both suppress scrolling; the per-input-type
// scroll options decide which axes follow the pointer.
func (w *PaneWidget) performScroll(e InputEvent) {
	if w.startTrackPoint != nil || w.pinchActive {
		return
	}
	timeScale := w.model.TimeScale()
	if timeScale.IsEmpty() {
		return
	}
	scrollTime, scrollPrice := w.scrollAxes(e.IsTouch)
	if !scrollTime && !scrollPrice {
		return
	}

	now := w.opts.clock.Now()
	if w.startScrollPos == nil {
		w.startScrollPos = &startScrollPosition{
			local:  e.Local(),
			client: Point{X: e.ClientX, Y: e.ClientY},
			time:   now,
		}
	}
	if w.kineticEnabled(e.IsTouch) {
		if w.scrollAnimation == nil {
			w.scrollAnimation = NewDefaultKineticAnimation()
			w.scrollAnimation.AddPosition(w.startScrollPos.local.X, w.startScrollPos.time)
		}
		w.scrollAnimation.AddPosition(e.LocalX, now)
	}

	moved := e.ClientX != w.startScrollPos.client.X || e.ClientY != w.startScrollPos.client.Y
	if !w.isScrolling && moved {
		if scrollTime {
			timeScale.StartScroll(w.startScrollPos.local.X)
		}
		if scrollPrice {
			if scale := w.pane.DefaultPriceScale(); scale != nil && !scale.IsEmpty() {
				scale.StartScroll(w.startScrollPos.local.Y)
			}
		}
		w.isScrolling = true
		Logger().Debug("scroll started", "touch", e.IsTouch)
	}
	if w.isScrolling {
		if scrollTime {
			timeScale.ScrollTo(e.LocalX)
		}
		if scrollPrice {
			if scale := w.pane.DefaultPriceScale(); scale != nil && !scale.IsEmpty() {
				scale.ScrollTo(e.LocalY)
			}
		}
	}
}

// scrollAxes resolves the per-input-type options into the axes a drag
// may scroll.
func (w *PaneWidget) scrollAxes(isTouch bool) (scrollTime, scrollPrice bool) {
	if isTouch {
		return w.opts.scroll.HorzTouchDrag, w.opts.scroll.VertTouchDrag
	}
	return w.opts.scroll.PressedMouseMove, w.opts.scroll.PressedMouseMove
}

func (w *PaneWidget) kineticEnabled(isTouch bool) bool {
	if isTouch {
		return w.opts.kinetic.Touch
	}
	return w.opts.kinetic.Mouse
}

// endScroll hands an armed kinetic animation the scroll session, or
// finalizes it immediately when no residual velocity is left.
func (w *PaneWidget) endScroll(e InputEvent) {
	if !w.isScrolling {
		return
	}
	now := w.opts.clock.Now()
	if w.scrollAnimation != nil {
		w.scrollAnimation.Start(e.LocalX, now)
	}
	if w.scrollAnimation == nil || w.scrollAnimation.Finished(now) {
		w.finishScroll()
		return
	}
	Logger().Debug("kinetic scroll handoff")
	w.scheduleKineticTick()
}

// finishScroll ends the model's scroll sessions and clears the
// transient drag state.
func (w *PaneWidget) finishScroll() {
	w.model.TimeScale().EndScroll()
	if w.pane != nil {
		if scale := w.pane.DefaultPriceScale(); scale != nil && !scale.IsEmpty() {
			scale.EndScroll()
		}
	}
	w.startScrollPos = nil
	w.isScrolling = false
	w.scrollAnimation = nil
}

// terminateKineticAnimation cancels a running animation and, when it
// still owned an open scroll session, finalizes that session.
func (w *PaneWidget) terminateKineticAnimation() {
	if w.cancelTick != nil {
		w.cancelTick()
		w.cancelTick = nil
	}
	if w.scrollAnimation == nil {
		return
	}
	w.scrollAnimation.Terminate()
	if w.isScrolling {
		w.finishScroll()
	}
	w.scrollAnimation = nil
}

// scheduleKineticTick queues exactly one animation-frame callback.
func (w *PaneWidget) scheduleKineticTick() {
	if w.cancelTick != nil {
		return
	}
	w.cancelTick = w.opts.scheduler.Schedule(w.kineticTick)
}

// kineticTick applies one step of the kinetic animation. A stale tick
// after termination is swallowed before any model mutation.
func (w *PaneWidget) kineticTick(now time.Time) {
	w.cancelTick = nil
	anim := w.scrollAnimation
	if anim == nil || anim.Terminated() {
		return
	}
	if w.pane == nil {
		return
	}
	timeScale := w.model.TimeScale()
	finished := anim.Finished(now)
	prevOffset := timeScale.RightOffset()
	timeScale.ScrollTo(anim.Position(now))
	if timeScale.RightOffset() == prevOffset {
		// The viewport stopped responding (edge reached); carrying on
		// would burn frames without visible motion.
		finished = true
	}
	if finished {
		w.finishScroll()
		return
	}
	w.scheduleKineticTick()
}

// Paint runs the pane's paint pipeline at the given invalidation level.
func (w *PaneWidget) Paint(level InvalidationLevel) {
	if level == InvalidationNone || w.pane == nil {
		return
	}
	if level > InvalidationCursor {
		w.recalculatePriceScales()
	}
	w.updateAxisWidgets()
	if w.leftAxis != nil {
		w.leftAxis.Paint(level)
	}
	if w.rightAxis != nil {
		w.rightAxis.Paint(level)
	}
	if level > InvalidationCursor {
		w.paintContent()
	}
	w.paintOverlay()
}

// recalculatePriceScales re-runs auto-ranging for the pane's edge
// scales and for every overlay source that carries its own scale.
func (w *PaneWidget) recalculatePriceScales() {
	left := w.pane.LeftPriceScale()
	right := w.pane.RightPriceScale()
	if left != nil {
		left.RecomputeRange()
	}
	if right != nil {
		right.RecomputeRange()
	}
	for _, source := range w.pane.DataSources() {
		scale := source.PriceScale()
		if scale == nil || scale == left || scale == right {
			continue
		}
		scale.RecomputeRange()
	}
}

// updateAxisWidgets creates and destroys the price-axis sub-widgets to
// match the pane's visibility flags.
func (w *PaneWidget) updateAxisWidgets() {
	if w.pane.LeftAxisVisible() {
		if w.leftAxis == nil {
			w.leftAxis = NewPriceAxisWidget(w.pane.LeftPriceScale(), AxisLeft)
		}
	} else {
		w.leftAxis = nil
	}
	if w.pane.RightAxisVisible() {
		if w.rightAxis == nil {
			w.rightAxis = NewPriceAxisWidget(w.pane.RightPriceScale(), AxisRight)
		}
	} else {
		w.rightAxis = nil
	}
}

// paintContent repaints the lower surface: background gradient, grid,
// watermark, then every source's background views followed by every
// source's foreground views. The two-pass split guarantees no source's
// foreground is occluded by another source's background.
func (w *PaneWidget) paintContent() {
	ctx := w.content.context()
	if ctx == nil {
		return
	}
	w.paintBackground(ctx)
	w.drawSourceForeground(ctx, w.model.GridSource())
	w.drawSourceForeground(ctx, w.model.WatermarkSource())
	for _, source := range w.pane.DataSources() {
		w.drawSourceBackground(ctx, source)
	}
	for _, source := range w.pane.DataSources() {
		w.drawSourceForeground(ctx, source)
	}
}

// paintOverlay repaints the upper surface: top views of every source,
// then the crosshair topmost.
func (w *PaneWidget) paintOverlay() {
	ctx := w.overlay.context()
	if ctx == nil {
		return
	}
	ctx.Clear()
	for _, source := range w.pane.DataSources() {
		w.drawViews(ctx, source, source.TopPaneViews(w.pane), false)
	}
	w.drawSourceForeground(ctx, w.model.CrosshairSource())
}

func (w *PaneWidget) paintBackground(ctx *gg.Context) {
	top := w.model.BackgroundTopColor()
	bottom := w.model.BackgroundBottomColor()
	if top == bottom {
		ctx.ClearWithColor(top)
		return
	}
	gradient := gg.NewLinearGradientBrush(0, 0, 0, float64(w.size.Height)).
		AddColorStop(0, top).
		AddColorStop(1, bottom)
	ctx.ClearPath()
	ctx.DrawRectangle(0, 0, float64(w.size.Width), float64(w.size.Height))
	ctx.SetFillBrush(gradient)
	_ = ctx.Fill()
}

func (w *PaneWidget) drawSourceBackground(ctx *gg.Context, source DataSource) {
	if source == nil {
		return
	}
	w.drawViews(ctx, source, source.PaneViews(w.pane), true)
}

func (w *PaneWidget) drawSourceForeground(ctx *gg.Context, source DataSource) {
	if source == nil {
		return
	}
	w.drawViews(ctx, source, source.PaneViews(w.pane), false)
}

// drawViews renders one source's views, telling each renderer whether
// its source is hovered and passing the opaque hit target along.
func (w *PaneWidget) drawViews(ctx *gg.Context, source DataSource, views []PaneView, background bool) {
	hovered := w.model.HoveredSource()
	isHovered := hovered != nil && hovered.Source == source
	var hit *HitTarget
	if isHovered {
		hit = hovered.Object
	}
	for _, view := range views {
		renderer := view.Renderer(w.size.Height, w.size.Width)
		if renderer == nil {
			continue
		}
		if background {
			if bd, ok := renderer.(BackgroundDrawer); ok {
				bd.DrawBackground(ctx, isHovered, hit)
			}
			continue
		}
		renderer.Draw(ctx, isHovered, hit)
	}
}
