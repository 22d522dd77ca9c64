package chartpane

import (
	"time"

	"github.com/gogpu/gg"
)

// manualClock is a Clock advanced explicitly by the test.
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Unix(1000, 0)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// manualScheduler captures scheduled frame callbacks so the test can
// fire them at chosen times.
type manualScheduler struct {
	pending   func(now time.Time)
	cancelled int
	scheduled int
}

func (s *manualScheduler) Schedule(fn func(now time.Time)) func() {
	s.pending = fn
	s.scheduled++
	return func() {
		if s.pending != nil {
			s.cancelled++
			s.pending = nil
		}
	}
}

// fire runs the pending callback, if any, clearing it first so the
// callback may reschedule.
func (s *manualScheduler) fire(now time.Time) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(now)
	return true
}

// fakeTimeScale records every scroll and zoom call.
type fakeTimeScale struct {
	empty bool

	scrollStarted   int
	scrollEnded     int
	scrolledTo      []float64
	zoomPoints      []float64
	zoomDeltas      []float64
	lastRightOffset float64
}

func (s *fakeTimeScale) IsEmpty() bool        { return s.empty }
func (s *fakeTimeScale) RightOffset() float64 { return s.lastRightOffset }
func (s *fakeTimeScale) StartScroll(float64)  { s.scrollStarted++ }
func (s *fakeTimeScale) EndScroll()           { s.scrollEnded++ }

func (s *fakeTimeScale) ScrollTo(x float64) {
	s.scrolledTo = append(s.scrolledTo, x)
	// Offset follows the scroll position so progress is observable.
	s.lastRightOffset = x
}

func (s *fakeTimeScale) Zoom(zoomPoint, delta float64) {
	s.zoomPoints = append(s.zoomPoints, zoomPoint)
	s.zoomDeltas = append(s.zoomDeltas, delta)
}

func (s *fakeTimeScale) mutated() bool {
	return s.scrollStarted > 0 || s.scrollEnded > 0 ||
		len(s.scrolledTo) > 0 || len(s.zoomDeltas) > 0
}

// fakePriceScale records scroll sessions and range recomputations.
type fakePriceScale struct {
	empty bool

	scrollStarted int
	scrollEnded   int
	scrolledTo    []float64
	recomputed    int
	marks         []PriceMark
	precision     int
}

func (s *fakePriceScale) IsEmpty() bool       { return s.empty }
func (s *fakePriceScale) StartScroll(float64) { s.scrollStarted++ }
func (s *fakePriceScale) EndScroll()          { s.scrollEnded++ }
func (s *fakePriceScale) ScrollTo(y float64)  { s.scrolledTo = append(s.scrolledTo, y) }
func (s *fakePriceScale) RecomputeRange()     { s.recomputed++ }
func (s *fakePriceScale) Marks() []PriceMark  { return s.marks }
func (s *fakePriceScale) Precision() int      { return s.precision }

// fakeModel implements ChartModel with recording state.
type fakeModel struct {
	timeScale *fakeTimeScale

	crosshair        *Point
	crosshairCleared int
	crosshairIndex   TimePointIndex
	hasIndex         bool

	hovered *HoveredSource

	topColor    gg.RGBA
	bottomColor gg.RGBA

	crosshairSource DataSource
	watermarkSource DataSource
	gridSource      DataSource
}

func newFakeModel() *fakeModel {
	return &fakeModel{timeScale: &fakeTimeScale{}}
}

func (m *fakeModel) TimeScale() TimeScale { return m.timeScale }

func (m *fakeModel) SetAndSaveCrosshair(_ Pane, x, y float64) {
	m.crosshair = &Point{X: x, Y: y}
}

func (m *fakeModel) ClearCrosshair() {
	m.crosshair = nil
	m.crosshairCleared++
}

func (m *fakeModel) CrosshairPosition() Point {
	if m.crosshair == nil {
		return Point{}
	}
	return *m.crosshair
}

func (m *fakeModel) CrosshairTimeIndex() (TimePointIndex, bool) {
	return m.crosshairIndex, m.hasIndex
}

func (m *fakeModel) HoveredSource() *HoveredSource        { return m.hovered }
func (m *fakeModel) SetHoveredSource(h *HoveredSource)    { m.hovered = h }
func (m *fakeModel) BackgroundTopColor() gg.RGBA          { return m.topColor }
func (m *fakeModel) BackgroundBottomColor() gg.RGBA       { return m.bottomColor }
func (m *fakeModel) CrosshairSource() DataSource          { return m.crosshairSource }
func (m *fakeModel) WatermarkSource() DataSource          { return m.watermarkSource }
func (m *fakeModel) GridSource() DataSource               { return m.gridSource }

// fakePane implements Pane.
type fakePane struct {
	sources      []DataSource
	left         PriceScale
	right        PriceScale
	defaultScale PriceScale
	leftVisible  bool
	rightVisible bool
}

func (p *fakePane) DataSources() []DataSource    { return p.sources }
func (p *fakePane) LeftPriceScale() PriceScale   { return p.left }
func (p *fakePane) RightPriceScale() PriceScale  { return p.right }
func (p *fakePane) DefaultPriceScale() PriceScale {
	return p.defaultScale
}
func (p *fakePane) LeftAxisVisible() bool  { return p.leftVisible }
func (p *fakePane) RightAxisVisible() bool { return p.rightVisible }

// recordingRenderer logs draw calls into a shared slice.
type recordingRenderer struct {
	name string
	log  *[]string

	hitTarget *HitTarget // returned from HitTest when non-nil
}

func (r *recordingRenderer) Draw(_ *gg.Context, hovered bool, _ *HitTarget) {
	entry := r.name + ":fg"
	if hovered {
		entry += ":hovered"
	}
	*r.log = append(*r.log, entry)
}

// backgroundRecordingRenderer additionally participates in the
// background pass.
type backgroundRecordingRenderer struct {
	recordingRenderer
}

func (r *backgroundRecordingRenderer) DrawBackground(_ *gg.Context, _ bool, _ *HitTarget) {
	*r.log = append(*r.log, r.name+":bg")
}

// hitRenderer claims every point with its fixed target.
type hitRenderer struct {
	target *HitTarget
}

func (r *hitRenderer) Draw(*gg.Context, bool, *HitTarget) {}

func (r *hitRenderer) HitTest(_, _ float64) *HitTarget { return r.target }

// missRenderer exposes hit-testing but never claims a point.
type missRenderer struct{}

func (missRenderer) Draw(*gg.Context, bool, *HitTarget) {}

func (missRenderer) HitTest(_, _ float64) *HitTarget { return nil }

// blindRenderer has no hit-test capability at all.
type blindRenderer struct{}

func (blindRenderer) Draw(*gg.Context, bool, *HitTarget) {}

// hookView wraps a renderer and records click/move hook invocations.
type hookView struct {
	renderer Renderer

	clicks []Point
	moves  []Point
}

func (v *hookView) Renderer(_, _ int) Renderer { return v.renderer }

func (v *hookView) Click(p Point, _ *HitTarget) { v.clicks = append(v.clicks, p) }

func (v *hookView) Move(p Point, _ *HitTarget) { v.moves = append(v.moves, p) }

// fakeSource is a DataSource with fixed view lists.
type fakeSource struct {
	views    []PaneView
	topViews []PaneView
	scale    PriceScale
}

func (s *fakeSource) PaneViews(Pane) []PaneView    { return s.views }
func (s *fakeSource) TopPaneViews(Pane) []PaneView { return s.topViews }
func (s *fakeSource) PriceScale() PriceScale       { return s.scale }

// pathRecorder captures path construction for shape assertions.
type pathRecorder struct {
	ops    []string
	points []Point
	start  *Point
	closed bool
}

func (r *pathRecorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, "move")
	p := Point{X: x, Y: y}
	r.points = append(r.points, p)
	if r.start == nil {
		r.start = &p
	}
}

func (r *pathRecorder) LineTo(x, y float64) {
	r.ops = append(r.ops, "line")
	r.points = append(r.points, Point{X: x, Y: y})
}

func (r *pathRecorder) QuadraticTo(_, _, x, y float64) {
	r.ops = append(r.ops, "quad")
	r.points = append(r.points, Point{X: x, Y: y})
}

func (r *pathRecorder) ClosePath() {
	r.ops = append(r.ops, "close")
	r.closed = true
}
