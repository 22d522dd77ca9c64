package main

import (
	"math"

	"github.com/gogpu/chartpane"
	"github.com/gogpu/gg"
)

// demoTimeScale maps bar indices to pane x-coordinates with a fixed
// bar spacing and a scrollable right offset.
type demoTimeScale struct {
	barCount    int
	barSpacing  float64
	width       float64
	rightOffset float64

	scrollAnchor float64
	scrollStart  float64
	scrolling    bool
}

func (s *demoTimeScale) IsEmpty() bool        { return s.barCount == 0 }
func (s *demoTimeScale) RightOffset() float64 { return s.rightOffset }

func (s *demoTimeScale) StartScroll(x float64) {
	s.scrollAnchor = x
	s.scrollStart = s.rightOffset
	s.scrolling = true
}

func (s *demoTimeScale) ScrollTo(x float64) {
	if !s.scrolling {
		s.StartScroll(x)
	}
	s.rightOffset = s.scrollStart + (x-s.scrollAnchor)/s.barSpacing
}

func (s *demoTimeScale) EndScroll() { s.scrolling = false }

func (s *demoTimeScale) Zoom(zoomPoint, delta float64) {
	factor := 1 + delta*0.1
	spacing := s.barSpacing * factor
	if spacing < 1 {
		spacing = 1
	}
	if spacing > 50 {
		spacing = 50
	}
	// Keep the bar under zoomPoint stationary.
	barsRight := (s.width - zoomPoint) / s.barSpacing
	s.barSpacing = spacing
	s.rightOffset += barsRight - (s.width-zoomPoint)/s.barSpacing
}

// indexToX projects a bar index into pane-local pixel space.
func (s *demoTimeScale) indexToX(i int) float64 {
	fromRight := float64(s.barCount-1-i) + s.rightOffset
	return s.width - 1 - fromRight*s.barSpacing
}

// xToIndex inverts indexToX to the nearest bar, false when outside the
// series.
func (s *demoTimeScale) xToIndex(x float64) (chartpane.TimePointIndex, bool) {
	fromRight := (s.width - 1 - x) / s.barSpacing
	i := s.barCount - 1 - int(math.Round(fromRight+s.rightOffset))
	if i < 0 || i >= s.barCount {
		return 0, false
	}
	return chartpane.TimePointIndex(i), true
}

// demoPriceScale is a linear price-to-pixel mapping with margin-padded
// auto-ranging over the full series.
type demoPriceScale struct {
	values    []float64
	height    float64
	minPrice  float64
	maxPrice  float64
	precision int

	scrollAnchor float64
	scrollMin    float64
	scrollMax    float64
	scrolling    bool
}

func (s *demoPriceScale) IsEmpty() bool { return s.maxPrice <= s.minPrice }

func (s *demoPriceScale) StartScroll(y float64) {
	s.scrollAnchor = y
	s.scrollMin = s.minPrice
	s.scrollMax = s.maxPrice
	s.scrolling = true
}

func (s *demoPriceScale) ScrollTo(y float64) {
	if !s.scrolling {
		s.StartScroll(y)
	}
	perPixel := (s.scrollMax - s.scrollMin) / s.height
	shift := (y - s.scrollAnchor) * perPixel
	s.minPrice = s.scrollMin + shift
	s.maxPrice = s.scrollMax + shift
}

func (s *demoPriceScale) EndScroll() { s.scrolling = false }

func (s *demoPriceScale) RecomputeRange() {
	if s.scrolling || len(s.values) == 0 {
		return
	}
	min, max := s.values[0], s.values[0]
	for _, v := range s.values[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	margin := (max - min) * 0.1
	if margin == 0 {
		margin = 1
	}
	s.minPrice = min - margin
	s.maxPrice = max + margin
}

func (s *demoPriceScale) Marks() []chartpane.PriceMark {
	if s.IsEmpty() {
		return nil
	}
	const targetMarks = 6
	step := niceStep((s.maxPrice - s.minPrice) / targetMarks)
	var marks []chartpane.PriceMark
	for v := math.Ceil(s.minPrice/step) * step; v <= s.maxPrice; v += step {
		marks = append(marks, chartpane.PriceMark{
			Coordinate: s.priceToY(v),
			Value:      v,
		})
	}
	return marks
}

func (s *demoPriceScale) Precision() int { return s.precision }

func (s *demoPriceScale) priceToY(price float64) float64 {
	t := (price - s.minPrice) / (s.maxPrice - s.minPrice)
	return (1 - t) * (s.height - 1)
}

// niceStep rounds a raw tick step up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// areaSource exposes the demo series as a DataSource with one area view.
type areaSource struct {
	model    *demoModel
	renderer *chartpane.AreaRenderer
	colors   chartpane.AreaFillColors
	lineType chartpane.LineType
}

type areaView struct{ s *areaSource }

func (v areaView) Renderer(height, width int) chartpane.Renderer {
	ts := v.s.model.timeScale
	ps := v.s.model.priceScale
	points := make([]chartpane.SeriesPoint, len(ps.values))
	for i, value := range ps.values {
		points[i] = chartpane.SeriesPoint{X: ts.indexToX(i), Y: ps.priceToY(value)}
	}
	v.s.renderer.SetData(&chartpane.AreaRendererData{
		Points:   points,
		Range:    &chartpane.VisibleRange{From: 0, To: len(points)},
		LineType: v.s.lineType,
		Colors:   v.s.colors,
		Baseline: float64(height - 1),
		BarWidth: ts.barSpacing,
	})
	return v.s.renderer
}

func (s *areaSource) PaneViews(chartpane.Pane) []chartpane.PaneView {
	return []chartpane.PaneView{areaView{s: s}}
}

func (s *areaSource) TopPaneViews(chartpane.Pane) []chartpane.PaneView { return nil }
func (s *areaSource) PriceScale() chartpane.PriceScale                 { return nil }

// crosshairSource rebuilds the crosshair renderer data from the model
// state on every paint.
type crosshairSource struct {
	model    *demoModel
	renderer *chartpane.CrosshairRenderer
}

type crosshairView struct{ s *crosshairSource }

func (v crosshairView) Renderer(_, _ int) chartpane.Renderer {
	m := v.s.model
	v.s.renderer.SetData(&chartpane.CrosshairRendererData{
		Point:       m.crosshair,
		VertVisible: m.crosshairVisible,
		HorzVisible: m.crosshairVisible,
		Color:       gg.RGB(0.45, 0.45, 0.5),
		LineWidth:   1,
		DashPattern: []float64{4, 4},
	})
	return v.s.renderer
}

func (s *crosshairSource) PaneViews(chartpane.Pane) []chartpane.PaneView {
	return []chartpane.PaneView{crosshairView{s: s}}
}

func (s *crosshairSource) TopPaneViews(chartpane.Pane) []chartpane.PaneView { return nil }
func (s *crosshairSource) PriceScale() chartpane.PriceScale                 { return nil }

// gridSource derives grid lines from the price marks and bar positions.
type gridSource struct {
	model    *demoModel
	renderer *chartpane.GridRenderer
}

type gridView struct{ s *gridSource }

func (v gridView) Renderer(_, width int) chartpane.Renderer {
	m := v.s.model
	var timeMarks []float64
	for i := 0; i < m.timeScale.barCount; i += 10 {
		x := m.timeScale.indexToX(i)
		if x >= 0 && x < float64(width) {
			timeMarks = append(timeMarks, x)
		}
	}
	var priceMarks []float64
	for _, mark := range m.priceScale.Marks() {
		priceMarks = append(priceMarks, mark.Coordinate)
	}
	v.s.renderer.SetData(&chartpane.GridRendererData{
		TimeMarks:  timeMarks,
		PriceMarks: priceMarks,
		Color:      gg.RGB(0.88, 0.89, 0.91),
		LineWidth:  1,
	})
	return v.s.renderer
}

func (s *gridSource) PaneViews(chartpane.Pane) []chartpane.PaneView {
	return []chartpane.PaneView{gridView{s: s}}
}

func (s *gridSource) TopPaneViews(chartpane.Pane) []chartpane.PaneView { return nil }
func (s *gridSource) PriceScale() chartpane.PriceScale                 { return nil }

// demoModel is a single-pane in-memory chart model.
type demoModel struct {
	timeScale  *demoTimeScale
	priceScale *demoPriceScale

	crosshair        chartpane.Point
	crosshairVisible bool
	hovered          *chartpane.HoveredSource

	topColor    gg.RGBA
	bottomColor gg.RGBA

	sources      []chartpane.DataSource
	crosshairSrc chartpane.DataSource
	watermark    chartpane.DataSource
	grid         chartpane.DataSource
}

func newDemoModel(cfg config) *demoModel {
	paneWidth := cfg.Width - cfg.AxisWidth
	m := &demoModel{
		timeScale: &demoTimeScale{
			barCount:   len(cfg.Series),
			barSpacing: cfg.BarSpacing,
			width:      float64(paneWidth),
		},
		priceScale: &demoPriceScale{
			values:    cfg.Series,
			height:    float64(cfg.Height),
			precision: cfg.Precision,
		},
		topColor:    gg.Hex(cfg.Background.Top),
		bottomColor: gg.Hex(cfg.Background.Bottom),
	}
	m.priceScale.RecomputeRange()

	m.sources = []chartpane.DataSource{&areaSource{
		model:    m,
		renderer: chartpane.NewAreaRenderer(),
		lineType: chartpane.LineTypeSimple,
		colors: chartpane.AreaFillColors{
			TopFill1:    gg.Hex(cfg.Area.TopFill1),
			TopFill2:    gg.Hex(cfg.Area.TopFill2),
			BottomFill1: gg.Hex(cfg.Area.BottomFill1),
			BottomFill2: gg.Hex(cfg.Area.BottomFill2),
		},
	}}
	m.crosshairSrc = &crosshairSource{model: m, renderer: chartpane.NewCrosshairRenderer()}
	m.grid = &gridSource{model: m, renderer: chartpane.NewGridRenderer()}
	if cfg.Watermark != "" {
		m.watermark = chartpane.NewStaticSource(&chartpane.WatermarkRenderer{
			Text:  cfg.Watermark,
			Color: gg.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.35},
		})
	}
	return m
}

func (m *demoModel) TimeScale() chartpane.TimeScale { return m.timeScale }

func (m *demoModel) SetAndSaveCrosshair(_ chartpane.Pane, x, y float64) {
	m.crosshair = chartpane.Point{X: x, Y: y}
	m.crosshairVisible = true
}

func (m *demoModel) ClearCrosshair() { m.crosshairVisible = false }

func (m *demoModel) CrosshairPosition() chartpane.Point { return m.crosshair }

func (m *demoModel) CrosshairTimeIndex() (chartpane.TimePointIndex, bool) {
	if !m.crosshairVisible {
		return 0, false
	}
	return m.timeScale.xToIndex(m.crosshair.X)
}

func (m *demoModel) HoveredSource() *chartpane.HoveredSource     { return m.hovered }
func (m *demoModel) SetHoveredSource(h *chartpane.HoveredSource) { m.hovered = h }

func (m *demoModel) BackgroundTopColor() gg.RGBA    { return m.topColor }
func (m *demoModel) BackgroundBottomColor() gg.RGBA { return m.bottomColor }

func (m *demoModel) CrosshairSource() chartpane.DataSource { return m.crosshairSrc }
func (m *demoModel) WatermarkSource() chartpane.DataSource { return m.watermark }
func (m *demoModel) GridSource() chartpane.DataSource      { return m.grid }

// demoPane exposes the model as a single pane with a right axis.
type demoPane struct{ model *demoModel }

func (p *demoPane) DataSources() []chartpane.DataSource     { return p.model.sources }
func (p *demoPane) LeftPriceScale() chartpane.PriceScale    { return nil }
func (p *demoPane) RightPriceScale() chartpane.PriceScale   { return p.model.priceScale }
func (p *demoPane) DefaultPriceScale() chartpane.PriceScale { return p.model.priceScale }
func (p *demoPane) LeftAxisVisible() bool                   { return false }
func (p *demoPane) RightAxisVisible() bool                  { return true }
