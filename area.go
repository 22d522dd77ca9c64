package chartpane

import (
	"math"

	"github.com/gogpu/gg"
)

// hardEdgeEpsilon separates the two middle gradient stops so the fill
// colors meet at the midpoint with a hard edge instead of a blend.
const hardEdgeEpsilon = 0.0001

// AreaFillColors are the four stops of the vertical fill gradient.
// TopFill1/TopFill2 cover the upper half, BottomFill1/BottomFill2 the
// lower half; the halves meet at the midpoint with a hard edge, which
// allows a two-tone split fill (positive vs. negative region).
type AreaFillColors struct {
	TopFill1    gg.RGBA
	TopFill2    gg.RGBA
	BottomFill1 gg.RGBA
	BottomFill2 gg.RGBA
}

// AreaRendererData is the per-frame input of an AreaRenderer.
type AreaRendererData struct {
	// Points are the series values in pane-local pixel space, x
	// monotonic in index. Range selects the visible slice; a nil Range
	// draws nothing.
	Points []SeriesPoint
	Range  *VisibleRange

	LineType LineType
	Colors   AreaFillColors

	// Baseline is the y-coordinate the fill closes down to.
	Baseline float64
	// BarWidth is the current width of one bar in pixels.
	BarWidth float64
}

// AreaRenderer fills the region bounded above by the interpolated series
// line and below by the baseline.
type AreaRenderer struct {
	data *AreaRendererData
}

// NewAreaRenderer creates an AreaRenderer with no data.
func NewAreaRenderer() *AreaRenderer {
	return &AreaRenderer{}
}

// SetData replaces the renderer's input. Passing nil disables drawing.
func (r *AreaRenderer) SetData(data *AreaRendererData) {
	r.data = data
}

// Draw implements Renderer. Empty data or a nil/empty visible range is a
// no-op, not an error.
func (r *AreaRenderer) Draw(ctx *gg.Context, _ bool, _ *HitTarget) {
	d := r.data
	if d == nil || len(d.Points) == 0 || d.Range == nil || d.Range.Length() <= 0 {
		return
	}

	ctx.ClearPath()
	r.buildPath(ctx)

	anchorY := d.Points[0].Y
	gradient := gg.NewLinearGradientBrush(0, anchorY-d.Baseline/3, 0, anchorY+d.Baseline/3).
		AddColorStop(0, d.Colors.TopFill1).
		AddColorStop(0.5-hardEdgeEpsilon, d.Colors.TopFill2).
		AddColorStop(0.5, d.Colors.BottomFill1).
		AddColorStop(1, d.Colors.BottomFill2)
	ctx.SetFillBrush(gradient)
	_ = ctx.Fill()
}

// buildPath emits the closed fill region into the sink: bounded above
// by the interpolated line across the visible range, below by the
// baseline. Callers have verified the data is drawable.
func (r *AreaRenderer) buildPath(sink PathSink) {
	d := r.data
	if d.Range.Length() == 1 {
		// A lone point still shows up as a bar-wide slab.
		p := d.Points[d.Range.From]
		half := d.BarWidth / 2
		sink.MoveTo(p.X-half, p.Y)
		sink.LineTo(p.X+half, p.Y)
		sink.LineTo(p.X+half, d.Baseline)
		sink.LineTo(p.X-half, d.Baseline)
		sink.ClosePath()
		return
	}

	from := d.Range.From
	if from == 0 {
		// Index 0 anchors the baseline corner; walking starts at 1.
		from = 1
	}
	first := d.Points[from]
	last := d.Points[d.Range.To-1]

	sink.MoveTo(first.X, d.Points[0].Y)
	sink.LineTo(first.X, first.Y)
	walkLine(sink, d.Points, d.LineType, VisibleRange{From: from, To: d.Range.To})
	sink.LineTo(last.X, d.Baseline)
	sink.LineTo(first.X, d.Baseline)
	sink.ClosePath()
}

// HitTest implements HitTester. The renderer claims a point when it lies
// within half a bar width of a visible series point, vertically between
// the line and the baseline.
func (r *AreaRenderer) HitTest(x, y float64) *HitTarget {
	d := r.data
	if d == nil || len(d.Points) == 0 || d.Range == nil || d.Range.Length() <= 0 {
		return nil
	}
	half := d.BarWidth / 2
	for i := d.Range.From; i < d.Range.To && i < len(d.Points); i++ {
		p := d.Points[i]
		if math.Abs(x-p.X) > half {
			continue
		}
		top := math.Min(p.Y, d.Baseline)
		bottom := math.Max(p.Y, d.Baseline)
		if y >= top && y <= bottom {
			return &HitTarget{Kind: HitTargetSeries, Index: i}
		}
	}
	return nil
}
