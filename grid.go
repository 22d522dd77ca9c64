package chartpane

import "github.com/gogpu/gg"

// GridRendererData lists the grid lines of one frame as pane-local
// coordinates: TimeMarks are x positions of vertical lines, PriceMarks
// are y positions of horizontal lines.
type GridRendererData struct {
	TimeMarks  []float64
	PriceMarks []float64
	Color      gg.RGBA
	LineWidth  float64
	// DashPattern of alternating on/off lengths; empty draws solid.
	DashPattern []float64
}

// GridRenderer paints the background grid of a pane.
type GridRenderer struct {
	data *GridRendererData
}

// NewGridRenderer creates a GridRenderer with no data.
func NewGridRenderer() *GridRenderer {
	return &GridRenderer{}
}

// SetData replaces the renderer's input. Passing nil disables drawing.
func (r *GridRenderer) SetData(data *GridRendererData) {
	r.data = data
}

// Draw implements Renderer.
func (r *GridRenderer) Draw(ctx *gg.Context, _ bool, _ *HitTarget) {
	d := r.data
	if d == nil || (len(d.TimeMarks) == 0 && len(d.PriceMarks) == 0) {
		return
	}
	width := d.LineWidth
	if width <= 0 {
		width = 1
	}
	ctx.SetStrokeBrush(gg.Solid(d.Color))
	ctx.SetLineWidth(width)
	if len(d.DashPattern) > 0 {
		ctx.SetDash(d.DashPattern...)
	}
	for _, x := range d.TimeMarks {
		ctx.ClearPath()
		ctx.DrawLine(x+0.5, 0, x+0.5, float64(ctx.Height()))
		_ = ctx.Stroke()
	}
	for _, y := range d.PriceMarks {
		ctx.ClearPath()
		ctx.DrawLine(0, y+0.5, float64(ctx.Width()), y+0.5)
		_ = ctx.Stroke()
	}
	ctx.ClearDash()
}
