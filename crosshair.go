package chartpane

import "github.com/gogpu/gg"

// CrosshairRendererData describes one frame of the crosshair.
type CrosshairRendererData struct {
	Point       Point
	VertVisible bool
	HorzVisible bool
	Color       gg.RGBA
	LineWidth   float64
	// DashPattern of alternating on/off lengths; empty draws solid.
	DashPattern []float64
}

// CrosshairRenderer draws the crosshair's vertical and horizontal
// lines across the full pane. It is painted last on the overlay
// surface, above every other view.
type CrosshairRenderer struct {
	data *CrosshairRendererData
}

// NewCrosshairRenderer creates a CrosshairRenderer with no data.
func NewCrosshairRenderer() *CrosshairRenderer {
	return &CrosshairRenderer{}
}

// SetData replaces the renderer's input. Passing nil disables drawing.
func (r *CrosshairRenderer) SetData(data *CrosshairRendererData) {
	r.data = data
}

// Draw implements Renderer.
func (r *CrosshairRenderer) Draw(ctx *gg.Context, _ bool, _ *HitTarget) {
	d := r.data
	if d == nil || (!d.VertVisible && !d.HorzVisible) {
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
	if d.VertVisible {
		ctx.ClearPath()
		ctx.DrawLine(d.Point.X+0.5, 0, d.Point.X+0.5, float64(ctx.Height()))
		_ = ctx.Stroke()
	}
	if d.HorzVisible {
		ctx.ClearPath()
		ctx.DrawLine(0, d.Point.Y+0.5, float64(ctx.Width()), d.Point.Y+0.5)
		_ = ctx.Stroke()
	}
	ctx.ClearDash()
}
