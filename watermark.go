package chartpane

import "github.com/gogpu/gg"

// WatermarkRenderer draws a single line of centered text behind the
// pane's data sources.
type WatermarkRenderer struct {
	Text  string
	Color gg.RGBA
}

// Draw implements Renderer.
func (r *WatermarkRenderer) Draw(ctx *gg.Context, _ bool, _ *HitTarget) {
	if r == nil || r.Text == "" {
		return
	}
	x := (ctx.Width() - measureText(r.Text)) / 2
	y := ctx.Height()/2 + textHeight()/2
	drawText(ctx.ResizeTarget(), r.Text, x, y, r.Color)
}
