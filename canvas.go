package chartpane

import (
	"image"

	"github.com/gogpu/gg"
)

// canvasBinding owns one drawing surface of a pane widget. The widget
// keeps two: a content surface repainted on structural invalidation and
// an overlay surface repainted every frame. Low-level sizing lives here
// so the paint pipeline only ever sees a ready gg.Context.
type canvasBinding struct {
	ctx  *gg.Context
	size Size
}

func newCanvasBinding() *canvasBinding {
	return &canvasBinding{}
}

// resize reallocates the surface for the new dimensions. Zero-area
// surfaces hold no context; painting on them is skipped.
func (c *canvasBinding) resize(size Size) {
	if c.size == size {
		return
	}
	c.size = size
	if size.Width <= 0 || size.Height <= 0 {
		c.ctx = nil
		return
	}
	if c.ctx == nil {
		c.ctx = gg.NewContext(size.Width, size.Height)
		return
	}
	_ = c.ctx.Resize(size.Width, size.Height)
}

// context returns the drawing context, or nil for a zero-area surface.
func (c *canvasBinding) context() *gg.Context {
	return c.ctx
}

// pixmap exposes the raw pixel buffer for text rasterization.
func (c *canvasBinding) pixmap() *gg.Pixmap {
	if c.ctx == nil {
		return nil
	}
	return c.ctx.ResizeTarget()
}

// snapshot returns a copy of the surface contents, or nil for a
// zero-area surface.
func (c *canvasBinding) snapshot() image.Image {
	if c.ctx == nil {
		return nil
	}
	return c.ctx.Image()
}
