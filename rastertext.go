package chartpane

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the bitmap face used for axis labels and the watermark.
// Chart labels are short and numeric; a fixed-width bitmap face keeps
// text rendering free of font-file loading.
var labelFace = basicfont.Face7x13

// pixmapImage adapts a gg.Pixmap to draw.Image so the x/image font
// rasterizer can write glyphs straight into a pane surface.
type pixmapImage struct {
	pm *gg.Pixmap
}

func (p pixmapImage) ColorModel() color.Model { return color.NRGBAModel }
func (p pixmapImage) Bounds() image.Rectangle { return p.pm.Bounds() }
func (p pixmapImage) At(x, y int) color.Color { return p.pm.At(x, y) }

func (p pixmapImage) Set(x, y int, c color.Color) {
	p.pm.SetPixel(x, y, gg.FromColor(c))
}

// drawText draws s with its baseline at (x, y). No-op on a nil pixmap.
func drawText(pm *gg.Pixmap, s string, x, y int, col gg.RGBA) {
	if pm == nil {
		return
	}
	d := font.Drawer{
		Dst:  pixmapImage{pm: pm},
		Src:  image.NewUniform(col.Color()),
		Face: labelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// measureText returns the advance width of s in pixels.
func measureText(s string) int {
	return font.MeasureString(labelFace, s).Ceil()
}

// textHeight returns the line height of the label face in pixels.
func textHeight() int {
	return labelFace.Metrics().Height.Ceil()
}
