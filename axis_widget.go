package chartpane

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/shopspring/decimal"
)

// AxisSide names the pane edge a price-axis sub-widget sits on.
type AxisSide int

const (
	AxisLeft AxisSide = iota
	AxisRight
)

// Pixel lengths of the axis geometry.
const (
	axisTickLength  = 5
	axisLabelOffset = 3
)

// PriceAxisWidget paints one price axis next to a pane. Widgets are
// created and destroyed by the pane widget as the pane's visibility
// flags change; they never outlive their scale.
type PriceAxisWidget struct {
	scale  PriceScale
	side   AxisSide
	size   Size
	canvas *canvasBinding

	// Resolved colors, consumed as-is.
	BackgroundColor gg.RGBA
	BorderColor     gg.RGBA
	TextColor       gg.RGBA
}

// NewPriceAxisWidget creates an axis widget for the given scale.
func NewPriceAxisWidget(scale PriceScale, side AxisSide) *PriceAxisWidget {
	return &PriceAxisWidget{
		scale:           scale,
		side:            side,
		canvas:          newCanvasBinding(),
		BackgroundColor: gg.White,
		BorderColor:     gg.RGB(0.6, 0.6, 0.6),
		TextColor:       gg.RGB(0.1, 0.1, 0.1),
	}
}

// Side returns which pane edge the widget belongs to.
func (w *PriceAxisWidget) Side() AxisSide {
	return w.side
}

// Size returns the widget's current dimensions.
func (w *PriceAxisWidget) Size() Size {
	return w.size
}

// SetSize resizes the axis surface. Negative dimensions are a fatal
// input-validation failure, as for the pane itself.
func (w *PriceAxisWidget) SetSize(size Size) {
	if size.Width < 0 || size.Height < 0 {
		panic(fmt.Sprintf("chartpane: invalid axis size %dx%d", size.Width, size.Height))
	}
	if w.size == size {
		return
	}
	w.size = size
	w.canvas.resize(size)
}

// Snapshot exports a raster copy of the axis surface, nil when the
// widget has zero area.
func (w *PriceAxisWidget) Snapshot() image.Image {
	return w.canvas.snapshot()
}

// Paint repaints the axis at the given invalidation level. Cursor-only
// invalidations skip the axis: it carries no overlay content.
func (w *PriceAxisWidget) Paint(level InvalidationLevel) {
	if level <= InvalidationCursor {
		return
	}
	ctx := w.canvas.context()
	if ctx == nil || w.scale == nil {
		return
	}
	ctx.ClearWithColor(w.BackgroundColor)

	borderX := 0.0
	if w.side == AxisLeft {
		borderX = float64(w.size.Width) - 1
	}
	ctx.ClearPath()
	ctx.SetFillBrush(gg.Solid(w.BorderColor))
	ctx.SetStrokeBrush(gg.Solid(w.BorderColor))
	ctx.SetLineWidth(1)
	ctx.DrawLine(borderX+0.5, 0, borderX+0.5, float64(w.size.Height))
	_ = ctx.Stroke()

	if w.scale.IsEmpty() {
		return
	}
	precision := w.scale.Precision()
	for _, mark := range w.scale.Marks() {
		w.paintMark(ctx, mark, borderX, precision)
	}
}

func (w *PriceAxisWidget) paintMark(ctx *gg.Context, mark PriceMark, borderX float64, precision int) {
	y := mark.Coordinate
	ctx.ClearPath()
	if w.side == AxisLeft {
		ctx.DrawLine(borderX-axisTickLength, y+0.5, borderX, y+0.5)
	} else {
		ctx.DrawLine(borderX, y+0.5, borderX+axisTickLength, y+0.5)
	}
	_ = ctx.Stroke()

	label := FormatPrice(mark.Value, precision)
	baseline := int(y) + textHeight()/2 - 2
	if w.side == AxisLeft {
		x := int(borderX) - axisTickLength - axisLabelOffset - measureText(label)
		drawText(w.canvas.pixmap(), label, x, baseline, w.TextColor)
	} else {
		x := int(borderX) + axisTickLength + axisLabelOffset
		drawText(w.canvas.pixmap(), label, x, baseline, w.TextColor)
	}
}

// FormatPrice renders a price value with a fixed number of fractional
// digits. Decimal arithmetic keeps labels free of binary-float
// artifacts ("1.0999999999") regardless of the value's magnitude.
func FormatPrice(value float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return decimal.NewFromFloat(value).StringFixed(int32(precision))
}
