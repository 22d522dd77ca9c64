package chartpane

// PathSink receives path construction commands. *gg.Context satisfies
// it; tests substitute a recorder.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	ClosePath()
}

// SeriesPoint is one series value projected into pane-local pixel space.
// X is monotonic in index; gaps in the data keep their slot.
type SeriesPoint struct {
	X, Y float64
}

// VisibleRange is a half-open index interval [From, To) of series points
// currently inside the viewport.
type VisibleRange struct {
	From, To int
}

// Length returns the number of indices in the range.
func (r VisibleRange) Length() int {
	return r.To - r.From
}

// LineType selects how consecutive series points are interpolated.
type LineType int

const (
	// LineTypeSimple connects points with straight segments.
	LineTypeSimple LineType = iota
	// LineTypeWithSteps connects points with a horizontal-then-vertical
	// step per segment.
	LineTypeWithSteps
	// LineTypeCurved smooths the line with quadratic segments through
	// the midpoints of consecutive points.
	LineTypeCurved
)

// walkLine continues the sink's current path through
// points[rng.From+1 : rng.To] using the given interpolation. The caller
// must already have positioned the path at points[rng.From]. Pure path
// construction: nothing is filled or stroked here.
func walkLine(sink PathSink, points []SeriesPoint, lineType LineType, rng VisibleRange) {
	if rng.Length() < 2 {
		return
	}
	switch lineType {
	case LineTypeWithSteps:
		prevY := points[rng.From].Y
		for i := rng.From + 1; i < rng.To; i++ {
			p := points[i]
			sink.LineTo(p.X, prevY)
			sink.LineTo(p.X, p.Y)
			prevY = p.Y
		}
	case LineTypeCurved:
		// Each interior point becomes a control point; the curve passes
		// through segment midpoints and ends exactly on the last point.
		for i := rng.From + 1; i < rng.To-1; i++ {
			p := points[i]
			next := points[i+1]
			sink.QuadraticTo(p.X, p.Y, (p.X+next.X)/2, (p.Y+next.Y)/2)
		}
		last := points[rng.To-1]
		sink.LineTo(last.X, last.Y)
	default:
		for i := rng.From + 1; i < rng.To; i++ {
			p := points[i]
			sink.LineTo(p.X, p.Y)
		}
	}
}
