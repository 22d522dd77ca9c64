package chartpane

// Point is a position in pane-local pixel space.
// The origin is the pane's top-left corner; X grows right, Y grows down.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size holds pane dimensions in pixels.
type Size struct {
	Width, Height int
}

// TimePointIndex identifies a bar position on the time scale.
type TimePointIndex int
