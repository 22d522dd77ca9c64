package chartpane

// InvalidationLevel describes how much of a pane must be repainted.
// Levels are ordered: a repaint at a given level implies everything a
// lower level would repaint.
type InvalidationLevel int

const (
	// InvalidationNone requests no repaint at all.
	InvalidationNone InvalidationLevel = iota
	// InvalidationCursor repaints only the overlay surface
	// (crosshair and top-layer views).
	InvalidationCursor
	// InvalidationLight recomputes price-scale auto-ranging and
	// repaints the content surface.
	InvalidationLight
	// InvalidationFull repaints everything unconditionally.
	InvalidationFull
)

// String returns a human-readable name for the level.
func (l InvalidationLevel) String() string {
	switch l {
	case InvalidationNone:
		return "none"
	case InvalidationCursor:
		return "cursor"
	case InvalidationLight:
		return "light"
	case InvalidationFull:
		return "full"
	default:
		return "unknown"
	}
}
