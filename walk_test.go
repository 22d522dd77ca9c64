package chartpane

import (
	"testing"
)

func TestWalkLineSimple(t *testing.T) {
	points := []SeriesPoint{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 3}, {X: 30, Y: 8}}
	rec := &pathRecorder{}
	rec.MoveTo(points[0].X, points[0].Y)
	walkLine(rec, points, LineTypeSimple, VisibleRange{From: 0, To: 4})

	wantOps := []string{"move", "line", "line", "line"}
	if len(rec.ops) != len(wantOps) {
		t.Fatalf("ops = %v, want %v", rec.ops, wantOps)
	}
	for i, op := range wantOps {
		if rec.ops[i] != op {
			t.Fatalf("ops[%d] = %q, want %q", i, rec.ops[i], op)
		}
	}
	for i, p := range rec.points {
		if p != Point(points[i]) {
			t.Errorf("points[%d] = %v, want %v", i, p, points[i])
		}
	}
}

func TestWalkLineWithSteps(t *testing.T) {
	points := []SeriesPoint{{X: 0, Y: 0}, {X: 10, Y: 5}}
	rec := &pathRecorder{}
	rec.MoveTo(points[0].X, points[0].Y)
	walkLine(rec, points, LineTypeWithSteps, VisibleRange{From: 0, To: 2})

	// One segment becomes horizontal-then-vertical.
	want := []Point{{0, 0}, {10, 0}, {10, 5}}
	if len(rec.points) != len(want) {
		t.Fatalf("points = %v, want %v", rec.points, want)
	}
	for i := range want {
		if rec.points[i] != want[i] {
			t.Errorf("points[%d] = %v, want %v", i, rec.points[i], want[i])
		}
	}
}

func TestWalkLineCurvedEndsOnLastPoint(t *testing.T) {
	points := []SeriesPoint{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 3}, {X: 30, Y: 8}}
	rec := &pathRecorder{}
	rec.MoveTo(points[0].X, points[0].Y)
	walkLine(rec, points, LineTypeCurved, VisibleRange{From: 0, To: 4})

	last := rec.points[len(rec.points)-1]
	if last != (Point{X: 30, Y: 8}) {
		t.Fatalf("curve ends at %v, want last point", last)
	}
	quads := 0
	for _, op := range rec.ops {
		if op == "quad" {
			quads++
		}
	}
	if quads != 2 {
		t.Fatalf("curved walk emitted %d quadratics, want 2", quads)
	}
}

func TestWalkLineShortRangeNoOp(t *testing.T) {
	points := []SeriesPoint{{X: 0, Y: 0}, {X: 10, Y: 5}}
	for _, lineType := range []LineType{LineTypeSimple, LineTypeWithSteps, LineTypeCurved} {
		rec := &pathRecorder{}
		walkLine(rec, points, lineType, VisibleRange{From: 1, To: 2})
		if len(rec.ops) != 0 {
			t.Fatalf("line type %v emitted ops for a single-point range: %v", lineType, rec.ops)
		}
	}
}
