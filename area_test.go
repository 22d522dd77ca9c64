package chartpane

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const coordEpsilon = 1e-9

func ascendingPoints(n int) []SeriesPoint {
	points := make([]SeriesPoint, n)
	for i := range points {
		points[i] = SeriesPoint{X: float64(10 + i*10), Y: float64(100 - i*5)}
	}
	return points
}

func TestAreaPathClosedAndAscending(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		from   int
		to     int
		offset int // index of the first walked point, after anchoring
	}{
		{"full range", 6, 0, 6, 1},
		{"partial range", 8, 2, 7, 2},
		{"two points", 2, 0, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewAreaRenderer()
			points := ascendingPoints(tt.count)
			r.SetData(&AreaRendererData{
				Points:   points,
				Range:    &VisibleRange{From: tt.from, To: tt.to},
				Baseline: 150,
				BarWidth: 10,
			})

			rec := &pathRecorder{}
			r.buildPath(rec)

			if !rec.closed {
				t.Fatal("path is not closed")
			}
			// The last emitted point returns to the start x at the
			// baseline, so closing reaches the path start.
			last := rec.points[len(rec.points)-1]
			if math.Abs(last.X-rec.start.X) > coordEpsilon {
				t.Fatalf("path ends at x=%v, start x=%v", last.X, rec.start.X)
			}

			// Every index in the walked range appears exactly once, in
			// ascending x. rec.points[0] is the baseline-corner anchor.
			walked := rec.points[1 : len(rec.points)-2]
			want := points[tt.offset:tt.to]
			if len(walked) != len(want) {
				t.Fatalf("walked %d points, want %d", len(walked), len(want))
			}
			for i, p := range walked {
				if p != Point(want[i]) {
					t.Errorf("walked[%d] = %v, want %v", i, p, want[i])
				}
				if i > 0 && walked[i].X <= walked[i-1].X {
					t.Errorf("walked x not ascending at %d: %v after %v", i, walked[i].X, walked[i-1].X)
				}
			}
		})
	}
}

func TestAreaPathSinglePointSlab(t *testing.T) {
	r := NewAreaRenderer()
	r.SetData(&AreaRendererData{
		Points:   []SeriesPoint{{X: 50, Y: 80}},
		Range:    &VisibleRange{From: 0, To: 1},
		Baseline: 120,
		BarWidth: 8,
	})

	rec := &pathRecorder{}
	r.buildPath(rec)

	if !rec.closed {
		t.Fatal("slab path is not closed")
	}
	top := rec.points[:2]
	if top[0].Y != top[1].Y {
		t.Fatalf("slab top edge is not flat: %v vs %v", top[0].Y, top[1].Y)
	}
	width := top[1].X - top[0].X
	if math.Abs(width-8) > coordEpsilon {
		t.Fatalf("slab width = %v, want bar width 8", width)
	}
	center := (top[0].X + top[1].X) / 2
	if math.Abs(center-50) > coordEpsilon {
		t.Fatalf("slab center = %v, want 50", center)
	}
}

func TestAreaDrawNoOpConditions(t *testing.T) {
	tests := []struct {
		name string
		data *AreaRendererData
	}{
		{"nil data", nil},
		{"empty points", &AreaRendererData{Range: &VisibleRange{From: 0, To: 0}}},
		{"nil range", &AreaRendererData{Points: ascendingPoints(3)}},
		{"zero items", &AreaRendererData{
			Points: ascendingPoints(3),
			Range:  &VisibleRange{From: 1, To: 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewAreaRenderer()
			r.SetData(tt.data)
			ctx := gg.NewContext(40, 40)
			r.Draw(ctx, false, nil) // must not panic or draw

			img := ctx.Image()
			bounds := img.Bounds()
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
						t.Fatalf("pixel (%d,%d) was painted", x, y)
					}
				}
			}
		})
	}
}

func TestAreaDrawFillsRegion(t *testing.T) {
	r := NewAreaRenderer()
	r.SetData(&AreaRendererData{
		Points: []SeriesPoint{
			{X: 5, Y: 10}, {X: 15, Y: 10}, {X: 25, Y: 10}, {X: 35, Y: 10},
		},
		Range:    &VisibleRange{From: 0, To: 4},
		Baseline: 30,
		BarWidth: 10,
		Colors: AreaFillColors{
			TopFill1:    gg.Red,
			TopFill2:    gg.Red,
			BottomFill1: gg.Blue,
			BottomFill2: gg.Blue,
		},
	})
	ctx := gg.NewContext(40, 40)
	r.Draw(ctx, false, nil)

	// A point well inside the region (between line y=10 and baseline
	// y=30) must be painted.
	if _, _, _, a := ctx.Image().At(20, 20).RGBA(); a == 0 {
		t.Fatal("interior pixel was not filled")
	}
	// A point above the line must stay transparent.
	if _, _, _, a := ctx.Image().At(20, 2).RGBA(); a != 0 {
		t.Fatal("pixel above the line was filled")
	}
}

func TestAreaHitTest(t *testing.T) {
	r := NewAreaRenderer()
	r.SetData(&AreaRendererData{
		Points:   ascendingPoints(4), // x: 10..40, y: 100..85
		Range:    &VisibleRange{From: 0, To: 4},
		Baseline: 150,
		BarWidth: 10,
	})

	tests := []struct {
		name      string
		x, y      float64
		wantIndex int
		wantHit   bool
	}{
		{"on line", 20, 95, 1, true},
		{"between line and baseline", 20, 120, 1, true},
		{"above line", 20, 50, 0, false},
		{"below baseline", 20, 160, 0, false},
		{"outside x range", 90, 120, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := r.HitTest(tt.x, tt.y)
			if (target != nil) != tt.wantHit {
				t.Fatalf("HitTest(%v, %v) hit = %v, want %v", tt.x, tt.y, target != nil, tt.wantHit)
			}
			if target == nil {
				return
			}
			if target.Kind != HitTargetSeries {
				t.Errorf("target kind = %v, want HitTargetSeries", target.Kind)
			}
			if target.Index != tt.wantIndex {
				t.Errorf("target index = %d, want %d", target.Index, tt.wantIndex)
			}
		})
	}
}
