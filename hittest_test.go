package chartpane

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestHitTestPrecedence(t *testing.T) {
	frontTarget := &HitTarget{Kind: HitTargetShape, ExternalID: "front"}
	backTarget := &HitTarget{Kind: HitTargetShape, ExternalID: "back"}

	front := &fakeSource{views: []PaneView{&hookView{renderer: &hitRenderer{target: frontTarget}}}}
	back := &fakeSource{views: []PaneView{&hookView{renderer: &hitRenderer{target: backTarget}}}}
	pane := &fakePane{sources: []DataSource{front, back}}

	res := hitTestPane(pane, 100, 100, 50, 50)
	if res == nil {
		t.Fatal("hitTest returned nil with two claiming sources")
	}
	if res.Source != DataSource(front) {
		t.Error("hit did not go to the front source")
	}
	if res.Target != frontTarget {
		t.Errorf("target = %+v, want the front source's target", res.Target)
	}
}

func TestHitTestSkipsIncapableRenderers(t *testing.T) {
	target := &HitTarget{Kind: HitTargetSeries, Index: 3}
	pane := &fakePane{sources: []DataSource{
		&fakeSource{views: []PaneView{
			&hookView{renderer: blindRenderer{}},    // no hit-test capability
			&hookView{renderer: nil},                // no renderer at all
			&hookView{renderer: missRenderer{}},     // capable but declines
			&hookView{renderer: &hitRenderer{target: target}},
		}},
	}}

	res := hitTestPane(pane, 100, 100, 10, 10)
	if res == nil {
		t.Fatal("hitTest returned nil; capable view was not reached")
	}
	if res.Target != target {
		t.Errorf("target = %+v, want the capable view's target", res.Target)
	}
}

func TestHitTestNoMatch(t *testing.T) {
	pane := &fakePane{sources: []DataSource{
		&fakeSource{views: []PaneView{&hookView{renderer: missRenderer{}}}},
	}}
	if res := hitTestPane(pane, 100, 100, 10, 10); res != nil {
		t.Fatalf("hitTest = %+v, want nil", res)
	}
}

func TestHitTestNilPane(t *testing.T) {
	if res := hitTestPane(nil, 100, 100, 10, 10); res != nil {
		t.Fatalf("hitTest = %+v, want nil", res)
	}
}

func TestHitTestShortCircuits(t *testing.T) {
	counting := &countingHitRenderer{}
	front := &fakeSource{views: []PaneView{&hookView{renderer: &hitRenderer{target: &HitTarget{}}}}}
	back := &fakeSource{views: []PaneView{&hookView{renderer: counting}}}
	pane := &fakePane{sources: []DataSource{front, back}}

	hitTestPane(pane, 100, 100, 50, 50)
	if counting.calls != 0 {
		t.Fatalf("later source was queried %d times after a front hit", counting.calls)
	}
}

type countingHitRenderer struct {
	calls int
}

func (r *countingHitRenderer) Draw(_ *gg.Context, _ bool, _ *HitTarget) {}

func (r *countingHitRenderer) HitTest(_, _ float64) *HitTarget {
	r.calls++
	return &HitTarget{}
}
