package chartpane

// HitTestResult names the view that claimed a point and the source that
// owns it, together with the renderer's opaque payload.
type HitTestResult struct {
	Source DataSource
	View   PaneView
	Target *HitTarget
}

// hitTestPane asks each visible source's views, front to back, whether
// one of their renderers claims pane-local (x, y). The first positive
// match wins and short-circuits; later sources and views are not
// queried. Returns nil when nothing claims the point.
func hitTestPane(pane Pane, height, width int, x, y float64) *HitTestResult {
	if pane == nil {
		return nil
	}
	for _, source := range pane.DataSources() {
		if res := hitTestViews(source, source.PaneViews(pane), height, width, x, y); res != nil {
			return res
		}
	}
	return nil
}

// hitTestViews walks one source's views in order. Views that resolve to
// no renderer, or to a renderer without hit-test capability, are skipped.
func hitTestViews(source DataSource, views []PaneView, height, width int, x, y float64) *HitTestResult {
	for _, view := range views {
		renderer := view.Renderer(height, width)
		if renderer == nil {
			continue
		}
		tester, ok := renderer.(HitTester)
		if !ok {
			continue
		}
		if target := tester.HitTest(x, y); target != nil {
			return &HitTestResult{Source: source, View: view, Target: target}
		}
	}
	return nil
}
