package chartpane

// RendererView adapts a fixed Renderer into a PaneView that ignores the
// pane dimensions. Renderers that size themselves from the drawing
// context (watermark, crosshair, grid) use this directly.
type RendererView struct {
	R Renderer
}

// Renderer implements PaneView.
func (v RendererView) Renderer(_, _ int) Renderer {
	return v.R
}

// StaticSource adapts a fixed list of views into a DataSource. Models
// use it for pseudo-sources (the watermark, the crosshair, the grid)
// that expose the ordinary visual-view contract without being series.
type StaticSource struct {
	Views []PaneView
}

// NewStaticSource wraps renderers into a StaticSource.
func NewStaticSource(renderers ...Renderer) *StaticSource {
	s := &StaticSource{}
	for _, r := range renderers {
		s.Views = append(s.Views, RendererView{R: r})
	}
	return s
}

// PaneViews implements DataSource.
func (s *StaticSource) PaneViews(Pane) []PaneView { return s.Views }

// TopPaneViews implements DataSource; pseudo-sources have no top views.
func (s *StaticSource) TopPaneViews(Pane) []PaneView { return nil }

// PriceScale implements DataSource; pseudo-sources carry no scale.
func (s *StaticSource) PriceScale() PriceScale { return nil }
