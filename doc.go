// Package chartpane implements the pane core of a financial charting
// library: per-pane canvas drawing and the pointer/touch interaction
// state machine.
//
// # Overview
//
// A chart is split into horizontal panes, each with its own price scales
// and a shared time scale. This package owns everything that happens
// inside one pane:
//
//   - the PaneWidget interaction controller, which translates raw
//     pointer/touch events into crosshair placement, drag-to-scroll,
//     pinch-to-zoom, kinetic deceleration and click dispatch, and drives
//     the paint pipeline on every invalidation;
//   - the AreaRenderer, which turns a sequence of screen-space points
//     into a closed, gradient-filled region;
//   - the KineticAnimation engine behind momentum scrolling;
//   - hit-testing of data-source views in z-order for tooltips and clicks;
//   - PriceAxisWidget sub-widgets for the left/right price axes.
//
// The chart's logical model (time scale, price scales, series data) is
// consumed through small interfaces declared in this package; see
// ChartModel, Pane, TimeScale and PriceScale. Drawing primitives come
// from github.com/gogpu/gg.
//
// # Quick Start
//
//	pane := ... // your Pane implementation
//	model := ... // your ChartModel implementation
//
//	w := chartpane.NewPaneWidget(model, pane)
//	w.SetSize(chartpane.Size{Width: 800, Height: 400})
//
//	w.MouseEnter(chartpane.InputEvent{LocalX: 50, LocalY: 50})
//	w.Paint(chartpane.InvalidationFull)
//
//	img := w.ContentSnapshot() // raster snapshot of the content surface
//
// # Concurrency
//
// The package is single-goroutine and cooperative: all event handlers and
// paint calls must run on one goroutine. The only asynchronous primitive
// is the frame scheduler used by kinetic scrolling, whose callback must be
// delivered on the same goroutine (see FrameScheduler).
package chartpane
