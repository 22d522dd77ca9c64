// Command panedemo renders a demo chart pane and drives a scripted
// drag gesture over it.
package main

import (
	"flag"
	"image"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/chartpane"
)

type config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	AxisWidth  int     `yaml:"axisWidth"`
	BarSpacing float64 `yaml:"barSpacing"`
	Precision  int     `yaml:"precision"`
	Watermark  string  `yaml:"watermark"`

	Background struct {
		Top    string `yaml:"top"`
		Bottom string `yaml:"bottom"`
	} `yaml:"background"`

	Area struct {
		TopFill1    string `yaml:"topFill1"`
		TopFill2    string `yaml:"topFill2"`
		BottomFill1 string `yaml:"bottomFill1"`
		BottomFill2 string `yaml:"bottomFill2"`
	} `yaml:"area"`

	Series []float64 `yaml:"series"`
}

func defaultConfig() config {
	cfg := config{
		Width:      800,
		Height:     400,
		AxisWidth:  64,
		BarSpacing: 8,
		Precision:  2,
		Watermark:  "chartpane",
	}
	cfg.Background.Top = "#1c2030"
	cfg.Background.Bottom = "#10131c"
	cfg.Area.TopFill1 = "#2962ff"
	cfg.Area.TopFill2 = "#2962ff"
	cfg.Area.BottomFill1 = "#0d2060"
	cfg.Area.BottomFill2 = "#10131c"
	// A gentle sine walk so the default render has visible structure.
	for i := 0; i < 90; i++ {
		cfg.Series = append(cfg.Series, 100+10*math.Sin(float64(i)/7)+float64(i)*0.15)
	}
	return cfg
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		output     = flag.String("output", "pane.png", "output file")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	model := newDemoModel(cfg)
	pane := &demoPane{model: model}

	widget := chartpane.NewPaneWidget(model, pane)
	defer widget.Destroy()
	paneWidth := cfg.Width - cfg.AxisWidth
	widget.SetSize(chartpane.Size{Width: paneWidth, Height: cfg.Height})

	// Scripted gesture: hover in, drag the viewport a third of a pane
	// to the right, release, then park the crosshair mid-pane.
	cx := float64(paneWidth) / 2
	cy := float64(cfg.Height) / 2
	widget.MouseEnter(event(cx, cy))
	widget.MouseDown(event(cx, cy))
	for i := 1; i <= 8; i++ {
		widget.PressedMouseMove(event(cx+float64(i)*float64(paneWidth)/24, cy))
	}
	widget.MouseUp(event(cx+float64(paneWidth)/3, cy))
	widget.MouseMove(event(cx, cy))

	widget.Paint(chartpane.InvalidationFull)
	widget.SetRightAxisSize(chartpane.Size{Width: cfg.AxisWidth, Height: cfg.Height})
	if axis := widget.RightAxis(); axis != nil {
		axis.Paint(chartpane.InvalidationFull)
	}

	if err := writePNG(*output, widget, cfg); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, cfg.Width, cfg.Height)
}

func event(x, y float64) chartpane.InputEvent {
	return chartpane.InputEvent{LocalX: x, LocalY: y, ClientX: x, ClientY: y}
}

// writePNG composites the content, overlay and axis surfaces side by
// side into one frame.
func writePNG(path string, widget *chartpane.PaneWidget, cfg config) error {
	frame := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	if content := widget.ContentSnapshot(); content != nil {
		draw.Draw(frame, content.Bounds(), content, image.Point{}, draw.Src)
	}
	if overlay := widget.OverlaySnapshot(); overlay != nil {
		draw.Draw(frame, overlay.Bounds(), overlay, image.Point{}, draw.Over)
	}
	if axis := widget.RightAxis(); axis != nil {
		if snap := axis.Snapshot(); snap != nil {
			at := image.Rect(cfg.Width-cfg.AxisWidth, 0, cfg.Width, cfg.Height)
			draw.Draw(frame, at, snap, image.Point{}, draw.Src)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, frame)
}
