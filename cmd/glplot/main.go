// Command glplot plots a sample series, fitted to the window, together
// with optional rectangle and polygon overlays.
//
// Usage:
//
//	glplot [-config plot.yaml] [-log-level info] [-snapshot out.png] [-frames n]
//
// In a window, Escape or q quits and C-c copies the current model to
// screen transform to the clipboard.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atotto/clipboard"

	"github.com/cellux/glplot"
	"github.com/cellux/glplot/gles"
	"github.com/cellux/glplot/internal/config"
	"github.com/cellux/glplot/internal/dataset"
	"github.com/cellux/glplot/raster"
)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func handleEvent(l *glplot.Loop, ev glplot.Event) {
	key, ok := ev.(glplot.KeyEvent)
	if !ok {
		return
	}
	switch key.Name {
	case "Escape", "q":
		l.Stop()
	case "C-c":
		if err := clipboard.WriteAll(l.ViewPort.String()); err != nil {
			logger.Warn("copying transform failed", "error", err)
		}
	}
}

func runWindow(cfg *config.Config, points []glplot.Vertex) error {
	display, err := gles.NewDisplay(gles.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer display.Close()
	scene, err := BuildScene(display, cfg, points)
	if err != nil {
		return err
	}
	defer scene.Close()
	loop := &glplot.Loop{
		Display:  display,
		Layers:   scene.Layers,
		ViewPort: scene.ViewPort,
		FPS:      cfg.Window.FPS,
		OnEvent:  handleEvent,
	}
	return loop.Run()
}

func runSnapshot(cfg *config.Config, points []glplot.Vertex) error {
	display, err := raster.NewDisplay(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	scene, err := BuildScene(display, cfg, points)
	if err != nil {
		return err
	}
	defer scene.Close()
	loop := &glplot.Loop{
		Display:   display,
		Layers:    scene.Layers,
		ViewPort:  scene.ViewPort,
		FPS:       cfg.Window.FPS,
		MaxFrames: cfg.Frames,
	}
	if err := loop.Run(); err != nil {
		return err
	}
	f, err := os.Create(cfg.Snapshot)
	if err != nil {
		return err
	}
	if err := display.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("snapshot written", "path", cfg.Snapshot, "frames", loop.Frames())
	return nil
}

func run() error {
	configPath := flag.String("config", "", "plot configuration `file` (YAML)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	snapshot := flag.String("snapshot", "", "render without a window into this PNG `file`")
	frames := flag.Int("frames", 0, "number of frames to render for a snapshot")
	width := flag.Int("width", 0, "window or snapshot width in pixels")
	height := flag.Int("height", 0, "window or snapshot height in pixels")
	flag.Parse()

	l, err := newLogger(os.Stderr, *logLevel)
	if err != nil {
		return err
	}
	logger = l
	glplot.SetLogger(l)
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *snapshot != "" {
		if cfg.Snapshot, err = config.ExpandPath(*snapshot); err != nil {
			return err
		}
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	points, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	if cfg.Snapshot != "" {
		return runSnapshot(cfg, points)
	}
	return runWindow(cfg, points)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v\n", err)
	}
}
