// Package config loads the YAML description of a plot.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/cellux/glplot"
)

// Color is an RGBA quadruple, written as a YAML sequence [r, g, b, a].
type Color [4]float32

func (c Color) Color() glplot.Color {
	return glplot.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Screen is the target rectangle of the viewport in normalized device
// coordinates.
type Screen struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func (s Screen) Rect() glplot.ScreenRect {
	return glplot.ScreenRect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	FPS        int    `yaml:"fps"`
}

// Dataset selects where the plotted samples come from.
type Dataset struct {
	// Kind is one of "sine", "csv" or "wav".
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
	// Domain and Samples parameterize the sine generator.
	Domain  [2]float32 `yaml:"domain"`
	Samples int        `yaml:"samples"`
	// XColumn and YColumn index CSV columns, 0 and 1 by default;
	// XColumn < 0 uses row numbers.
	XColumn int  `yaml:"x_column"`
	YColumn int  `yaml:"y_column"`
	Header  bool `yaml:"header"`
	// Channel selects the WAV channel.
	Channel int `yaml:"channel"`
	// MaxPoints decimates longer series when positive.
	MaxPoints int `yaml:"max_points"`
	// Converter is the libsamplerate converter type used for decimation,
	// 0 (best quality sinc) to 4 (linear).
	Converter int `yaml:"converter"`
}

// Rect is an overlay rectangle given by two opposite corners in model
// space.
type Rect struct {
	From [2]float32 `yaml:"from"`
	To   [2]float32 `yaml:"to"`
}

type Config struct {
	Window     Window         `yaml:"window"`
	Background Color          `yaml:"background"`
	Foreground Color          `yaml:"foreground"`
	Screen     Screen         `yaml:"screen"`
	Dataset    Dataset        `yaml:"dataset"`
	Rects      []Rect         `yaml:"rects"`
	Polygons   [][][2]float32 `yaml:"polygons"`
	// Snapshot, when set, renders headlessly into this PNG file.
	Snapshot string `yaml:"snapshot"`
	Frames   int    `yaml:"frames"`
}

// Default returns the configuration used without a file: a sine wave over
// [-10, 10] on a black background. Parse decodes on top of it, so keys a
// file leaves out keep these values.
func Default() *Config {
	s := glplot.DefaultScreen
	return &Config{
		Window: Window{
			Title:  "glplot",
			Width:  800,
			Height: 600,
			FPS:    glplot.DefaultFPS,
		},
		Background: Color{0, 0, 0, 1},
		Foreground: Color{1, 1, 0, 1},
		Screen:     Screen{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height},
		Dataset: Dataset{
			Kind:    "sine",
			Domain:  [2]float32{-10, 10},
			Samples: 1000,
			YColumn: 1,
		},
		Frames: 1,
	}
}

// Validate reports the first inconsistent setting.
func (cfg *Config) Validate() error {
	switch cfg.Dataset.Kind {
	case "sine":
		if cfg.Dataset.Samples < 2 {
			return fmt.Errorf("dataset: sine needs at least 2 samples, got %d", cfg.Dataset.Samples)
		}
	case "csv", "wav":
		if cfg.Dataset.Path == "" {
			return fmt.Errorf("dataset: %s needs a path", cfg.Dataset.Kind)
		}
	default:
		return fmt.Errorf("dataset: unknown kind %q", cfg.Dataset.Kind)
	}
	if c := cfg.Dataset.Converter; c < 0 || c > 4 {
		return fmt.Errorf("dataset: invalid converter %d - must be between 0..4", c)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Screen.Width == 0 || cfg.Screen.Height == 0 {
		return fmt.Errorf("screen: empty rectangle %s", cfg.Screen.Rect())
	}
	if cfg.Snapshot != "" && cfg.Frames < 1 {
		return fmt.Errorf("frames: a snapshot needs at least 1 frame, got %d", cfg.Frames)
	}
	for i, p := range cfg.Polygons {
		if len(p) < 3 {
			return fmt.Errorf("polygons[%d]: need at least 3 vertices, got %d", i, len(p))
		}
	}
	return nil
}

// ExpandPath resolves a leading "~" in path.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

// Load reads a YAML configuration file and fills in defaults.
func Load(path string) (*Config, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data and fills in defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Dataset.Path != "" {
		path, err := ExpandPath(cfg.Dataset.Path)
		if err != nil {
			return nil, fmt.Errorf("expanding dataset path: %w", err)
		}
		cfg.Dataset.Path = path
	}
	if cfg.Snapshot != "" {
		path, err := ExpandPath(cfg.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("expanding snapshot path: %w", err)
		}
		cfg.Snapshot = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
