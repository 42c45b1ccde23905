package overlay

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config controls how an Overlay behaves. The zero value is usable.
type Config struct {
	// Background fills the screen at the start of every paint pass.
	Background Color `toml:"background"`

	// Debug enables stderr logging of paint passes and touch routing.
	Debug bool `toml:"debug"`

	// PruneTouchOnRemove makes Remove also stop ambient touch delivery to
	// the removed renderer. By default a removed touch-capable renderer
	// keeps receiving touch events until Clear.
	PruneTouchOnRemove bool `toml:"prune_touch_on_remove"`

	// ScreenshotDir is where Screenshot writes PNG files.
	// Defaults to "screenshots".
	ScreenshotDir string `toml:"screenshot_dir"`

	// Locator computes the surface offset on every layout pass. Defaults to
	// the layout origin, so the offset is the surface's position inside the
	// window.
	Locator Locator `toml:"-"`
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`

	// ShowFPS adds a DebugRenderer on top of the overlay.
	ShowFPS bool `toml:"show_fps"`

	Overlay Config `toml:"overlay"`
}

// DefaultRunConfig returns the settings Run uses for zero fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "Overlay",
		Width:  640,
		Height: 480,
	}
}

// LoadRunConfig decodes a TOML document on top of DefaultRunConfig. Unknown
// keys are rejected.
//
//	title = "Camera"
//	width = 800
//	height = 600
//
//	[overlay]
//	debug = true
//	background = { r = 0, g = 0, b = 0, a = 1 }
func LoadRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load run config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return RunConfig{}, fmt.Errorf("load run config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, fmt.Errorf("load run config: %w", err)
	}
	return cfg, nil
}

// LoadRunConfigFile reads and decodes a TOML file with LoadRunConfig rules.
func LoadRunConfigFile(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load run config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return RunConfig{}, fmt.Errorf("load run config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, fmt.Errorf("load run config %s: %w", path, err)
	}
	return cfg, nil
}

func (c RunConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	bg := c.Overlay.Background
	for _, v := range []float64{bg.R, bg.G, bg.B, bg.A} {
		if v < 0 || v > 1 {
			return fmt.Errorf("background component %v out of range [0, 1]", v)
		}
	}
	return nil
}
