package overlay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadRunConfig(t *testing.T) {
	cfg, err := LoadRunConfig([]byte(`
title = "Camera"
width = 800
show_fps = true

[overlay]
debug = true
prune_touch_on_remove = true
screenshot_dir = "shots"
background = { r = 0.1, g = 0.2, b = 0.3, a = 1.0 }
`))
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	if cfg.Title != "Camera" || cfg.Width != 800 {
		t.Errorf("title/width = %q/%d", cfg.Title, cfg.Width)
	}
	if cfg.Height != DefaultRunConfig().Height {
		t.Errorf("Height = %d, want default %d", cfg.Height, DefaultRunConfig().Height)
	}
	if !cfg.ShowFPS {
		t.Error("ShowFPS should be true")
	}
	ov := cfg.Overlay
	if !ov.Debug || !ov.PruneTouchOnRemove || ov.ScreenshotDir != "shots" {
		t.Errorf("overlay config = %+v", ov)
	}
	if ov.Background != (Color{0.1, 0.2, 0.3, 1}) {
		t.Errorf("Background = %+v", ov.Background)
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", `title = `, "load run config"},
		{"unknown key", `colour = "red"`, `unknown key "colour"`},
		{"zero width", `width = 0`, "must be positive"},
		{"background out of range", "[overlay]\nbackground = { r = 2.0 }", "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRunConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.toml")
	if err := os.WriteFile(path, []byte("height = 720\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRunConfigFile(path)
	if err != nil {
		t.Fatalf("LoadRunConfigFile: %v", err)
	}
	if cfg.Height != 720 || cfg.Width != DefaultRunConfig().Width {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}

	if _, err := LoadRunConfigFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestNewAppliesConfig(t *testing.T) {
	o := New(Config{
		Background:         Color{0, 0, 0, 1},
		Debug:              true,
		PruneTouchOnRemove: true,
		ScreenshotDir:      "out",
	})
	if o.Background.A != 1 || !o.debug || !o.pruneTouch || o.ScreenshotDir != "out" {
		t.Errorf("config not applied: %+v", o)
	}
}
