package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Renderer.NumFrames != DefaultNumFrames {
		t.Errorf("NumFrames = %d, want %d", cfg.Renderer.NumFrames, DefaultNumFrames)
	}
	if cfg.Input.CanvasSelector != DefaultCanvasSelector {
		t.Errorf("CanvasSelector = %q", cfg.Input.CanvasSelector)
	}
	if cfg.Input.AccelerometerEnabled || cfg.Input.GyrometerEnabled {
		t.Error("sensors should be disabled by default")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	data := []byte(`
[log]
level = "debug"

[input]
accelerometer_enabled = true
canvas_selector = "#game"

[renderer]
num_frames = 2
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Input.AccelerometerEnabled || cfg.Input.GyrometerEnabled {
		t.Errorf("sensor flags = %v/%v", cfg.Input.AccelerometerEnabled, cfg.Input.GyrometerEnabled)
	}
	if cfg.Input.CanvasSelector != "#game" || cfg.Renderer.NumFrames != 2 || cfg.Log.Level != "debug" {
		t.Errorf("unexpected config %+v", cfg)
	}
	// untouched keys keep their defaults
	if cfg.Input.TapMaxDurationMS != 250 {
		t.Errorf("TapMaxDurationMS = %d, want default", cfg.Input.TapMaxDurationMS)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[renderer\nnum_frames = 2"},
		{"zero frames", "[renderer]\nnum_frames = 0"},
		{"too many frames", "[renderer]\nnum_frames = 256"},
		{"empty selector", "[input]\ncanvas_selector = \"\""},
		{"negative tap", "[input]\ntap_max_duration_ms = -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	if err := SetLogLevel("nope"); !errors.Is(err, ErrInvalidLogLevel) {
		t.Errorf("SetLogLevel(nope) = %v", err)
	}
	if err := SetLogLevel("warn"); err != nil {
		t.Error(err)
	}
	_ = SetLogLevel("info")
}

func TestConfigWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	if err := os.WriteFile(path, []byte("[renderer]\nnum_frames = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan *Config, 8)
	cw, err := NewConfigWatcher(path, func(c *Config) {
		select {
		case changes <- c:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer cw.Close()

	if err := os.WriteFile(path, []byte("[renderer]\nnum_frames = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.Renderer.NumFrames == 4 {
				return
			}
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}
}

func TestConfigWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	cw, err := NewConfigWatcher(path, func(*Config) {})
	if err != nil {
		t.Fatal(err)
	}
	if err := cw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := cw.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second Close = %v", err)
	}
	if _, err := NewConfigWatcher(path, nil); !errors.Is(err, ErrNilCallback) {
		t.Errorf("nil callback = %v", err)
	}
}
