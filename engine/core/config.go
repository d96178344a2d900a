package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultCanvasSelector = "#canvas"
	DefaultNumFrames      = 3
	MaxNumFrames          = 255
)

type LogConfig struct {
	// charmbracelet level name: debug, info, warn, error, fatal
	Level string `toml:"level"`
}

type InputConfig struct {
	// Install the device motion callback.
	AccelerometerEnabled bool `toml:"accelerometer_enabled"`
	// Install the device orientation callback.
	GyrometerEnabled bool `toml:"gyrometer_enabled"`
	// CSS selector of the element mouse, wheel and touch callbacks attach to.
	CanvasSelector string `toml:"canvas_selector"`
	// Longest touch, in milliseconds, still recognized as a tap.
	TapMaxDurationMS int `toml:"tap_max_duration_ms"`
	// Longest gap, in milliseconds, between the taps of a double tap.
	DoubleTapMaxGapMS int `toml:"double_tap_max_gap_ms"`
	// Distance, in pixels, a touch may travel before it becomes a pan.
	TapMaxDistance float32 `toml:"tap_max_distance"`
}

type RendererConfig struct {
	// Number of frames the GPU may have in flight; sizes the mesh slot rings.
	NumFrames int `toml:"num_frames"`
}

// Config is the engine configuration, usually loaded from a TOML file.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Input    InputConfig    `toml:"input"`
	Renderer RendererConfig `toml:"renderer"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Input: InputConfig{
			CanvasSelector:    DefaultCanvasSelector,
			TapMaxDurationMS:  250,
			DoubleTapMaxGapMS: 300,
			TapMaxDistance:    10,
		},
		Renderer: RendererConfig{
			NumFrames: DefaultNumFrames,
		},
	}
}

// ParseConfig decodes TOML on top of the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Renderer.NumFrames < 1 || c.Renderer.NumFrames > MaxNumFrames {
		return fmt.Errorf("%w: renderer.num_frames must be in [1, %d], got %d", ErrInvalidConfig, MaxNumFrames, c.Renderer.NumFrames)
	}
	if c.Input.CanvasSelector == "" {
		return fmt.Errorf("%w: input.canvas_selector is empty", ErrInvalidConfig)
	}
	if c.Input.TapMaxDurationMS < 0 || c.Input.DoubleTapMaxGapMS < 0 || c.Input.TapMaxDistance < 0 {
		return fmt.Errorf("%w: input tap thresholds must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Apply pushes the process-wide parts of the configuration (log level).
func (c *Config) Apply() error {
	if c.Log.Level == "" {
		return nil
	}
	return SetLogLevel(c.Log.Level)
}
