package input

import (
	"time"

	"github.com/spaghettifunk/lumen/engine/core"
)

// Setup holds the parameters an input manager is set up with.
type Setup struct {
	// Install the device motion callback.
	AccelerometerEnabled bool
	// Install the device orientation callback.
	GyrometerEnabled bool
	// Element the pointer and touch callbacks attach to (browser only).
	CanvasSelector string

	TapMaxDuration  time.Duration
	DoubleTapMaxGap time.Duration
	TapMaxDistance  float32
}

func DefaultSetup() Setup {
	return SetupFromConfig(core.DefaultConfig().Input)
}

func SetupFromConfig(cfg core.InputConfig) Setup {
	return Setup{
		AccelerometerEnabled: cfg.AccelerometerEnabled,
		GyrometerEnabled:     cfg.GyrometerEnabled,
		CanvasSelector:       cfg.CanvasSelector,
		TapMaxDuration:       time.Duration(cfg.TapMaxDurationMS) * time.Millisecond,
		DoubleTapMaxGap:      time.Duration(cfg.DoubleTapMaxGapMS) * time.Millisecond,
		TapMaxDistance:       cfg.TapMaxDistance,
	}
}
