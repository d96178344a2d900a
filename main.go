//go:build !js

/*
Input monitor for the desktop adapter: opens a window, feeds the engine
input state from it and logs what arrives. Right mouse button toggles the
pointer lock, Escape quits.
*/
package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/input"
	"github.com/spaghettifunk/lumen/engine/platform"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		loaded, err := core.LoadConfig(*configPath)
		if err != nil {
			core.LogFatal("failed to load config: %s", err)
		}
		cfg = loaded
		watcher, err := core.NewConfigWatcher(*configPath, func(c *core.Config) {
			if err := c.Apply(); err != nil {
				core.LogWarn("config reload: %s", err)
			}
		})
		if err != nil {
			core.LogWarn("config hot reload disabled: %s", err)
		} else {
			defer watcher.Close()
		}
	}
	if err := cfg.Apply(); err != nil {
		core.LogFatal("%s", err)
	}

	if err := glfw.Init(); err != nil {
		core.LogFatal("failed to initialize glfw: %s", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(800, 600, "Lumen input monitor", nil, nil)
	if err != nil {
		core.LogFatal("failed to create window: %s", err)
	}
	defer window.Destroy()

	runLoop := core.NewRunLoop()
	p := platform.New(window, runLoop)
	if err := p.Setup(input.SetupFromConfig(cfg.Input)); err != nil {
		core.LogFatal("failed to set up input: %s", err)
	}
	defer func() {
		if err := p.Discard(); err != nil {
			core.LogError("%s", err)
		}
	}()

	p.Mouse.PointerLock = func(ev input.ButtonEvent, down bool) input.PointerLockMode {
		if ev.Button != input.MouseButtonRight || !down {
			return input.PointerLockModeDontCare
		}
		if p.PointerLockActive() {
			return input.PointerLockModeDisable
		}
		return input.PointerLockModeEnable
	}
	if err := subscribeLogging(p.Manager); err != nil {
		core.LogFatal("%s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	metrics := core.NewFrameMetrics()
	clock := core.NewClock()
	clock.Start()
	last := clock.Now()
	for !window.ShouldClose() {
		select {
		case <-sigCh:
			window.SetShouldClose(true)
		default:
		}

		glfw.WaitEventsTimeout(1.0 / 60.0)
		if p.Keyboard.KeyDown(input.KeyEscape) {
			window.SetShouldClose(true)
		}
		if mov := p.Mouse.Movement(); p.PointerLockActive() && mov.LengthSquared() > 0 {
			core.LogDebug("locked movement %.1f,%.1f", mov.X, mov.Y)
		}

		now := clock.Now()
		metrics.Update(now.Sub(last))
		last = now
		clock.Update()
		if clock.Elapsed() >= 5*time.Second {
			core.LogInfo("%.0f fps, %.2f ms/frame", metrics.FPS(), metrics.FrameTime())
			clock.Start()
		}

		runLoop.Run()
	}
}

func subscribeLogging(m *input.Manager) error {
	logEvent := func(code core.EventCode, _ interface{}, ctx core.EventContext) bool {
		switch ev := ctx.Data.(type) {
		case input.KeyEvent:
			core.LogInfo("key %s (event %d)", ev.Key, code)
		case input.CharEvent:
			core.LogDebug("char %q", ev.Char)
		case input.ButtonEvent:
			core.LogInfo("button %d at %.0f,%.0f (event %d)", ev.Button, ev.Position.X, ev.Position.Y, code)
		case input.ScrollEvent:
			core.LogInfo("scroll %.1f,%.1f", ev.Scroll.X, ev.Scroll.Y)
		}
		return false
	}
	codes := []core.EventCode{
		core.EVENT_CODE_KEY_PRESSED,
		core.EVENT_CODE_KEY_RELEASED,
		core.EVENT_CODE_CHAR,
		core.EVENT_CODE_BUTTON_PRESSED,
		core.EVENT_CODE_BUTTON_RELEASED,
		core.EVENT_CODE_MOUSE_WHEEL,
	}
	var errs []error
	for _, code := range codes {
		if _, err := m.Subscribe(code, logEvent); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
