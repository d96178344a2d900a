//go:build js && wasm

// Browser input monitor: installs the HTML5 input adapter on #canvas and
// logs the input events to the console.
package main

import (
	"syscall/js"
	"time"

	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/input"
	"github.com/spaghettifunk/lumen/engine/input/html5"
	"github.com/spaghettifunk/lumen/engine/input/html5/dom"
)

func main() {
	cfg := core.DefaultConfig()
	cfg.Input.AccelerometerEnabled = true
	cfg.Input.GyrometerEnabled = true
	if err := cfg.Apply(); err != nil {
		core.LogFatal("%s", err)
	}

	runLoop := core.NewRunLoop()
	m := html5.NewManager(dom.New(), runLoop, core.NewClock())
	m.Mouse.PointerLock = func(ev input.ButtonEvent, down bool) input.PointerLockMode {
		if ev.Button == input.MouseButtonLeft && down {
			return input.PointerLockModeEnable
		}
		return input.PointerLockModeDontCare
	}
	if err := m.Setup(input.SetupFromConfig(cfg.Input)); err != nil {
		core.LogFatal("failed to set up input: %s", err)
	}

	logEvent := func(code core.EventCode, _ interface{}, ctx core.EventContext) bool {
		core.LogInfo("event %d: %+v", code, ctx.Data)
		return false
	}
	for _, code := range []core.EventCode{
		core.EVENT_CODE_KEY_PRESSED,
		core.EVENT_CODE_BUTTON_PRESSED,
		core.EVENT_CODE_MOUSE_WHEEL,
		core.EVENT_CODE_TOUCH,
	} {
		if _, err := m.Subscribe(code, logEvent); err != nil {
			core.LogError("%s", err)
		}
	}

	done := make(chan struct{})
	metrics := core.NewFrameMetrics()
	last := time.Now()
	var onFrame js.Func
	onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		now := time.Now()
		metrics.Update(now.Sub(last))
		last = now

		if m.Touchpad.Tapped {
			core.LogInfo("tap at %v", m.Touchpad.Position(0))
		}
		if m.Touchpad.DoubleTapped {
			core.LogInfo("double tap, %.0f fps", metrics.FPS())
		}
		if m.Keyboard.KeyDown(input.KeyEscape) {
			if err := m.Discard(); err != nil {
				core.LogError("%s", err)
			}
			onFrame.Release()
			close(done)
			return nil
		}

		runLoop.Run()
		js.Global().Call("requestAnimationFrame", onFrame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", onFrame)

	<-done
}
