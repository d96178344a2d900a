package core

import "sync"

// RunLoopID identifies a callback registered on a RunLoop.
type RunLoopID uint32

const InvalidRunLoopID RunLoopID = ^RunLoopID(0)

// RunLoop is a list of callbacks invoked once per frame, in registration order.
// Slots of removed callbacks are reused by later registrations.
type RunLoop struct {
	mu        sync.RWMutex
	callbacks []func()
}

func NewRunLoop() *RunLoop {
	return &RunLoop{}
}

// Add registers fn and returns its id.
func (rl *RunLoop) Add(fn func()) (RunLoopID, error) {
	if fn == nil {
		return InvalidRunLoopID, ErrNilCallback
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for i := range rl.callbacks {
		// Existing free spot. Take it.
		if rl.callbacks[i] == nil {
			rl.callbacks[i] = fn
			return RunLoopID(i), nil
		}
	}
	rl.callbacks = append(rl.callbacks, fn)
	return RunLoopID(len(rl.callbacks) - 1), nil
}

// Remove unregisters the callback with the given id.
func (rl *RunLoop) Remove(id RunLoopID) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if int(id) >= len(rl.callbacks) || rl.callbacks[id] == nil {
		return ErrInvalidRunLoopID
	}
	rl.callbacks[id] = nil
	return nil
}

// Has reports whether id is currently registered.
func (rl *RunLoop) Has(id RunLoopID) bool {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return int(id) < len(rl.callbacks) && rl.callbacks[id] != nil
}

// Len returns the number of registered callbacks.
func (rl *RunLoop) Len() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	n := 0
	for _, cb := range rl.callbacks {
		if cb != nil {
			n++
		}
	}
	return n
}

// Run invokes every registered callback once. Callbacks may add or remove
// entries; changes take effect on the next Run.
func (rl *RunLoop) Run() {
	rl.mu.RLock()
	snapshot := make([]func(), len(rl.callbacks))
	copy(snapshot, rl.callbacks)
	rl.mu.RUnlock()

	for _, cb := range snapshot {
		if cb != nil {
			cb()
		}
	}
}
