package grid

import "sync"

// ViewportSource supplies the live viewport width. The real implementation
// lives in the rendering host (browser bridge, window system); the engine
// only needs the current width and a resize signal.
type ViewportSource interface {
	// Width returns the current viewport width in pixels.
	Width() int
	// Subscribe registers a resize callback and returns an unsubscribe
	// function. Callbacks receive the new width.
	Subscribe(fn func(width int)) (unsubscribe func())
}

// SimulatedViewport is an in-memory ViewportSource for tests and headless
// use. SetWidth notifies subscribers synchronously.
type SimulatedViewport struct {
	mu        sync.Mutex
	width     int
	listeners []func(int)
}

// NewSimulatedViewport creates a viewport at the given starting width.
func NewSimulatedViewport(width int) *SimulatedViewport {
	if width < 0 {
		width = 0
	}
	return &SimulatedViewport{width: width}
}

// Width returns the simulated width.
func (v *SimulatedViewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// SetWidth updates the width and fires every subscriber in registration
// order.
func (v *SimulatedViewport) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	v.mu.Lock()
	v.width = width
	fns := make([]func(int), len(v.listeners))
	copy(fns, v.listeners)
	v.mu.Unlock()

	for _, fn := range fns {
		if fn != nil {
			fn(width)
		}
	}
}

// Subscribe registers a resize callback. The returned function removes it;
// slots are nilled rather than reordered so other unsubscribers stay valid.
func (v *SimulatedViewport) Subscribe(fn func(width int)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
	idx := len(v.listeners) - 1
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.listeners[idx] = nil
	}
}
