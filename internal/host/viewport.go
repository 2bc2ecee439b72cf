package host

import "sync"

// ResizeFunc receives the new viewport size.
type ResizeFunc func(width, height float64)

type listener struct {
	fn ResizeFunc
}

// Viewport is the observable viewport size. Resize may be called from any
// goroutine; listeners only ever run from Flush, on the loop goroutine.
type Viewport struct {
	mu            sync.Mutex
	width, height float64
	dirty         bool

	listeners []*listener
	closed    bool
}

// NewViewport returns a viewport with an initial size.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{width: width, height: height}
}

// Size returns the latest known size.
func (v *Viewport) Size() (float64, float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// Resize records a new size for delivery on the next Flush. Repeated
// resizes between flushes collapse into the last one.
func (v *Viewport) Resize(width, height float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.dirty = true
}

// Subscribe attaches fn until the returned Cancel runs.
func (v *Viewport) Subscribe(fn ResizeFunc) Cancel {
	if fn == nil {
		return func() {}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return func() {}
	}
	l := &listener{fn: fn}
	v.listeners = append(v.listeners, l)
	return func() { v.unsubscribe(l) }
}

func (v *Viewport) unsubscribe(l *listener) {
	v.mu.Lock()
	defer v.mu.Unlock()
	l.fn = nil
	for i, x := range v.listeners {
		if x == l {
			v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
			return
		}
	}
}

// Listeners reports how many subscriptions are attached.
func (v *Viewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// Flush delivers a pending size change to every listener. It reports
// whether anything was delivered.
func (v *Viewport) Flush() bool {
	v.mu.Lock()
	if !v.dirty || v.closed {
		v.mu.Unlock()
		return false
	}
	v.dirty = false
	w, h := v.width, v.height
	snapshot := append([]*listener(nil), v.listeners...)
	v.mu.Unlock()

	for _, l := range snapshot {
		v.mu.Lock()
		fn := l.fn
		v.mu.Unlock()
		if fn != nil {
			fn(w, h)
		}
	}
	return true
}

// Close detaches every listener.
func (v *Viewport) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, l := range v.listeners {
		l.fn = nil
	}
	v.listeners = nil
	v.closed = true
}
