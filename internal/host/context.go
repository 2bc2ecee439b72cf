// Package host is the page-level context shared by every mounted
// component: one frame scheduler and one viewport signal, created at
// startup and torn down at exit.
package host

// Context owns the frame scheduler and the viewport for one page.
type Context struct {
	Frames   *Scheduler
	Viewport *Viewport
	closed   bool
}

// New creates a context for a viewport of the given size.
func New(width, height float64) *Context {
	return &Context{
		Frames:   &Scheduler{},
		Viewport: NewViewport(width, height),
	}
}

// Tick delivers any pending resize, then runs one frame.
func (c *Context) Tick() {
	if c.closed {
		return
	}
	c.Viewport.Flush()
	c.Frames.Tick()
}

// Close drops pending frames and detaches listeners. Ticks after Close do
// nothing.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.Frames.Close()
	c.Viewport.Close()
}

// Closed reports whether Close has run.
func (c *Context) Closed() bool { return c.closed }
