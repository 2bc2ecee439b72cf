package host

// Cancel releases a frame request or a subscription. Calling it more than
// once, or after the callback already fired, does nothing.
type Cancel func()

// FrameFunc runs once on the frame it was requested for. The argument is
// the frame number, starting at 1.
type FrameFunc func(frame uint64)

type request struct {
	fn FrameFunc
}

// Scheduler hands out one-shot frame callbacks, in the manner of a display
// refresh scheduler. It is not safe for concurrent use; it belongs to the
// loop goroutine.
type Scheduler struct {
	pending []*request
	frame   uint64
	closed  bool
}

// RequestFrame queues fn for the next Tick.
func (s *Scheduler) RequestFrame(fn FrameFunc) Cancel {
	if s.closed || fn == nil {
		return func() {}
	}
	r := &request{fn: fn}
	s.pending = append(s.pending, r)
	return func() { s.cancel(r) }
}

func (s *Scheduler) cancel(r *request) {
	// Clearing fn also covers a request detached into the running batch.
	r.fn = nil
	for i, p := range s.pending {
		if p == r {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Tick runs every callback queued before the call, in request order.
// Callbacks requested while ticking wait for the next Tick.
func (s *Scheduler) Tick() {
	if s.closed {
		return
	}
	s.frame++
	batch := s.pending
	s.pending = nil
	for _, r := range batch {
		fn := r.fn
		if fn == nil {
			continue
		}
		r.fn = nil
		fn(s.frame)
	}
}

// Every runs fn on each frame until the returned Cancel runs. Cancelling
// from inside fn stops the loop after the current frame.
func (s *Scheduler) Every(fn FrameFunc) Cancel {
	var (
		cancel  Cancel
		stopped bool
		frame   FrameFunc
	)
	frame = func(n uint64) {
		fn(n)
		if !stopped {
			cancel = s.RequestFrame(frame)
		}
	}
	cancel = s.RequestFrame(frame)
	return func() {
		stopped = true
		cancel()
	}
}

// Pending reports how many callbacks wait for the next Tick.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Frame reports how many ticks have run.
func (s *Scheduler) Frame() uint64 { return s.frame }

// Close drops all pending callbacks and refuses new ones.
func (s *Scheduler) Close() {
	for _, r := range s.pending {
		r.fn = nil
	}
	s.pending = nil
	s.closed = true
}
