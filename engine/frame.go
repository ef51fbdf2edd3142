package engine

// FrameID identifies a pending animation frame request; zero means none
type FrameID uint64

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue holds callbacks for the next animation frame
// Requests made while a frame is flushing run on the following frame
type FrameQueue struct {
	nextID  FrameID
	pending []frameRequest
}

// NewFrameQueue creates an empty frame queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Request queues fn for the next Flush
func (q *FrameQueue) Request(fn func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

// Cancel drops a pending request, returns false if not pending
func (q *FrameQueue) Cancel(id FrameID) bool {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of queued requests
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs the requests queued before this call, in request order
func (q *FrameQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, r := range batch {
		r.fn()
	}
	return len(batch)
}

// Coalescer keeps at most one pending frame request; a newer request supersedes the older one
type Coalescer struct {
	frames  *FrameQueue
	pending FrameID
}

// NewCoalescer creates a coalescer on top of frames
func NewCoalescer(frames *FrameQueue) *Coalescer {
	return &Coalescer{frames: frames}
}

// Request replaces any pending request with fn
func (c *Coalescer) Request(fn func()) {
	if c.pending != 0 {
		c.frames.Cancel(c.pending)
	}
	c.pending = c.frames.Request(func() {
		c.pending = 0
		fn()
	})
}

// Pending reports whether a request is waiting for the next frame
func (c *Coalescer) Pending() bool {
	return c.pending != 0
}
