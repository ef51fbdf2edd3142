package engine

import (
	"container/heap"
	"time"
)

// maxCatchUp bounds how far a recurring task replays missed intervals after the host stalls
const maxCatchUp = time.Second

// TaskID identifies a scheduled task; zero means no task
type TaskID uint64

type task struct {
	id       TaskID
	due      time.Time
	interval time.Duration // 0 for one-shot
	fn       func()
	seq      uint64 // tie-break for equal due times, preserves scheduling order
	index    int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs one-shot and recurring callbacks against a Clock
// Not safe for concurrent use: the host loop owns it and calls RunDue once per frame,
// which gives callbacks the non-preemptible turn semantics of a browser event loop
type Scheduler struct {
	clock  Clock
	queue  taskQueue
	tasks  map[TaskID]*task
	nextID TaskID
	seq    uint64
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		tasks: make(map[TaskID]*task),
	}
}

// Now returns the scheduler's clock reading
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After schedules fn to run once, delay from now
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	return s.schedule(delay, 0, fn)
}

// Every schedules fn to run each interval, first run one interval from now
// Non-positive intervals are rejected with a zero TaskID
func (s *Scheduler) Every(interval time.Duration, fn func()) TaskID {
	if interval <= 0 {
		return 0
	}
	return s.schedule(interval, interval, fn)
}

func (s *Scheduler) schedule(delay, interval time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	t := &task{
		id:       s.nextID,
		due:      s.clock.Now().Add(delay),
		interval: interval,
		fn:       fn,
		seq:      s.seq,
	}
	s.tasks[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// Cancel removes a pending task, returns false if it already ran or never existed
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Active reports whether id is still scheduled
func (s *Scheduler) Active(id TaskID) bool {
	_, ok := s.tasks[id]
	return ok
}

// Len returns the number of scheduled tasks
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// RunDue executes every task due at or before now in due order and returns how many ran
// Tasks scheduled by callbacks with zero delay run in the same pass
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	ran := 0

	for s.queue.Len() > 0 {
		t := s.queue[0]
		if t.due.After(now) {
			break
		}
		heap.Pop(&s.queue)

		if t.interval > 0 {
			// Reschedule before running so the callback may cancel itself
			next := t.due.Add(t.interval)
			if now.Sub(next) > maxCatchUp {
				next = now.Add(t.interval)
			}
			s.seq++
			t.due = next
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.tasks, t.id)
		}

		t.fn()
		ran++
	}

	return ran
}
