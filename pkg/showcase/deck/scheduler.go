package deck

import (
	"sort"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Task is a handle to deferred work.
type Task interface {
	// Stop cancels the task. It returns false if the task already ran or was stopped.
	Stop() bool
}

// Scheduler runs a function once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// LoopScheduler queues deferred work for an event loop. Nothing runs until the
// loop calls RunDue, so callbacks execute on the loop's goroutine and never race
// with input handling.
type LoopScheduler struct {
	clock Clock
	tasks []*loopTask
	seq   uint64
}

type loopTask struct {
	due     time.Time
	seq     uint64
	fn      func()
	done    bool
	stopped bool
}

func (t *loopTask) Stop() bool {
	if t.done || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewLoopScheduler creates a scheduler that measures delays with clock.
func NewLoopScheduler(clock Clock) *LoopScheduler {
	return &LoopScheduler{clock: clock}
}

// AfterFunc queues fn to run once d has elapsed.
func (s *LoopScheduler) AfterFunc(d time.Duration, fn func()) Task {
	s.seq++
	t := &loopTask{due: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// RunDue runs every task due at or before now, oldest deadline first, and
// returns how many ran. Tasks queued by a callback wait for the next call.
func (s *LoopScheduler) RunDue(now time.Time) int {
	if len(s.tasks) == 0 {
		return 0
	}

	var due, pending []*loopTask
	for _, t := range s.tasks {
		switch {
		case t.stopped:
		case !t.due.After(now):
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	s.tasks = pending

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, t := range due {
		// An earlier callback may have stopped a later one.
		if t.stopped {
			continue
		}
		t.done = true
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued tasks that have not been stopped.
func (s *LoopScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// NextDue returns the earliest deadline among pending tasks.
func (s *LoopScheduler) NextDue() (time.Time, bool) {
	var next time.Time
	found := false
	for _, t := range s.tasks {
		if t.stopped {
			continue
		}
		if !found || t.due.Before(next) {
			next = t.due
			found = true
		}
	}
	return next, found
}
