package flipcard

import (
	"context"
	"sort"
	"time"
)

type step int

const (
	stepSwap step = iota
	stepReveal
)

type navKind int

const (
	navAdvance navKind = iota
	navRetreat
	navRewind
	navJump
)

func (k navKind) String() string {
	switch k {
	case navAdvance:
		return "advance"
	case navRetreat:
		return "retreat"
	case navRewind:
		return "rewind"
	default:
		return "jump"
	}
}

// rereveals reports whether the new entry is shown answered after the swap
func (k navKind) rereveals() bool {
	return k == navAdvance || k == navJump
}

// Task is a deferred continuation of a navigation command. Schedulers hand
// it back to Controller.Run once its delay has elapsed.
type Task struct {
	owner  *Controller
	epoch  uint64
	step   step
	kind   navKind
	target int
}

// Scheduler defers tasks. ctx is done when the controller is closed; a
// scheduler may use it to stop timers early, and the controller drops late
// deliveries either way.
type Scheduler interface {
	After(ctx context.Context, delay time.Duration, task Task)
}

// Timings are the delays of the swap choreography
type Timings struct {
	// Swap is how long content stays hidden before the index changes
	Swap time.Duration
	// Reveal is the pause before the next answer is shown again
	Reveal time.Duration
}

// DefaultTimings match the card's fade animation
var DefaultTimings = Timings{
	Swap:   200 * time.Millisecond,
	Reveal: 50 * time.Millisecond,
}

type queued struct {
	due  time.Duration
	seq  int
	task Task
}

// ManualScheduler queues tasks on a virtual clock that only moves when
// Advance is called. Headless callers and tests use it to drive the
// controller deterministically.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	queue []queued
}

// NewManualScheduler creates a scheduler at virtual time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) After(ctx context.Context, delay time.Duration, task Task) {
	if ctx.Err() != nil {
		return
	}
	s.seq++
	s.queue = append(s.queue, queued{due: s.now + delay, seq: s.seq, task: task})
}

// Pending returns the number of queued tasks
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// Advance moves the clock forward by d, running every task that falls due
// in order of due time, then enqueue order. Tasks scheduled by run are
// picked up if they fall due within the window.
func (s *ManualScheduler) Advance(d time.Duration, run func(Task)) {
	target := s.now + d
	for {
		sort.SliceStable(s.queue, func(i, j int) bool {
			if s.queue[i].due != s.queue[j].due {
				return s.queue[i].due < s.queue[j].due
			}
			return s.queue[i].seq < s.queue[j].seq
		})
		if len(s.queue) == 0 || s.queue[0].due > target {
			break
		}
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.now = next.due
		run(next.task)
	}
	s.now = target
}

// Flush runs everything queued, including follow-ups
func (s *ManualScheduler) Flush(run func(Task)) {
	for len(s.queue) > 0 {
		last := s.queue[0].due
		for _, q := range s.queue {
			if q.due > last {
				last = q.due
			}
		}
		s.Advance(last-s.now, run)
	}
}
