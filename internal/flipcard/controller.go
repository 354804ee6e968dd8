// Package flipcard is the navigation and progress state machine behind the
// FAQ flip card. A Controller owns one State, walks it through the
// question/answer/transition modes and persists the reading position.
//
// The controller is not safe for concurrent use. Commands and task
// deliveries are expected to come from one event loop, and IsTransitioning is
// the only guard against overlapping navigation.
package flipcard

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"faqflip/internal/domain"
	"faqflip/internal/eventbus"
	"faqflip/internal/progress"
)

// DefaultLookahead is how many entries past the current one the sidebar
// may disclose
const DefaultLookahead = 4

var ErrNoEntries = errors.New("flipcard needs at least one entry")

// Controller drives the flip card over a fixed, ordered entry list
type Controller struct {
	entries   []domain.Entry
	state     State
	store     progress.Store
	sched     Scheduler
	bus       eventbus.EventBus
	log       *zap.Logger
	timings   Timings
	lookahead int

	epoch  uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// Option configures a Controller
type Option func(*Controller)

// WithStore persists progress in s
func WithStore(s progress.Store) Option {
	return func(c *Controller) { c.store = s }
}

// WithScheduler sets who runs deferred tasks
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithBus publishes state changes on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(c *Controller) { c.bus = bus }
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTimings overrides the swap choreography delays
func WithTimings(t Timings) Option {
	return func(c *Controller) { c.timings = t }
}

// WithLookahead overrides how far the sidebar looks ahead
func WithLookahead(n int) Option {
	return func(c *Controller) {
		if n >= 0 {
			c.lookahead = n
		}
	}
}

// WithContext ties the controller's lifetime to ctx as well as Close
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		c.cancel()
		c.ctx, c.cancel = context.WithCancel(ctx)
	}
}

// New creates a controller at the default state and restores any valid
// persisted position. Without a scheduler, tasks are queued on a
// ManualScheduler reachable through Scheduler().
func New(entries []domain.Entry, opts ...Option) (*Controller, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	c := &Controller{
		entries:   entries,
		state:     defaultState(),
		log:       zap.NewNop(),
		timings:   DefaultTimings,
		lookahead: DefaultLookahead,
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())

	for _, opt := range opts {
		opt(c)
	}
	if c.sched == nil {
		c.sched = NewManualScheduler()
	}
	c.log = c.log.Named("flipcard")

	c.restore()
	return c, nil
}

// Close ends the controller's lifetime; tasks delivered afterwards are
// dropped
func (c *Controller) Close() {
	c.cancel()
}

// Closed reports whether Close was called or the parent context ended
func (c *Controller) Closed() bool {
	return c.ctx.Err() != nil
}

// Scheduler returns the scheduler tasks are handed to
func (c *Controller) Scheduler() Scheduler {
	return c.sched
}

// Len returns the number of entries
func (c *Controller) Len() int {
	return len(c.entries)
}

// Entries returns the entry list. Callers must not modify it.
func (c *Controller) Entries() []domain.Entry {
	return c.entries
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	return c.state
}

// Reveal shows the current answer
func (c *Controller) Reveal() bool {
	if c.Closed() || c.state.IsTransitioning || c.state.IsRevealed {
		return false
	}
	c.setRevealed(true)
	return true
}

// Advance moves to the next entry, wrapping at the end, and shows its answer
func (c *Controller) Advance() bool {
	return c.begin(navAdvance, 0)
}

// Retreat moves to the previous entry, wrapping at the start. The entry is
// left unrevealed.
func (c *Controller) Retreat() bool {
	return c.begin(navRetreat, 0)
}

// Rewind returns to the first entry, unrevealed
func (c *Controller) Rewind() bool {
	return c.begin(navRewind, 0)
}

// JumpTo moves straight to index and shows its answer
func (c *Controller) JumpTo(index int) bool {
	if index < 0 || index >= len(c.entries) || index == c.state.CurrentIndex {
		return false
	}
	return c.begin(navJump, index)
}

func (c *Controller) begin(kind navKind, target int) bool {
	if c.Closed() {
		return false
	}
	if c.state.IsTransitioning {
		c.log.Debug("navigation dropped during transition", zap.Stringer("command", kind))
		return false
	}

	c.epoch++
	c.state.IsTransitioning = true
	c.publish(eventbus.TransitionStartedEvent{Command: kind.String(), From: c.state.CurrentIndex})
	c.schedule(c.timings.Swap, Task{epoch: c.epoch, step: stepSwap, kind: kind, target: target})
	return true
}

// Run completes a task previously handed to the scheduler
func (c *Controller) Run(t Task) {
	if t.owner != c || c.Closed() {
		return
	}
	if t.epoch != c.epoch {
		c.log.Debug("stale task dropped", zap.Stringer("command", t.kind))
		return
	}

	switch t.step {
	case stepSwap:
		if !c.state.IsTransitioning {
			return
		}
		c.setRevealed(false)
		c.state.FocusedImage = NoImage
		c.setIndex(c.destination(t))
		c.state.IsTransitioning = false
		if t.kind.rereveals() {
			c.schedule(c.timings.Reveal, Task{epoch: t.epoch, step: stepReveal, kind: t.kind})
		}

	case stepReveal:
		if c.state.IsTransitioning {
			return
		}
		c.setRevealed(true)
	}
}

func (c *Controller) destination(t Task) int {
	n := len(c.entries)
	switch t.kind {
	case navAdvance:
		return (c.state.CurrentIndex + 1) % n
	case navRetreat:
		return (c.state.CurrentIndex - 1 + n) % n
	case navRewind:
		return 0
	default:
		return t.target
	}
}

func (c *Controller) schedule(delay time.Duration, t Task) {
	t.owner = c
	c.sched.After(c.ctx, delay, t)
}

func (c *Controller) setRevealed(v bool) {
	if c.state.IsRevealed == v {
		return
	}
	c.state.IsRevealed = v
	c.publish(eventbus.RevealChangedEvent{Index: c.state.CurrentIndex, Revealed: v})
}

func (c *Controller) setIndex(idx int) {
	old := c.state.CurrentIndex
	c.state.CurrentIndex = idx
	if idx > c.state.HighestReached {
		c.state.HighestReached = idx
	}
	c.publish(eventbus.IndexChangedEvent{
		OldIndex:       old,
		NewIndex:       idx,
		HighestReached: c.state.HighestReached,
	})
	c.persist()
}

// OpenImage enlarges image i of the current entry
func (c *Controller) OpenImage(i int) bool {
	if c.Closed() || c.state.IsTransitioning {
		return false
	}
	if i < 0 || i >= c.Current().ImageCount() {
		return false
	}
	c.focusImage(i)
	return true
}

// CloseImage closes the lightbox
func (c *Controller) CloseImage() bool {
	if !c.state.ImageOpen() {
		return false
	}
	c.focusImage(NoImage)
	return true
}

// Cancel is the global Escape signal
func (c *Controller) Cancel() bool {
	return c.CloseImage()
}

// CycleImage moves the open lightbox by dir (+1 or -1) with wraparound
func (c *Controller) CycleImage(dir int) bool {
	n := c.Current().ImageCount()
	if !c.state.ImageOpen() || n <= 1 || dir == 0 {
		return false
	}
	step := 1
	if dir < 0 {
		step = n - 1
	}
	c.focusImage((c.state.FocusedImage + step) % n)
	return true
}

func (c *Controller) focusImage(i int) {
	c.state.FocusedImage = i
	c.publish(eventbus.ImageFocusedEvent{Index: c.state.CurrentIndex, Image: i})
}

func (c *Controller) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
