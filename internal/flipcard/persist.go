package flipcard

import (
	"errors"

	"go.uber.org/zap"

	"faqflip/internal/eventbus"
	"faqflip/internal/progress"
)

// restore applies persisted progress over the defaults. Anything missing,
// unreadable or out of range keeps its default.
func (c *Controller) restore() {
	if c.store == nil {
		return
	}
	n := len(c.entries)

	if idx, ok := c.readIndex(progress.KeyIndex, n); ok {
		c.state.CurrentIndex = idx
	}
	if high, ok := c.readIndex(progress.KeyHighest, n); ok {
		c.state.HighestReached = high
	}
	if c.state.HighestReached < c.state.CurrentIndex {
		c.state.HighestReached = c.state.CurrentIndex
	}

	c.log.Info("progress restored",
		zap.Int("index", c.state.CurrentIndex),
		zap.Int("highest", c.state.HighestReached),
		zap.Int("entries", n))
	c.publish(eventbus.ProgressRestoredEvent{
		CurrentIndex:   c.state.CurrentIndex,
		HighestReached: c.state.HighestReached,
	})
}

func (c *Controller) readIndex(key string, n int) (int, bool) {
	idx, err := progress.ReadIndex(c.store, key, n)
	switch {
	case err == nil:
		return idx, true
	case errors.Is(err, progress.ErrNotFound):
	case progress.IsMalformed(err):
		c.log.Warn("discarding persisted progress", zap.Error(err))
	default:
		c.log.Warn("failed to read persisted progress", zap.String("key", key), zap.Error(err))
	}
	return 0, false
}

// persist writes the position after an index change. The first failure
// switches the controller to in-memory progress for the rest of the session.
func (c *Controller) persist() {
	if c.store == nil {
		return
	}

	err := progress.WriteIndex(c.store, progress.KeyIndex, c.state.CurrentIndex)
	if err == nil {
		err = progress.WriteIndex(c.store, progress.KeyHighest, c.state.HighestReached)
	}
	if err != nil {
		c.log.Warn("progress storage unavailable, keeping progress in memory", zap.Error(err))
		c.store = nil
		c.publish(eventbus.ProgressSaveFailedEvent{Err: err})
		return
	}

	c.publish(eventbus.ProgressSavedEvent{
		CurrentIndex:   c.state.CurrentIndex,
		HighestReached: c.state.HighestReached,
	})
}

// Persistent reports whether progress is still being written to storage
func (c *Controller) Persistent() bool {
	return c.store != nil
}
