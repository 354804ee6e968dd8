package flipcard

import (
	"testing"

	"pgregory.net/rapid"

	"faqflip/internal/progress"
)

func startAt(t *rapid.T, n, start int) (*Controller, *ManualScheduler) {
	store := progress.NewMemoryStore()
	if err := progress.WriteIndex(store, progress.KeyIndex, start); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	sched := NewManualScheduler()
	c, err := New(makeEntries(n), WithStore(store), WithScheduler(sched))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Snapshot().CurrentIndex; got != start {
		t.Fatalf("restored index %d, want %d", got, start)
	}
	return c, sched
}

func TestAdvanceWrapsAround(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 25).Draw(t, "n")
		start := rapid.IntRange(0, n-1).Draw(t, "start")
		c, s := startAt(t, n, start)

		for i := 0; i < n; i++ {
			if !c.Advance() {
				t.Fatalf("advance %d rejected", i)
			}
			s.Flush(c.Run)
		}
		if got := c.Snapshot().CurrentIndex; got != start {
			t.Fatalf("after %d advances index is %d, want %d", n, got, start)
		}
	})
}

func TestRetreatWrapsAround(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 25).Draw(t, "n")
		start := rapid.IntRange(0, n-1).Draw(t, "start")
		c, s := startAt(t, n, start)

		for i := 0; i < n; i++ {
			if !c.Retreat() {
				t.Fatalf("retreat %d rejected", i)
			}
			s.Flush(c.Run)
		}
		if got := c.Snapshot().CurrentIndex; got != start {
			t.Fatalf("after %d retreats index is %d, want %d", n, got, start)
		}
	})
}

func TestWatermarkMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 15).Draw(t, "n")
		c, s := startAt(t, n, 0)
		ops := rapid.SliceOfN(rapid.IntRange(0, 6), 1, 60).Draw(t, "ops")

		prev := c.Snapshot().HighestReached
		for _, op := range ops {
			switch op {
			case 0:
				c.Advance()
			case 1:
				c.Retreat()
			case 2:
				c.Rewind()
			case 3:
				c.JumpTo(rapid.IntRange(0, n-1).Draw(t, "target"))
			case 4:
				c.Reveal()
			case 5:
				// let only part of the choreography run
				s.Advance(DefaultTimings.Swap, c.Run)
				continue
			case 6:
				c.OpenImage(rapid.IntRange(-1, 3).Draw(t, "image"))
			}
			s.Flush(c.Run)

			st := c.Snapshot()
			if st.HighestReached < prev {
				t.Fatalf("watermark went down: %d -> %d", prev, st.HighestReached)
			}
			if st.HighestReached < st.CurrentIndex {
				t.Fatalf("watermark %d behind index %d", st.HighestReached, st.CurrentIndex)
			}
			if st.CurrentIndex < 0 || st.CurrentIndex >= n {
				t.Fatalf("index %d out of range", st.CurrentIndex)
			}
			if st.IsTransitioning {
				t.Fatalf("still transitioning after flush")
			}
			prev = st.HighestReached
		}
	})
}
