package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversInOrder(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})

	b.Subscribe(EventIndexChanged, func(e DomainEvent) {
		ev := e.(IndexChangedEvent)
		mu.Lock()
		got = append(got, ev.NewIndex)
		n := len(got)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
	})

	for i := 1; i <= 3; i++ {
		b.Publish(IndexChangedEvent{OldIndex: i - 1, NewIndex: i})
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("events were not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	calls := make(chan string, 4)
	unsubscribe := b.Subscribe(EventProgressSaved, func(DomainEvent) { calls <- "first" })
	b.Subscribe(EventProgressSaved, func(DomainEvent) { calls <- "second" })

	unsubscribe()
	b.Publish(ProgressSavedEvent{CurrentIndex: 1})

	select {
	case name := <-calls:
		assert.Equal(t, "second", name)
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber not called")
	}

	select {
	case name := <-calls:
		t.Fatalf("unexpected extra call from %s", name)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ok := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})

	select {
	case <-ok:
	case <-time.After(time.Second):
		t.Fatal("second handler not reached after panic")
	}
}

func TestPublishAfterClose(t *testing.T) {
	b := New(nil)
	b.Close()
	require.NotPanics(t, func() {
		b.Publish(ErrorEvent{Message: "late"})
		b.Close()
	})
}
