package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagbar/internal/domain"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventTagRemoved, func(e DomainEvent) { got <- e })

	b.Publish(TagRemovedEvent{Tag: domain.Tag("cat")})

	select {
	case e := <-got:
		ev, ok := e.(TagRemovedEvent)
		require.True(t, ok)
		assert.Equal(t, domain.Tag("cat"), ev.Tag)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var mu sync.Mutex
	calls := 0
	unsubscribe := b.Subscribe(EventSearchCancelled, func(DomainEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	done := make(chan struct{}, 1)
	b.Subscribe(EventSearchCancelled, func(DomainEvent) { done <- struct{}{} })

	unsubscribe()
	b.Publish(SearchCancelledEvent{})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	// Give any stray handler goroutine a chance to run
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, calls)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ok := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})

	select {
	case <-ok:
	case <-time.After(time.Second):
		t.Fatal("healthy handler did not run after a panicking one")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	b.Close()

	assert.NotPanics(t, func() {
		b.Publish(SearchCancelledEvent{})
	})
}
