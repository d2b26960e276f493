package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribersInOrder(t *testing.T) {
	bus := New()
	defer bus.Close()

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})

	bus.Subscribe(EventBulkActionCompleted, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(BulkActionCompletedEvent).Action)
		if len(got) == 2 {
			close(done)
		}
	})

	bus.Publish(BulkActionCompletedEvent{Action: "delete"})
	bus.Publish(BulkActionCompletedEvent{Action: "block"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("events were not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"delete", "block"}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	defer bus.Close()

	removed := make(chan DomainEvent, 1)
	kept := make(chan DomainEvent, 1)

	unsubscribe := bus.Subscribe(EventFiltersCleared, func(e DomainEvent) { removed <- e })
	bus.Subscribe(EventFiltersCleared, func(e DomainEvent) { kept <- e })
	unsubscribe()

	bus.Publish(FiltersClearedEvent{})

	select {
	case <-kept:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	require.Len(t, removed, 0)
}

func TestHandlerPanicDoesNotStopDispatcher(t *testing.T) {
	bus := New()
	defer bus.Close()

	delivered := make(chan struct{}, 1)
	bus.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventFiltersCleared, func(DomainEvent) { delivered <- struct{}{} })

	bus.Publish(ErrorEvent{Message: "x"})
	bus.Publish(FiltersClearedEvent{})

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("dispatcher stopped after handler panic")
	}
}

func TestCloseDeliversQueuedEvents(t *testing.T) {
	bus := New()

	var mu sync.Mutex
	var got []string
	bus.Subscribe(EventBulkActionStarted, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(BulkActionStartedEvent).Action)
	})

	for i := 0; i < 100; i++ {
		bus.Publish(BulkActionStartedEvent{Action: "delete"})
	}
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, got, 100)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	bus := New()
	called := false
	bus.Subscribe(EventFiltersCleared, func(DomainEvent) { called = true })

	bus.Close()
	bus.Publish(FiltersClearedEvent{})
	bus.Close()

	assert.False(t, called)
}

func TestHandlerPanicIsLoggedThroughBusLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	bus := NewWithLogger(logger)

	bus.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	bus.Publish(ErrorEvent{Message: "x"})
	bus.Close()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "eventbus", entry.Data["component"])
}
