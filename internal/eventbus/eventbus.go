package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"

	"reqadmin/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventRequestsLoaded      = domain.EventRequestsLoaded
	EventFiltersApplied      = domain.EventFiltersApplied
	EventFiltersCleared      = domain.EventFiltersCleared
	EventSelectionChanged    = domain.EventSelectionChanged
	EventBulkActionStarted   = domain.EventBulkActionStarted
	EventBulkActionCompleted = domain.EventBulkActionCompleted
	EventBulkActionFailed    = domain.EventBulkActionFailed
	EventError               = domain.EventError
	EventConfigLoaded        = domain.EventConfigLoaded
	EventConfigSaved         = domain.EventConfigSaved
)

// Re-export domain event types
type RequestsLoadedEvent = domain.RequestsLoadedEvent
type FiltersAppliedEvent = domain.FiltersAppliedEvent
type FiltersClearedEvent = domain.FiltersClearedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type BulkActionStartedEvent = domain.BulkActionStartedEvent
type BulkActionCompletedEvent = domain.BulkActionCompletedEvent
type BulkActionFailedEvent = domain.BulkActionFailedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the concrete implementation of EventBus
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	log       logrus.FieldLogger
}

// New creates a new event bus logging through the standard logger
func New() *Bus {
	return NewWithLogger(logrus.StandardLogger())
}

// NewWithLogger creates a new event bus and starts its dispatcher
func NewWithLogger(logger logrus.FieldLogger) *Bus {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		log:       logger.WithField("component", "eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Events are dropped when the
// queue is full.
func (b *Bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		b.log.WithField("event", event.Type()).Warn("eventbus: closed, dropping event")
		return
	default:
	}

	b.log.WithField("event", event.Type()).Debug("eventbus: publishing")
	select {
	case b.eventChan <- event:
	default:
		b.log.WithField("event", event.Type()).Warn("eventbus: channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and waits for it to exit. Events queued before
// Close are still delivered; later ones are dropped.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(s.handler, event)
	}
}

// call runs a handler, recovering from panics so one subscriber cannot take
// the dispatcher down
func (b *Bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Errorf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// NullBus discards every event
type NullBus struct{}

func (NullBus) Publish(DomainEvent) {}
func (NullBus) Subscribe(EventType, EventHandler) func() {
	return func() {}
}
