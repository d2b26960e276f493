// Package audit records bulk mutations and errors published on the event bus.
package audit

import (
	"sync"

	"github.com/sirupsen/logrus"

	"reqadmin/internal/eventbus"
)

// Recorder subscribes to bulk action events and writes them to a logger
type Recorder struct {
	log   logrus.FieldLogger
	mu    sync.Mutex
	unsub []func()
}

// NewRecorder creates a recorder subscribed to bus
func NewRecorder(bus eventbus.EventBus, logger logrus.FieldLogger) *Recorder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	r := &Recorder{log: logger.WithField("component", "audit")}

	r.unsub = append(r.unsub,
		bus.Subscribe(eventbus.EventBulkActionStarted, r.handle),
		bus.Subscribe(eventbus.EventBulkActionCompleted, r.handle),
		bus.Subscribe(eventbus.EventBulkActionFailed, r.handle),
		bus.Subscribe(eventbus.EventFiltersApplied, r.handle),
		bus.Subscribe(eventbus.EventError, r.handle),
	)
	return r
}

// Close unsubscribes the recorder
func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fn := range r.unsub {
		fn()
	}
	r.unsub = nil
}

func (r *Recorder) handle(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.BulkActionStartedEvent:
		r.log.WithFields(logrus.Fields{
			"action": ev.Action,
			"ids":    ev.IDs,
		}).Info("bulk action started")

	case eventbus.BulkActionCompletedEvent:
		r.log.WithFields(logrus.Fields{
			"action":  ev.Action,
			"applied": ev.Applied,
		}).Info("bulk action completed")

	case eventbus.BulkActionFailedEvent:
		r.log.WithFields(logrus.Fields{
			"action":    ev.Action,
			"applied":   ev.Applied,
			"failed_id": ev.FailedID,
		}).WithError(ev.Err).Warn("bulk action stopped")

	case eventbus.FiltersAppliedEvent:
		r.log.WithField("criteria", ev.Criteria.Describe()).Debug("filters applied")

	case eventbus.ErrorEvent:
		r.log.WithError(ev.Err).Error(ev.Message)
	}
}
