// Package bulk applies an action to every selected request, one remote
// mutation at a time.
package bulk

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"reqadmin/internal/api"
	"reqadmin/internal/busy"
	"reqadmin/internal/domain"
	"reqadmin/internal/eventbus"
)

// Action is a bulk operation
type Action int

const (
	ActionDelete Action = iota
	ActionBlock
	ActionActivate
)

func (a Action) String() string {
	switch a {
	case ActionDelete:
		return "delete"
	case ActionBlock:
		return "block"
	case ActionActivate:
		return "activate"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Verb is the progressive form shown while the action runs
func (a Action) Verb() string {
	switch a {
	case ActionDelete:
		return "Deleting"
	case ActionBlock:
		return "Blocking"
	case ActionActivate:
		return "Activating"
	default:
		return "Processing"
	}
}

// ParseAction maps a command name to an Action
func ParseAction(name string) (Action, error) {
	switch name {
	case "delete":
		return ActionDelete, nil
	case "block":
		return ActionBlock, nil
	case "activate":
		return ActionActivate, nil
	}
	return 0, fmt.Errorf("unknown bulk action %q", name)
}

// Mutator is the part of the API a bulk action needs
type Mutator interface {
	DeleteUser(ctx context.Context, id string) error
	UpdateUserStatus(ctx context.Context, id string, status domain.Status) error
}

// Selection resolves the ids an action applies to
type Selection interface {
	ResolveSelectedIDs(visible []string) []string
}

// Result is the outcome of one bulk run
type Result struct {
	Action   Action
	Targets  []string
	Applied  []string
	FailedID string
	Err      error
}

// OK reports whether every mutation succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Reload reports whether the caller should discard local state and reload
func (r Result) Reload() bool {
	return r.Err == nil && len(r.Targets) > 0
}

// Message is the operator facing summary of the result
func (r Result) Message() string {
	if r.Err == nil {
		if len(r.Targets) == 0 {
			return "Nothing selected"
		}
		return fmt.Sprintf("%s: %d request(s) done", r.Action.Verb(), len(r.Applied))
	}

	reason := r.Err.Error()
	var apiErr *api.Error
	if errors.As(r.Err, &apiErr) && apiErr.Message != "" {
		reason = apiErr.Message
	}
	return fmt.Sprintf("Failed to %s %s: %s (%d of %d applied)",
		r.Action, r.FailedID, reason, len(r.Applied), len(r.Targets))
}

// Dispatcher runs bulk actions
type Dispatcher struct {
	client Mutator
	busy   busy.Indicator
	bus    eventbus.EventBus
	log    logrus.FieldLogger
}

// NewDispatcher creates a dispatcher. bus may be nil.
func NewDispatcher(client Mutator, indicator busy.Indicator, bus eventbus.EventBus, logger logrus.FieldLogger) *Dispatcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Dispatcher{
		client: client,
		busy:   indicator,
		bus:    bus,
		log:    logger,
	}
}

// Run applies action to the ids sel resolves against visible. Calls are made
// strictly in order and the first failure stops the batch; mutations already
// applied are kept.
func (d *Dispatcher) Run(ctx context.Context, action Action, sel Selection, visible []string) Result {
	if d.busy != nil {
		release := d.busy.Begin(action.Verb())
		defer release()
	}

	ids := sel.ResolveSelectedIDs(visible)
	res := Result{Action: action, Targets: ids, Applied: make([]string, 0, len(ids))}
	if len(ids) == 0 {
		return res
	}

	logger := d.log.WithFields(logrus.Fields{"action": action.String(), "count": len(ids)})
	logger.Info("bulk action started")
	d.bus.Publish(eventbus.BulkActionStartedEvent{Action: action.String(), IDs: ids})

	for _, id := range ids {
		if err := d.apply(ctx, action, id); err != nil {
			res.FailedID = id
			res.Err = err
			logger.WithError(err).WithFields(logrus.Fields{
				"id":      id,
				"applied": len(res.Applied),
			}).Error("bulk action failed")
			d.bus.Publish(eventbus.BulkActionFailedEvent{
				Action:   action.String(),
				Applied:  res.Applied,
				FailedID: id,
				Err:      err,
			})
			return res
		}
		res.Applied = append(res.Applied, id)
	}

	logger.Info("bulk action completed")
	d.bus.Publish(eventbus.BulkActionCompletedEvent{Action: action.String(), Applied: res.Applied})
	return res
}

func (d *Dispatcher) apply(ctx context.Context, action Action, id string) error {
	switch action {
	case ActionDelete:
		return d.client.DeleteUser(ctx, id)
	case ActionBlock:
		return d.client.UpdateUserStatus(ctx, id, domain.StatusBlocked)
	case ActionActivate:
		return d.client.UpdateUserStatus(ctx, id, domain.StatusActive)
	default:
		return fmt.Errorf("unknown bulk action %d", int(action))
	}
}

// Fixed is a selection resolved ahead of time. The TUI hands one to Run so
// the worker goroutine never reads the live selection model.
type Fixed []string

// ResolveSelectedIDs returns a copy of the fixed ids
func (f Fixed) ResolveSelectedIDs([]string) []string {
	out := make([]string, len(f))
	copy(out, f)
	return out
}
