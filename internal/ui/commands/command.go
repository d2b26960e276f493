package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"reqadmin/internal/bulk"
	"reqadmin/internal/busy"
	"reqadmin/internal/domain"
	"reqadmin/internal/eventbus"
)

// Lister lists requests matching criteria
type Lister interface {
	ListRequests(ctx context.Context, criteria domain.Criteria) ([]domain.Request, error)
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx        context.Context
	Lister     Lister
	Dispatcher *bulk.Dispatcher
	Busy       busy.Indicator
	Bus        eventbus.EventBus
	Log        logrus.FieldLogger
}

// RequestsLoadedMsg carries the result of a listing
type RequestsLoadedMsg struct {
	Criteria domain.Criteria
	Requests []domain.Request
	Err      error
}

// BulkDoneMsg carries the result of a bulk action
type BulkDoneMsg struct {
	Result bulk.Result
}

// LoadCommand lists requests for a set of criteria
type LoadCommand struct {
	ctx      *CommandContext
	criteria domain.Criteria
}

// NewLoadCommand creates a new load command
func NewLoadCommand(ctx *CommandContext, criteria domain.Criteria) *LoadCommand {
	return &LoadCommand{ctx: ctx, criteria: criteria}
}

// Execute lists requests in the command goroutine
func (c *LoadCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		if c.ctx.Busy != nil {
			release := c.ctx.Busy.Begin("Loading")
			defer release()
		}

		requests, err := c.ctx.Lister.ListRequests(c.ctx.Ctx, c.criteria)
		if err != nil {
			c.ctx.Log.WithError(err).WithField("criteria", c.criteria.Describe()).Error("listing requests failed")
			if c.ctx.Bus != nil {
				c.ctx.Bus.Publish(eventbus.ErrorEvent{Message: "listing requests failed", Err: err})
			}
			return RequestsLoadedMsg{Criteria: c.criteria, Err: err}
		}

		c.ctx.Log.WithFields(logrus.Fields{
			"criteria": c.criteria.Describe(),
			"count":    len(requests),
		}).Debug("requests listed")
		if c.ctx.Bus != nil {
			c.ctx.Bus.Publish(eventbus.RequestsLoadedEvent{Criteria: c.criteria, Count: len(requests)})
		}
		return RequestsLoadedMsg{Criteria: c.criteria, Requests: requests}
	}
}

// BulkCommand runs a bulk action over ids resolved by the caller
type BulkCommand struct {
	ctx    *CommandContext
	action bulk.Action
	ids    bulk.Fixed
}

// NewBulkCommand creates a new bulk command
func NewBulkCommand(ctx *CommandContext, action bulk.Action, ids []string) *BulkCommand {
	return &BulkCommand{ctx: ctx, action: action, ids: bulk.Fixed(ids)}
}

// Execute runs the dispatcher in the command goroutine
func (c *BulkCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		res := c.ctx.Dispatcher.Run(c.ctx.Ctx, c.action, c.ids, nil)
		return BulkDoneMsg{Result: res}
	}
}
