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

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. The dispatcher shares the
// executor's busy indicator.
func NewExecutor(ctx context.Context, lister Lister, mutator bulk.Mutator, indicator busy.Indicator, bus eventbus.EventBus, logger logrus.FieldLogger) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Executor{
		ctx: &CommandContext{
			Ctx:        ctx,
			Lister:     lister,
			Dispatcher: bulk.NewDispatcher(mutator, indicator, bus, logger),
			Busy:       indicator,
			Bus:        bus,
			Log:        logger,
		},
	}
}

// ExecuteLoad creates and executes a load command
func (e *Executor) ExecuteLoad(criteria domain.Criteria) tea.Cmd {
	cmd := NewLoadCommand(e.ctx, criteria)
	return cmd.Execute()
}

// ExecuteBulk creates and executes a bulk command
func (e *Executor) ExecuteBulk(action bulk.Action, ids []string) tea.Cmd {
	cmd := NewBulkCommand(e.ctx, action, ids)
	return cmd.Execute()
}
