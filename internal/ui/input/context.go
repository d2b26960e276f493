package input

import (
	"reqadmin/internal/busy"
	"reqadmin/internal/selection"
	"reqadmin/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Selection *selection.Model
	Busy      *busy.Flag
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the total number of visible rows
func (c *ModelContext) TotalItems() int {
	return len(c.State.VisibleIDs)
}

// CurrentRequestID returns the id under the cursor
func (c *ModelContext) CurrentRequestID() string {
	return c.State.CurrentID()
}

// HasSelection returns true if any rows are individually checked
func (c *ModelContext) HasSelection() bool {
	return c.Selection.HasSelection()
}

// SelectedCount returns how many rows a bulk action would touch
func (c *ModelContext) SelectedCount() int {
	return c.Selection.Count(c.State.VisibleIDs)
}

// SelectAll reports the select-all flag
func (c *ModelContext) SelectAll() bool {
	return c.Selection.SelectAll()
}

// IsBusy reports whether a load or bulk action is running
func (c *ModelContext) IsBusy() bool {
	return c.State.BulkRunning || (c.Busy != nil && c.Busy.Busy())
}

// HasFilters reports whether the listing is filtered
func (c *ModelContext) HasFilters() bool {
	return !c.State.Criteria.IsEmpty()
}
