// Package selection tracks which request rows are selected for bulk actions.
//
// "Select all" takes precedence over the individually checked ids: while it
// is set, every visible row counts as selected. Toggling a row only ever
// edits the checked ids, so a row cannot be deselected out of "select all".
package selection

import (
	"reqadmin/internal/eventbus"
)

// Model handles selection logic
type Model struct {
	state *State
	bus   eventbus.EventBus
}

// New creates a selection model. bus may be nil.
func New(bus eventbus.EventBus) *Model {
	return &Model{
		state: &State{Checked: newOrderedSet()},
		bus:   bus,
	}
}

// ToggleAll sets the select-all flag and forgets individually checked ids
func (m *Model) ToggleAll(checked bool) {
	m.state.SelectAll = checked
	m.state.Checked = newOrderedSet()
	m.publish()
}

// ToggleRow adds id to the checked ids, or removes it if already present.
// The select-all flag is left untouched.
func (m *Model) ToggleRow(id string) {
	if id == "" {
		return
	}
	if m.state.Checked.has(id) {
		m.state.Checked.remove(id)
	} else {
		m.state.Checked.add(id)
	}
	m.publish()
}

// IsRowChecked reports the checkbox state of a row
func (m *Model) IsRowChecked(id string) bool {
	return m.state.SelectAll || m.state.Checked.has(id)
}

// SelectAll reports whether the select-all flag is set
func (m *Model) SelectAll() bool {
	return m.state.SelectAll
}

// ResolveSelectedIDs returns the ids a bulk action applies to: all visible
// ids under select-all, otherwise the checked ids in the order they were
// checked.
func (m *Model) ResolveSelectedIDs(visible []string) []string {
	if m.state.SelectAll {
		out := make([]string, len(visible))
		copy(out, visible)
		return out
	}
	return m.state.Checked.slice()
}

// Count returns the number of ids a bulk action would apply to
func (m *Model) Count(visible []string) int {
	if m.state.SelectAll {
		return len(visible)
	}
	return m.state.Checked.len()
}

// HasSelection returns true if anything is selected
func (m *Model) HasSelection() bool {
	return m.state.SelectAll || m.state.Checked.len() > 0
}

// Reset clears the flag and the checked ids
func (m *Model) Reset() {
	m.ToggleAll(false)
}

func (m *Model) publish() {
	if m.bus == nil {
		return
	}
	m.bus.Publish(eventbus.SelectionChangedEvent{
		SelectAll: m.state.SelectAll,
		Checked:   m.state.Checked.len(),
	})
}
