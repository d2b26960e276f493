package state

import (
	"reqadmin/internal/bulk"
	"reqadmin/internal/domain"
	"reqadmin/internal/ui/logic"
)

// AppState contains all the application state
type AppState struct {
	// Listing
	VisibleIDs []string        // ids in display order
	Criteria   domain.Criteria // criteria of the current listing
	Sort       logic.SortMode
	Loaded     bool // at least one listing has arrived

	// Cursor
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int // available height for rows

	// Pending bulk action awaiting y/n
	PendingAction *bulk.Action
	BulkRunning   bool // set from key press until the result arrives

	// Status line
	StatusMessage string
	StatusIsError bool
	StatusSeq     int // bumps on every message so stale clear timers are ignored

	// Pager
	InPagerMode bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		VisibleIDs:     make([]string, 0),
		ViewportHeight: 20, // Default
	}
}

// CurrentID returns the id under the cursor, or "" for an empty list
func (s *AppState) CurrentID() string {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.VisibleIDs) {
		return ""
	}
	return s.VisibleIDs[s.SelectedIndex]
}

// SetStatus shows msg on the status line and returns its sequence number
func (s *AppState) SetStatus(msg string, isError bool) int {
	s.StatusSeq++
	s.StatusMessage = msg
	s.StatusIsError = isError
	return s.StatusSeq
}

// ClearStatus clears the status line if seq is still the latest message
func (s *AppState) ClearStatus(seq int) {
	if seq != s.StatusSeq {
		return
	}
	s.StatusMessage = ""
	s.StatusIsError = false
}

// SetPending records an action waiting for confirmation
func (s *AppState) SetPending(a bulk.Action) {
	s.PendingAction = &a
}

// TakePending returns and clears the pending action
func (s *AppState) TakePending() (bulk.Action, bool) {
	if s.PendingAction == nil {
		return 0, false
	}
	a := *s.PendingAction
	s.PendingAction = nil
	return a, true
}
