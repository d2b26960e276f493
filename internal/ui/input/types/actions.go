package types

import "reqadmin/internal/bulk"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleRowAction struct {
	ID string
}

func (a ToggleRowAction) Type() string { return "toggle_row" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Filter form actions
type SubmitFilterAction struct {
	RequestType string
	Status      string
	Dates       string
}

func (a SubmitFilterAction) Type() string { return "submit_filter" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type CancelFormAction struct{}

func (a CancelFormAction) Type() string { return "cancel_form" }

// Bulk actions
type BulkAction struct {
	Action bulk.Action
}

func (a BulkAction) Type() string { return "bulk" }

type ConfirmAction struct {
	Accept bool
}

func (a ConfirmAction) Type() string { return "confirm" }

// Other commands
type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ShowDetailsAction struct {
	ID string
}

func (a ShowDetailsAction) Type() string { return "show_details" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
