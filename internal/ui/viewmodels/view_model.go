package viewmodels

import (
	"reqadmin/internal/busy"
	"reqadmin/internal/format"
	"reqadmin/internal/selection"
	"reqadmin/internal/store"
	"reqadmin/internal/ui/state"
	"reqadmin/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	store            store.RequestStore
	selection        *selection.Model
	busy             *busy.Flag
	layouts          format.Layouts
	width            int
	height           int
	spinnerView      string
	helpView         string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, requests store.RequestStore, sel *selection.Model, flag *busy.Flag, layouts format.Layouts) *ViewModel {
	return &ViewModel{
		state:            appState,
		store:            requests,
		selection:        sel,
		busy:             flag,
		layouts:          layouts,
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetSpinner sets the rendered spinner frame
func (vm *ViewModel) SetSpinner(view string) {
	vm.spinnerView = view
}

// SetHelp sets the rendered key help footer
func (vm *ViewModel) SetHelp(view string) {
	vm.helpView = view
}

// Input returns the input transformer
func (vm *ViewModel) Input() *InputTransformer {
	return vm.inputTransformer
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	visible := vm.state.VisibleIDs
	rows := make([]views.Row, 0, len(visible))
	for _, id := range visible {
		req, ok := vm.store.Get(id)
		if !ok {
			continue
		}
		rows = append(rows, views.Row{
			ID:          req.ID,
			Checked:     vm.selection.SelectAll() || vm.selection.IsRowChecked(req.ID),
			Email:       req.Email,
			FullName:    req.FullName,
			CreatedAt:   vm.layouts.Date(req.CreatedAt, true),
			LastSession: vm.layouts.OptionalDate(req.LastSession, true),
			Status:      req.Status,
		})
	}

	isBusy := vm.busy != nil && vm.busy.Busy()
	label := ""
	if isBusy {
		label = vm.busy.Label()
	}

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Rows:           rows,
		SelectedIndex:  vm.state.SelectedIndex,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		Loaded:         vm.state.Loaded,
		SelectAll:      vm.selection.SelectAll(),
		SelectedCount:  vm.selection.Count(visible),
		Busy:           isBusy,
		BusyLabel:      label,
		SpinnerView:    vm.spinnerView,
		FilterLabel:    filterLabel(vm.state),
		SortLabel:      vm.state.Sort.String(),
		InputMode:      vm.inputTransformer.GetInputModeString(),
		InputView:      vm.inputTransformer.GetInputView(),
		ConfirmPrompt:  vm.inputTransformer.GetConfirmPrompt(),
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		HelpView:       vm.helpView,
	}
}

func filterLabel(s *state.AppState) string {
	if s.Criteria.IsEmpty() {
		return ""
	}
	return s.Criteria.Describe()
}
