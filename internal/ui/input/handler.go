package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reqadmin/internal/ui/input/modes"
	"reqadmin/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	form        *modes.FilterFormMode
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		form:        modes.NewFilterFormMode(),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeFilter] = h.form
	h.modes[types.ModeConfirm] = modes.NewConfirmMode()

	return h
}

// HandleKey routes a key to the current mode and applies mode changes. Other
// actions are returned for the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// Unconsumed keys in the form are typing
	if !consumed {
		if h.currentMode == types.ModeFilter {
			return nil, h.form.Update(msg)
		}
		return nil, nil
	}

	var allActions []types.Action
	var cmd tea.Cmd
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if changeMode.Mode == types.ModeFilter {
			cmd = textinput.Blink
		}
	}

	return allActions, cmd
}

// ChangeMode switches mode outside of key handling, e.g. to reopen the
// filter form after a rejected submit
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	actions := h.switchMode(mode, ctx)
	if mode == types.ModeFilter {
		return actions, textinput.Blink
	}
	return actions, nil
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Form returns the filter form
func (h *Handler) Form() *modes.FilterFormMode {
	return h.form
}

// Update handles non-keyboard messages for the filter form
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode == types.ModeFilter {
		return h.form.Update(msg)
	}
	return nil
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.form.Reset()
}
