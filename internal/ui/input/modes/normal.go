package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reqadmin/internal/bulk"
	"reqadmin/internal/ui/input/types"
)

// ggTimeout is how long the first g of gg waits for the second
const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyUp:
		return navigate("up"), true
	case tea.KeyDown:
		return navigate("down"), true
	case tea.KeyPgUp:
		return navigate("pageup"), true
	case tea.KeyPgDown:
		return navigate("pagedown"), true
	case tea.KeyHome:
		return navigate("home"), true
	case tea.KeyEnd:
		return navigate("end"), true
	case tea.KeyEnter:
		return m.details(ctx)
	case tea.KeyEsc:
		if ctx.HasSelection() || ctx.SelectAll() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, true
	}

	switch key {
	case "j":
		return navigate("down"), true
	case "k":
		return navigate("up"), true

	case "g":
		now := m.now()
		if m.lastKeyWasG && now.Sub(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = now
		return nil, true

	case "G":
		return navigate("end"), true

	case " ":
		if id := ctx.CurrentRequestID(); id != "" {
			return []types.Action{types.ToggleRowAction{ID: id}}, true
		}
		return nil, true

	case "a", "A":
		return []types.Action{types.ToggleAllAction{}}, true

	case "F", "ctrl+f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case "x":
		if ctx.HasFilters() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "d":
		return m.bulk(ctx, bulk.ActionDelete)
	case "b":
		return m.bulk(ctx, bulk.ActionBlock)
	case "u":
		return m.bulk(ctx, bulk.ActionActivate)

	case "s":
		return []types.Action{types.CycleSortAction{}}, true

	case "r":
		if ctx.IsBusy() {
			return nil, true
		}
		return []types.Action{types.ReloadAction{}}, true

	case "i":
		return m.details(ctx)

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func (m *NormalMode) bulk(ctx types.Context, action bulk.Action) ([]types.Action, bool) {
	// One bulk action at a time
	if ctx.IsBusy() {
		return nil, true
	}
	return []types.Action{types.BulkAction{Action: action}}, true
}

func (m *NormalMode) details(ctx types.Context) ([]types.Action, bool) {
	if id := ctx.CurrentRequestID(); id != "" {
		return []types.Action{types.ShowDetailsAction{ID: id}}, true
	}
	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
