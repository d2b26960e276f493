package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"reqadmin/internal/bulk"
	"reqadmin/internal/busy"
	"reqadmin/internal/config"
	"reqadmin/internal/domain"
	"reqadmin/internal/eventbus"
	"reqadmin/internal/filter"
	"reqadmin/internal/format"
	"reqadmin/internal/selection"
	"reqadmin/internal/store"
	"reqadmin/internal/ui/commands"
	"reqadmin/internal/ui/input"
	inputtypes "reqadmin/internal/ui/input/types"
	"reqadmin/internal/ui/logic"
	"reqadmin/internal/ui/state"
	"reqadmin/internal/ui/viewmodels"
	"reqadmin/internal/ui/views"
)

// Rows taken by everything except the table body
const chromeLines = 10

// Client is the part of the API the UI needs
type Client interface {
	commands.Lister
	bulk.Mutator
}

// Options configures a Model
type Options struct {
	Ctx    context.Context
	Client Client
	Bus    eventbus.EventBus
	Config *config.Config
	Logger logrus.FieldLogger
	Pager  Pager // defaults to the ov pager
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	log    logrus.FieldLogger

	width   int
	height  int
	help    help.Model
	keys    keyMap
	spinner spinner.Model

	store     *store.MemoryRequestStore
	selection *selection.Model
	panel     *filter.Panel
	busy      *busy.Flag
	layouts   format.Layouts
	location  *time.Location

	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        Pager
	ovPager      *OvPager
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	bus := opts.Bus
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	appState := state.NewAppState()
	if mode, err := logic.ParseSortMode(cfg.UI.DefaultSort); err == nil {
		appState.Sort = mode
	} else {
		logger.WithError(err).Warn("ignoring ui.default_sort")
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		log:          logger,
		help:         help.New(),
		keys:         newKeyMap(),
		spinner:      sp,
		store:        store.NewMemoryRequestStore(),
		selection:    selection.New(bus),
		busy:         busy.NewFlag(nil),
		layouts:      format.NewLayouts(cfg.UI.DateFormat, cfg.UI.DateTimeFormat),
		location:     time.Local,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        opts.Pager,
	}

	if m.pager == nil {
		m.ovPager = NewOvPager()
		m.pager = m.ovPager
	}

	m.panel = &filter.Panel{
		OnConfirm: m.applyCriteria,
		OnClear:   m.clearCriteria,
	}
	m.cmdExecutor = commands.NewExecutor(opts.Ctx, opts.Client, opts.Client, m.busy, bus, logger)
	m.viewModel = viewmodels.NewViewModel(appState, m.store, m.selection, m.busy, m.layouts)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	if m.ovPager != nil {
		m.ovPager.SetProgram(p)
	}
}

// Init loads the unfiltered listing and starts the spinner
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.cmdExecutor.ExecuteLoad(m.state.Criteria), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetHelp(m.help.View(m.keys))

	it := m.viewModel.Input()
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeFilter:
		it.SetMode(viewmodels.InputModeFilter)
		it.SetFormView(m.inputHandler.Form().View())
	case inputtypes.ModeConfirm:
		it.SetMode(viewmodels.InputModeConfirm)
		it.SetPending(m.state.PendingAction, m.selection.Count(m.state.VisibleIDs))
	default:
		it.SetMode(viewmodels.InputModeNormal)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:     m.state,
		Selection: m.selection,
		Busy:      m.busy,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.WithField("action", action.Type()).Debug("processAction")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		var idx, off int
		switch a.Direction {
		case "up":
			idx, off = m.navigator.Move(-1)
		case "down":
			idx, off = m.navigator.Move(1)
		case "pageup":
			idx, off = m.navigator.PageUp()
		case "pagedown":
			idx, off = m.navigator.PageDown()
		case "home":
			idx, off = m.navigator.Home()
		case "end":
			idx, off = m.navigator.End()
		default:
			return nil
		}
		m.state.SelectedIndex, m.state.ViewportOffset = idx, off

	case inputtypes.ToggleRowAction:
		m.selection.ToggleRow(a.ID)

	case inputtypes.ToggleAllAction:
		m.selection.ToggleAll(!m.selection.SelectAll())

	case inputtypes.ClearSelectionAction:
		m.selection.Reset()

	case inputtypes.SubmitFilterAction:
		values, err := filter.ParseForm(a.RequestType, a.Status, a.Dates, m.location)
		if err != nil {
			seq := m.state.SetStatus(fmt.Sprintf("Invalid filter: %v", err), true)
			_, blink := m.inputHandler.ChangeMode(inputtypes.ModeFilter, m.inputContext())
			return tea.Batch(blink, clearStatusAfter(errorTimeout, seq))
		}
		m.panel.Confirm(values)
		return m.reload()

	case inputtypes.ClearFiltersAction:
		m.panel.Clear()
		m.inputHandler.Form().Reset()
		return m.reload()

	case inputtypes.CancelFormAction:
		// Nothing to undo; the form restores its own values

	case inputtypes.BulkAction:
		return m.requestBulk(a.Action)

	case inputtypes.ConfirmAction:
		pending, ok := m.state.TakePending()
		if !ok {
			return nil
		}
		if !a.Accept {
			seq := m.state.SetStatus(fmt.Sprintf("%s cancelled", pending.Verb()), false)
			return clearStatusAfter(statusTimeout, seq)
		}
		return m.runBulk(pending)

	case inputtypes.CycleSortAction:
		m.state.Sort = m.state.Sort.Next()
		m.resort()
		seq := m.state.SetStatus(fmt.Sprintf("Sorting by %s", m.state.Sort), false)
		return clearStatusAfter(statusTimeout, seq)

	case inputtypes.ReloadAction:
		return m.cmdExecutor.ExecuteLoad(m.state.Criteria)

	case inputtypes.ShowDetailsAction:
		req, ok := m.store.Get(a.ID)
		if !ok {
			return nil
		}
		return m.showInPager(renderRequestDetails(req, m.layouts))

	case inputtypes.ShowHelpAction:
		return m.showInPager(RenderHelpContent(m.keys))

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// requestBulk asks for confirmation when configured, else runs the action
func (m *Model) requestBulk(action bulk.Action) tea.Cmd {
	if m.selection.Count(m.state.VisibleIDs) == 0 {
		res := bulk.Result{Action: action}
		seq := m.state.SetStatus(res.Message(), false)
		return clearStatusAfter(statusTimeout, seq)
	}

	if m.config.UI.ConfirmBulkActions {
		m.state.SetPending(action)
		_, cmd := m.inputHandler.ChangeMode(inputtypes.ModeConfirm, m.inputContext())
		return cmd
	}
	return m.runBulk(action)
}

// runBulk resolves the selection now and hands the ids to the dispatcher
func (m *Model) runBulk(action bulk.Action) tea.Cmd {
	ids := m.selection.ResolveSelectedIDs(m.state.VisibleIDs)
	m.state.BulkRunning = true
	return m.cmdExecutor.ExecuteBulk(action, ids)
}

// reload re-lists with the current criteria
func (m *Model) reload() tea.Cmd {
	return m.cmdExecutor.ExecuteLoad(m.state.Criteria)
}

func (m *Model) applyCriteria(c domain.Criteria) {
	m.state.Criteria = c
	m.selection.Reset()
	m.bus.Publish(eventbus.FiltersAppliedEvent{Criteria: c})
}

func (m *Model) clearCriteria() {
	m.state.Criteria = domain.Criteria{}
	m.selection.Reset()
	m.bus.Publish(eventbus.FiltersClearedEvent{})
}

// showInPager hands the terminal to the pager in a command goroutine
func (m *Model) showInPager(content string) tea.Cmd {
	m.state.InPagerMode = true
	return func() tea.Msg {
		return pagerClosedMsg{err: m.pager.Show(content)}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		// Stop ticking while the pager owns the terminal
		if m.state.InPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.RequestsLoadedMsg:
		return m, m.handleRequestsLoaded(msg)

	case commands.BulkDoneMsg:
		return m, m.handleBulkDone(msg.Result)

	case pagerClosedMsg:
		m.state.InPagerMode = false
		cmds := []tea.Cmd{m.spinner.Tick}
		if msg.err != nil {
			m.log.WithError(msg.err).Error("pager failed")
			seq := m.state.SetStatus(fmt.Sprintf("Pager failed: %v", msg.err), true)
			cmds = append(cmds, clearStatusAfter(errorTimeout, seq))
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.state.ClearStatus(msg.seq)
		return m, nil

	default:
		// Blink and other messages for the filter form
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) handleRequestsLoaded(msg commands.RequestsLoadedMsg) tea.Cmd {
	// A newer listing was requested since this one started
	if msg.Criteria.Describe() != m.state.Criteria.Describe() {
		return nil
	}

	m.state.Loaded = true
	if msg.Err != nil {
		// Rows of the previous listing do not match the current criteria
		m.store.Replace(nil)
		m.selection.Reset()
		m.resort()
		seq := m.state.SetStatus(fmt.Sprintf("Failed to load requests: %s", errorText(msg.Err)), true)
		return clearStatusAfter(errorTimeout, seq)
	}

	m.store.Replace(msg.Requests)
	m.resort()
	return nil
}

func (m *Model) handleBulkDone(res bulk.Result) tea.Cmd {
	m.state.BulkRunning = false

	switch {
	case res.Reload():
		m.panel.Clear()
		m.inputHandler.Form().Reset()
		seq := m.state.SetStatus(res.Message(), false)
		return tea.Batch(m.reload(), clearStatusAfter(statusTimeout, seq))
	case !res.OK():
		seq := m.state.SetStatus(res.Message(), true)
		return clearStatusAfter(errorTimeout, seq)
	default:
		seq := m.state.SetStatus(res.Message(), false)
		return clearStatusAfter(statusTimeout, seq)
	}
}

// resort rebuilds the visible order and keeps the cursor on the same request
func (m *Model) resort() {
	current := m.state.CurrentID()
	m.state.VisibleIDs = logic.SortRequests(m.store.All(), m.state.Sort)

	index := 0
	for i, id := range m.state.VisibleIDs {
		if id == current {
			index = i
			break
		}
	}
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(index)
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.state.VisibleIDs),
	)
}

func (m *Model) updateViewportHeight() {
	height := m.height - chromeLines
	if height < 3 {
		height = 3
	}
	m.state.ViewportHeight = height
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}
