package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reqadmin/internal/ui/input/types"
)

// Form field indices
const (
	FieldType = iota
	FieldStatus
	FieldDates
	fieldCount
)

var fieldLabels = [fieldCount]string{"Type", "Status", "Dates"}

// FilterFormMode edits the three filter fields. The values last submitted
// are restored every time the form opens, so esc discards edits.
type FilterFormMode struct {
	inputs    [fieldCount]textinput.Model
	focused   int
	submitted [fieldCount]string
}

func NewFilterFormMode() *FilterFormMode {
	m := &FilterFormMode{}
	placeholders := [fieldCount]string{
		"any",
		"ACTIVE, BLOCKED or PENDING",
		"YYYY-MM-DD..YYYY-MM-DD",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 28
		m.inputs[i] = ti
	}
	return m
}

func (m *FilterFormMode) Name() string {
	return "filter"
}

func (m *FilterFormMode) Enter(ctx types.Context) []types.Action {
	for i := range m.inputs {
		m.inputs[i].SetValue(m.submitted[i])
		m.inputs[i].CursorEnd()
	}
	m.focus(FieldType)
	return nil
}

func (m *FilterFormMode) Exit(ctx types.Context) []types.Action {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return nil
}

func (m *FilterFormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		return []types.Action{
			types.CancelFormAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "tab", "down":
		m.focus((m.focused + 1) % fieldCount)
		return nil, true

	case "shift+tab", "up":
		m.focus((m.focused + fieldCount - 1) % fieldCount)
		return nil, true

	case "enter":
		submit := types.SubmitFilterAction{
			RequestType: strings.TrimSpace(m.inputs[FieldType].Value()),
			Status:      strings.TrimSpace(m.inputs[FieldStatus].Value()),
			Dates:       strings.TrimSpace(m.inputs[FieldDates].Value()),
		}
		m.submitted = [fieldCount]string{submit.RequestType, submit.Status, submit.Dates}
		return []types.Action{
			submit,
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "ctrl+x":
		m.Reset()
		return []types.Action{
			types.ClearFiltersAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Let the focused field edit its text
	return nil, false
}

// Update forwards a message to the focused field
func (m *FilterFormMode) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return cmd
}

// Reset forgets both the typed and the submitted values
func (m *FilterFormMode) Reset() {
	m.submitted = [fieldCount]string{}
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

// Focused returns the index of the focused field
func (m *FilterFormMode) Focused() int {
	return m.focused
}

// Value returns the current text of field i
func (m *FilterFormMode) Value(i int) string {
	return m.inputs[i].Value()
}

// View renders the form on one line per field
func (m *FilterFormMode) View() string {
	var b strings.Builder
	for i := range m.inputs {
		marker := "  "
		if i == m.focused {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(padRight(fieldLabels[i]+":", 8))
		b.WriteString(m.inputs[i].View())
		if i < fieldCount-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *FilterFormMode) focus(i int) {
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.focused = i
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
