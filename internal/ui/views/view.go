package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Rows           []Row
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Loaded         bool

	SelectAll     bool
	SelectedCount int

	Busy        bool
	BusyLabel   string
	SpinnerView string

	FilterLabel string
	SortLabel   string

	InputMode     string // "", "filter" or "confirm"
	InputView     string
	ConfirmPrompt string

	StatusMessage string
	StatusIsError bool

	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	table  *TableRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		table:  NewTableRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	switch state.InputMode {
	case "filter":
		content.WriteString(r.styles.Filter.Render("Filter requests"))
		content.WriteString("\n")
		content.WriteString(state.InputView)
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render("tab/shift+tab move • enter apply • ctrl+x clear • esc cancel"))
		content.WriteString("\n\n")
	case "confirm":
		content.WriteString(r.styles.Confirm.Render(state.ConfirmPrompt))
		content.WriteString("\n\n")
	default:
		content.WriteString("\n")
	}

	// Main content
	switch {
	case !state.Loaded:
		content.WriteString(r.styles.Dim.Render("Loading requests..."))
	case len(state.Rows) == 0:
		content.WriteString(r.styles.Dim.Render("No requests match the current filters."))
	default:
		content.WriteString(r.renderTable(state))
	}

	footer := r.renderFooter(state)

	// Pad so the footer sits at the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if availableLines <= 0 {
		availableLines = 22
	}
	if paddingNeeded := availableLines - currentLines - footerLines; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	return r.styles.Main.MaxHeight(state.Height).Render(content.String())
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("reqadmin")

	var right []string
	if state.Busy {
		right = append(right, r.styles.StatusLoading.Render(fmt.Sprintf("%s %s", state.SpinnerView, state.BusyLabel)))
	}
	if state.SelectAll {
		right = append(right, r.styles.Checked.Render("[all selected]"))
	} else if state.SelectedCount > 0 {
		right = append(right, r.styles.Checked.Render(fmt.Sprintf("[%d selected]", state.SelectedCount)))
	}
	if state.FilterLabel != "" {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterLabel)))
	}
	if state.SortLabel != "" {
		right = append(right, r.styles.Dim.Render(fmt.Sprintf("sort: %s", state.SortLabel)))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) renderTable(state ViewState) string {
	lines := []string{r.table.RenderHeader()}

	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}
	start := state.ViewportOffset
	if start < 0 || start >= len(state.Rows) {
		start = 0
	}
	end := start + height
	if end > len(state.Rows) {
		end = len(state.Rows)
	}

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.table.RenderRow(state.Rows[i], i == state.SelectedIndex))
	}
	if below := len(state.Rows) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	if state.HelpView != "" {
		lines = append(lines, r.styles.Help.Render(state.HelpView))
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}
