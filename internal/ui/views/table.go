package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reqadmin/internal/domain"
	"reqadmin/internal/format"
)

// Row is one request as displayed
type Row struct {
	ID          string
	Checked     bool
	Email       string
	FullName    string
	CreatedAt   string
	LastSession string
	Status      domain.Status
}

type column struct {
	title string
	width int
}

var columns = []column{
	{"", 3},
	{"ID", 10},
	{"Email", 30},
	{"Name", 22},
	{"Created", 16},
	{"Last session", 16},
	{"Status", 8},
}

// TableRenderer renders the request table
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// RenderHeader renders the column titles
func (r *TableRenderer) RenderHeader() string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = pad(c.title, c.width)
	}
	return r.styles.Header.Render(strings.Join(cells, " "))
}

// RenderRow renders a single request row
func (r *TableRenderer) RenderRow(row Row, isCursor bool) string {
	bg := lipgloss.NewStyle()
	if isCursor {
		bg = r.styles.SelectionBg
	}

	box := "[ ]"
	boxStyle := bg
	if row.Checked {
		box = "[x]"
		boxStyle = r.styles.Checked.Inherit(bg)
	}

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(GetStatusColor(row.Status))).
		Inherit(bg)

	sep := bg.Render(" ")
	cells := []string{
		boxStyle.Render(box),
		bg.Render(pad(row.ID, columns[1].width)),
		bg.Render(pad(row.Email, columns[2].width)),
		bg.Render(pad(row.FullName, columns[3].width)),
		bg.Render(pad(row.CreatedAt, columns[4].width)),
		bg.Render(pad(row.LastSession, columns[5].width)),
		statusStyle.Render(pad(string(row.Status), columns[6].width)),
	}
	return strings.Join(cells, sep)
}

// pad truncates or right-pads s to exactly width cells
func pad(s string, width int) string {
	s = format.Truncate(s, width)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
