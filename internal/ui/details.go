package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reqadmin/internal/domain"
	"reqadmin/internal/format"
	"reqadmin/internal/ui/views"
)

// renderRequestDetails builds the pager text for one request
func renderRequestDetails(req domain.Request, layouts format.Layouts) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(14)
	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(views.GetStatusColor(req.Status)))

	name := req.FullName
	if name == "" {
		name = req.Email
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			value = format.Placeholder
		}
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(label), value))
	}
	field("ID", req.ID)
	field("Email", req.Email)
	field("Full name", req.FullName)
	field("Type", req.Type)
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Status"), statusStyle.Render(string(req.Status))))
	field("Created", layouts.Date(req.CreatedAt, true))
	field("Last session", layouts.OptionalDate(req.LastSession, true))

	return b.String()
}
