package views

import (
	"github.com/charmbracelet/lipgloss"

	"reqadmin/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Header        lipgloss.Style
	SelectionBg   lipgloss.Style
	Checked       lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm:       lipgloss.NewStyle().Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Filter:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checked:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// GetStatusColor returns the color for a request status
func GetStatusColor(status domain.Status) string {
	switch status {
	case domain.StatusActive:
		return "78" // green
	case domain.StatusBlocked:
		return "203" // red
	case domain.StatusPending:
		return "214" // yellow
	default:
		return "241" // gray
	}
}
