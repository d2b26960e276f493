package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// keyMap lists the normal mode bindings for the footer and the help pager.
// Dispatch itself lives in the input modes.
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Page         key.Binding
	TopBottom    key.Binding
	Toggle       key.Binding
	ToggleAll    key.Binding
	ClearSel     key.Binding
	Filter       key.Binding
	ClearFilters key.Binding
	Delete       key.Binding
	Block        key.Binding
	Activate     key.Binding
	Sort         key.Binding
	Reload       key.Binding
	Details      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Page:         key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "page up/down")),
		TopBottom:    key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("gg/G", "top/bottom")),
		Toggle:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle row")),
		ToggleAll:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ClearSel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Filter:       key.NewBinding(key.WithKeys("F", "ctrl+f"), key.WithHelp("F", "filter")),
		ClearFilters: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Block:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "block")),
		Activate:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "activate")),
		Sort:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
		Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Details:      key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter/i", "details")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleAll, k.Filter, k.Delete, k.Block, k.Activate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.TopBottom},
		{k.Toggle, k.ToggleAll, k.ClearSel},
		{k.Delete, k.Block, k.Activate},
		{k.Filter, k.ClearFilters, k.Sort, k.Reload},
		{k.Details, k.Help, k.Quit},
	}
}

var helpSections = []string{"Navigation", "Selection", "Bulk actions", "Listing", "Other"}

// RenderHelpContent generates help content with colors for the pager
func RenderHelpContent(k keyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("reqadmin Help"))
	help.WriteString("\n")

	for i, group := range k.FullHelp() {
		help.WriteString(sectionStyle.Render(helpSections[i]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	filterStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString("\n")
	help.WriteString(sectionStyle.Render("Filter form"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("tab"), descStyle.Render("next field (shift+tab previous)")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("enter"), descStyle.Render("apply filters")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("ctrl+x"), descStyle.Render("clear filters")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("esc"), descStyle.Render("cancel")))
	help.WriteString(filterStyle.Render("  Dates: 2024-01-01..2024-01-31, 2024-01-01.., ..2024-01-31 or a single day"))
	help.WriteString("\n")

	return help.String()
}
