package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reqadmin/internal/api"
)

const (
	statusTimeout = 3 * time.Second
	errorTimeout  = 5 * time.Second
)

// clearStatusMsg clears the status line if it still shows message seq
type clearStatusMsg struct {
	seq int
}

// pagerClosedMsg is sent when the ov pager returns
type pagerClosedMsg struct {
	err error
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// errorText prefers the server's message over the wrapped error chain
func errorText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
