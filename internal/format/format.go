// Package format renders request fields for the table, pager and CLI output.
package format

import "time"

const (
	DefaultDateLayout     = "2006-01-02"
	DefaultDateTimeLayout = "2006-01-02 15:04"

	// Placeholder is shown for missing values
	Placeholder = "-"
)

// Layouts holds the time layouts used for display
type Layouts struct {
	DateLayout     string
	DateTimeLayout string
}

// DefaultLayouts returns the built-in layouts
func DefaultLayouts() Layouts {
	return Layouts{DateLayout: DefaultDateLayout, DateTimeLayout: DefaultDateTimeLayout}
}

// NewLayouts fills empty layouts with the defaults
func NewLayouts(date, dateTime string) Layouts {
	l := DefaultLayouts()
	if date != "" {
		l.DateLayout = date
	}
	if dateTime != "" {
		l.DateTimeLayout = dateTime
	}
	return l
}

// Date renders t in local time. The zero time renders as Placeholder.
func (l Layouts) Date(t time.Time, includeTime bool) string {
	if t.IsZero() {
		return Placeholder
	}
	layout := l.DateLayout
	if includeTime {
		layout = l.DateTimeLayout
	}
	return t.Local().Format(layout)
}

// OptionalDate is Date for values that may be absent
func (l Layouts) OptionalDate(t *time.Time, includeTime bool) string {
	if t == nil {
		return Placeholder
	}
	return l.Date(*t, includeTime)
}

// Date formats with the default layouts
func Date(t time.Time, includeTime bool) string {
	return DefaultLayouts().Date(t, includeTime)
}

// OptionalDate formats with the default layouts
func OptionalDate(t *time.Time, includeTime bool) string {
	return DefaultLayouts().OptionalDate(t, includeTime)
}

// Truncate shortens s to width runes, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
