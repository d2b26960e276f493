// Package filter turns the operator's filter form into listing criteria.
package filter

import (
	"fmt"
	"strings"
	"time"

	"reqadmin/internal/domain"
)

// DateRange is the raw [start, end] pair picked in the form. A zero bound
// means the bound was left empty.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// FormValues are the raw values of the filter form
type FormValues struct {
	Type   string
	Status string
	Date   *DateRange
}

// Normalize converts form values into criteria. The from bound is truncated
// to the start of its day; the to bound becomes the start of the following
// day, so it is exclusive.
func Normalize(v FormValues) domain.Criteria {
	c := domain.Criteria{
		Type:   strings.TrimSpace(v.Type),
		Status: domain.ParseStatus(v.Status),
	}
	if v.Date != nil {
		if !v.Date.Start.IsZero() {
			from := StartOfDay(v.Date.Start)
			c.FromDate = &from
		}
		if !v.Date.End.IsZero() {
			to := StartOfDay(v.Date.End).AddDate(0, 0, 1)
			c.ToDate = &to
		}
	}
	return c
}

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Panel forwards confirmed or cleared filters to its callbacks
type Panel struct {
	OnConfirm func(domain.Criteria)
	OnClear   func()
}

// Confirm normalizes the form and hands the criteria to OnConfirm
func (p *Panel) Confirm(v FormValues) {
	if p.OnConfirm == nil {
		return
	}
	p.OnConfirm(Normalize(v))
}

// Clear invokes OnClear
func (p *Panel) Clear() {
	if p.OnClear == nil {
		return
	}
	p.OnClear()
}

const dayLayout = "2006-01-02"

// ParseForm builds FormValues from the text fields of the TUI form or the
// command line flags. dates accepts "2024-01-02", "2024-01-02..2024-01-09" or
// two dates separated by whitespace; either side of ".." may be empty.
func ParseForm(typ, status, dates string, loc *time.Location) (FormValues, error) {
	v := FormValues{Type: typ, Status: status}

	dates = strings.TrimSpace(dates)
	if dates == "" {
		return v, nil
	}
	if loc == nil {
		loc = time.Local
	}

	var startText, endText string
	switch {
	case strings.Contains(dates, ".."):
		parts := strings.SplitN(dates, "..", 2)
		startText, endText = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	default:
		fields := strings.Fields(dates)
		switch len(fields) {
		case 1:
			startText, endText = fields[0], fields[0]
		case 2:
			startText, endText = fields[0], fields[1]
		default:
			return v, fmt.Errorf("invalid date range %q: expected at most two dates", dates)
		}
	}

	var r DateRange
	if startText != "" {
		t, err := time.ParseInLocation(dayLayout, startText, loc)
		if err != nil {
			return v, fmt.Errorf("invalid start date %q: %w", startText, err)
		}
		r.Start = t
	}
	if endText != "" {
		t, err := time.ParseInLocation(dayLayout, endText, loc)
		if err != nil {
			return v, fmt.Errorf("invalid end date %q: %w", endText, err)
		}
		r.End = t
	}
	v.Date = &r
	return v, nil
}
