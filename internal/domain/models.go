package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is the account state of a request record. The set of values is owned
// by the API; unknown values are carried through untouched.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
	StatusPending Status = "PENDING"
)

// KnownStatuses lists the statuses the UI offers for filtering
var KnownStatuses = []Status{StatusActive, StatusBlocked, StatusPending}

// ParseStatus normalizes user input into a Status. Empty input yields "".
func ParseStatus(s string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(s)))
}

func (s Status) String() string {
	return string(s)
}

// Request represents a registration/account record as listed by the API
type Request struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Type        string     `json:"type,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastSession *time.Time `json:"lastSession,omitempty"`
	Status      Status     `json:"status"`
}

// Criteria is the normalized query sent to the listing endpoint.
// ToDate is an exclusive upper bound.
type Criteria struct {
	Type     string
	Status   Status
	FromDate *time.Time
	ToDate   *time.Time
}

// IsEmpty reports whether no criterion is set
func (c Criteria) IsEmpty() bool {
	return c.Type == "" && c.Status == "" && c.FromDate == nil && c.ToDate == nil
}

// Describe renders a short label for the active criteria
func (c Criteria) Describe() string {
	var parts []string
	if c.Type != "" {
		parts = append(parts, "type:"+c.Type)
	}
	if c.Status != "" {
		parts = append(parts, "status:"+string(c.Status))
	}
	if c.FromDate != nil || c.ToDate != nil {
		from, to := "…", "…"
		if c.FromDate != nil {
			from = c.FromDate.Format("2006-01-02")
		}
		if c.ToDate != nil {
			// shown inclusive
			to = c.ToDate.AddDate(0, 0, -1).Format("2006-01-02")
		}
		parts = append(parts, fmt.Sprintf("date:%s..%s", from, to))
	}
	return strings.Join(parts, " ")
}
