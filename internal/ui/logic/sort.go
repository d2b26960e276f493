package logic

import (
	"fmt"
	"sort"
	"strings"

	"reqadmin/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByCreated SortMode = iota
	SortByEmail
	SortByName
	SortByStatus
)

var sortModeNames = []string{"created", "email", "name", "status"}

func (m SortMode) String() string {
	if int(m) >= 0 && int(m) < len(sortModeNames) {
		return sortModeNames[m]
	}
	return "created"
}

// Next returns the mode that follows m in the cycle
func (m SortMode) Next() SortMode {
	return SortMode((int(m) + 1) % len(sortModeNames))
}

// ParseSortMode maps a config value to a SortMode
func ParseSortMode(s string) (SortMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortByCreated, nil
	}
	for i, name := range sortModeNames {
		if name == s {
			return SortMode(i), nil
		}
	}
	return SortByCreated, fmt.Errorf("unknown sort mode %q", s)
}

// SortRequests returns the ids of requests ordered by mode. The input is not
// modified and ties keep server order.
func SortRequests(requests []domain.Request, mode SortMode) []string {
	sorted := make([]domain.Request, len(requests))
	copy(sorted, requests)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch mode {
		case SortByEmail:
			return strings.ToLower(a.Email) < strings.ToLower(b.Email)
		case SortByName:
			return strings.ToLower(a.FullName) < strings.ToLower(b.FullName)
		case SortByStatus:
			pa, pb := StatusPriority(a.Status), StatusPriority(b.Status)
			if pa != pb {
				return pa > pb
			}
			return a.CreatedAt.After(b.CreatedAt)
		default:
			// Newest first
			return a.CreatedAt.After(b.CreatedAt)
		}
	})

	ids := make([]string, len(sorted))
	for i, r := range sorted {
		ids[i] = r.ID
	}
	return ids
}

// StatusPriority returns a priority value for sorting by status. Requests
// waiting for a decision come first.
func StatusPriority(s domain.Status) int {
	switch s {
	case domain.StatusPending:
		return 3
	case domain.StatusBlocked:
		return 2
	case domain.StatusActive:
		return 1
	default:
		return 0
	}
}
