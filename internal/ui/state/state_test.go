package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reqadmin/internal/bulk"
)

func TestCurrentID(t *testing.T) {
	s := NewAppState()
	assert.Equal(t, "", s.CurrentID())

	s.VisibleIDs = []string{"a", "b"}
	s.SelectedIndex = 1
	assert.Equal(t, "b", s.CurrentID())
}

func TestStaleStatusClearIsIgnored(t *testing.T) {
	s := NewAppState()
	first := s.SetStatus("first", true)
	s.SetStatus("second", false)

	s.ClearStatus(first)
	assert.Equal(t, "second", s.StatusMessage)
}

func TestPendingAction(t *testing.T) {
	s := NewAppState()
	_, ok := s.TakePending()
	assert.False(t, ok)

	s.SetPending(bulk.ActionBlock)
	a, ok := s.TakePending()
	assert.True(t, ok)
	assert.Equal(t, bulk.ActionBlock, a)
	assert.Nil(t, s.PendingAction)
}
