package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorClampsAndScrolls(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 12)

	idx, off := n.Move(-1)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, off)

	idx, off = n.SetSelectedIndex(6)
	assert.Equal(t, 6, idx)
	assert.Equal(t, 2, off)

	idx, off = n.End()
	assert.Equal(t, 11, idx)
	assert.Equal(t, 7, off)

	idx, off = n.PageUp()
	assert.Equal(t, 8, idx)
	assert.Equal(t, 7, off)

	idx, off = n.Home()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, off)
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(3, 2, 5, 0)

	idx, off := n.PageDown()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, off)
}

func TestNavigatorShrinkingList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(9, 5, 5, 3)

	idx, off := n.SetSelectedIndex(9)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 0, off)
}
