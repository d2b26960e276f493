package logic

// Navigator handles cursor movement and viewport management over a flat
// list of rows
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 20}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.total = total
}

// SelectedIndex returns the current selected index
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// ViewportOffset returns the current viewport offset
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// MaxIndex returns the maximum selectable index, -1 for an empty list
func (n *Navigator) MaxIndex() int {
	return n.total - 1
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move moves the cursor by delta rows
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageUp moves the selection up by one page
func (n *Navigator) PageUp() (int, int) {
	return n.Move(-n.pageSize())
}

// PageDown moves the selection down by one page
func (n *Navigator) PageDown() (int, int) {
	return n.Move(n.pageSize())
}

// Home jumps to the first row
func (n *Navigator) Home() (int, int) {
	return n.SetSelectedIndex(0)
}

// End jumps to the last row
func (n *Navigator) End() (int, int) {
	return n.SetSelectedIndex(n.MaxIndex())
}

func (n *Navigator) pageSize() int {
	// Leave some overlap
	size := n.viewportHeight - 2
	if size < 1 {
		size = 1
	}
	return size
}

func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex > n.MaxIndex() {
		n.selectedIndex = n.MaxIndex()
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}

	height := n.viewportHeight
	if height < 1 {
		height = 1
	}
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	} else if n.selectedIndex >= n.viewportOffset+height {
		n.viewportOffset = n.selectedIndex - height + 1
	}

	maxOffset := n.total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
