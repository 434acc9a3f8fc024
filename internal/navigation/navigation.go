// Package navigation owns the selection cursor of the active menu screen,
// the jump-to-letter scroll indices and the viewport offset that keeps the
// cursor on screen.
package navigation

import "sort"

// Navigation implements menu.Navigator.
type Navigation struct {
	selection     int
	offset        int
	indices       []int
	pendingPush   bool
	scrollRequest bool
}

// New returns a navigation with the cursor on the first entry.
func New() *Navigation {
	return &Navigation{}
}

// Selection returns the cursor. It reports false only for a nil receiver.
func (n *Navigation) Selection() (int, bool) {
	if n == nil {
		return 0, false
	}
	return n.selection, true
}

// SetSelection moves the cursor without any bounds check; callers that know
// the list size clamp through the movement helpers or Refresh.
func (n *Navigation) SetSelection(idx int) {
	if n == nil {
		return
	}
	if idx < 0 {
		idx = 0
	}
	n.selection = idx
}

// ClearScrollIndices drops every recorded group start.
func (n *Navigation) ClearScrollIndices() {
	if n == nil {
		return
	}
	n.indices = n.indices[:0]
}

// AddScrollIndex records a group start.
func (n *Navigation) AddScrollIndex(idx int) {
	if n == nil {
		return
	}
	n.indices = append(n.indices, idx)
}

// ScrollIndices returns a copy of the recorded group starts.
func (n *Navigation) ScrollIndices() []int {
	if n == nil {
		return nil
	}
	out := make([]int, len(n.indices))
	copy(out, n.indices)
	return out
}

// Clear resets the cursor and viewport. pendingPush marks that a new screen
// is about to be pushed and its entries are not loaded yet.
func (n *Navigation) Clear(pendingPush bool) {
	if n == nil {
		return
	}
	n.selection = 0
	n.offset = 0
	n.pendingPush = pendingPush
	n.scrollRequest = true
}

// PendingPush reports and consumes the flag set by Clear.
func (n *Navigation) PendingPush() bool {
	if n == nil {
		return false
	}
	pending := n.pendingPush
	n.pendingPush = false
	return pending
}

// ScrollToSelection asks the view to bring the cursor into the viewport.
func (n *Navigation) ScrollToSelection() {
	if n != nil {
		n.scrollRequest = true
	}
}

// TakeScrollRequest reports and consumes a pending scroll request.
func (n *Navigation) TakeScrollRequest() bool {
	if n == nil {
		return false
	}
	req := n.scrollRequest
	n.scrollRequest = false
	return req
}

// Increment moves the cursor down one entry. At the bottom it wraps to the
// top when wrap is set and stays put otherwise.
func (n *Navigation) Increment(size int, wrap bool) bool {
	if n == nil || size <= 0 {
		return false
	}
	old := n.selection
	switch {
	case n.selection+1 < size:
		n.selection++
	case wrap:
		n.selection = 0
	default:
		n.selection = size - 1
	}
	return n.moved(old)
}

// Decrement moves the cursor up one entry, wrapping to the bottom when wrap
// is set.
func (n *Navigation) Decrement(size int, wrap bool) bool {
	if n == nil || size <= 0 {
		return false
	}
	old := n.selection
	switch {
	case n.selection > 0 && n.selection < size:
		n.selection--
	case n.selection >= size:
		n.selection = size - 1
	case wrap:
		n.selection = size - 1
	}
	return n.moved(old)
}

// Home moves the cursor to the first entry.
func (n *Navigation) Home(size int) bool {
	if n == nil {
		return false
	}
	old := n.selection
	n.selection = 0
	if size <= 0 {
		return false
	}
	return n.moved(old)
}

// End moves the cursor to the last entry.
func (n *Navigation) End(size int) bool {
	if n == nil {
		return false
	}
	if size <= 0 {
		n.selection = 0
		return false
	}
	old := n.selection
	n.selection = size - 1
	return n.moved(old)
}

// PageUp moves the cursor up by page entries.
func (n *Navigation) PageUp(size, page int) bool {
	return n.moveBy(size, -pageSize(size, page))
}

// PageDown moves the cursor down by page entries.
func (n *Navigation) PageDown(size, page int) bool {
	return n.moveBy(size, pageSize(size, page))
}

// AscendAlphabet jumps to the start of the next letter group, or to the
// last entry from the final group.
func (n *Navigation) AscendAlphabet(size int) bool {
	if n == nil || size <= 0 || len(n.indices) == 0 {
		return false
	}
	old := n.selection
	i := sort.SearchInts(n.indices, n.selection+1)
	if i < len(n.indices) {
		n.selection = n.indices[i]
	} else {
		n.selection = size - 1
	}
	if n.selection >= size {
		n.selection = size - 1
	}
	return n.moved(old)
}

// DescendAlphabet jumps to the start of the previous letter group.
func (n *Navigation) DescendAlphabet(size int) bool {
	if n == nil || size <= 0 || len(n.indices) == 0 || n.selection == 0 {
		return false
	}
	old := n.selection
	i := sort.SearchInts(n.indices, n.selection)
	if i == 0 {
		n.selection = 0
	} else {
		n.selection = n.indices[i-1]
	}
	if n.selection >= size {
		n.selection = size - 1
	}
	return n.moved(old)
}

func (n *Navigation) moved(old int) bool {
	if n.selection != old {
		n.scrollRequest = true
		return true
	}
	return false
}

func (n *Navigation) moveBy(size, delta int) bool {
	if n == nil {
		return false
	}
	if size <= 0 {
		n.selection = 0
		return false
	}
	old := n.selection
	n.selection += delta
	if n.selection < 0 {
		n.selection = 0
	}
	if n.selection >= size {
		n.selection = size - 1
	}
	return n.moved(old)
}

func pageSize(total, maxVisible int) int {
	if total <= 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}
