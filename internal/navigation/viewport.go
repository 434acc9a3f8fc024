package navigation

// Offset returns the index of the first visible entry.
func (n *Navigation) Offset() int {
	if n == nil {
		return 0
	}
	return n.offset
}

// EnsureVisible clamps the cursor to size and adjusts the viewport offset so
// the cursor stays within maxVisible rows.
func (n *Navigation) EnsureVisible(size, maxVisible int) {
	if n == nil {
		return
	}
	if size <= 0 {
		n.selection = 0
		n.offset = 0
		return
	}
	if n.selection < 0 {
		n.selection = 0
	}
	if n.selection >= size {
		n.selection = size - 1
	}
	if maxVisible <= 0 {
		n.offset = 0
		return
	}
	maxOffset := size - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.offset > maxOffset {
		n.offset = maxOffset
	}
	if n.offset < 0 {
		n.offset = 0
	}
	if n.selection < n.offset {
		n.offset = n.selection
	}
	upper := n.offset + maxVisible - 1
	if n.selection > upper {
		n.offset = n.selection - maxVisible + 1
		if n.offset < 0 {
			n.offset = 0
		}
		if n.offset > maxOffset {
			n.offset = maxOffset
		}
	}
}
