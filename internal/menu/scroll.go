package menu

// BuildScrollIndices records the offsets at which the normalised first
// letter of the list changes, plus every directory-to-file transition, so
// the navigator can jump between letter groups. The last offset is always
// recorded.
func BuildScrollIndices(list *List, nav Navigator) {
	if list.Size() == 0 || nav == nil {
		return
	}
	nav.ClearScrollIndices()
	nav.AddScrollIndex(0)

	current := firstLetter(list.AltAt(0))
	currentIsDir := list.IsDir(0)
	for i := 1; i < list.Size(); i++ {
		first := firstLetter(list.AltAt(i))
		isDir := list.IsDir(i)
		if (currentIsDir && !isDir) || first > current {
			nav.AddScrollIndex(i)
		}
		current = first
		currentIsDir = isDir
	}
	nav.AddScrollIndex(list.Size() - 1)
}

// firstLetter lowercases the first byte and lumps everything outside a-z
// together just before 'a' or just after 'z'.
func firstLetter(s string) int {
	if s == "" {
		return 'a' - 1
	}
	c := int(s[0])
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	switch {
	case c < 'a':
		return 'a' - 1
	case c > 'z':
		return 'z' + 1
	}
	return c
}
