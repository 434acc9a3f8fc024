package menu

// List is a flat, densely indexed sequence of records. Read accessors accept
// a nil receiver and report nothing.
type List struct {
	records []Record
	driver  Driver
	binder  Binder
}

// NewList returns an empty list wired to the supplied collaborators. Nil
// collaborators are replaced with no-op implementations.
func NewList(driver Driver, binder Binder) *List {
	if driver == nil {
		driver = NopDriver{}
	}
	if binder == nil {
		binder = nopBinder{}
	}
	return &List{driver: driver, binder: binder}
}

// Size reports the number of records.
func (l *List) Size() int {
	if l == nil {
		return 0
	}
	return len(l.records)
}

// Push appends a record and binds its actions. An empty label makes Push a
// no-op because the label identifies stack entries.
func (l *List) Push(path, label string, typ Type, stackPtr, entryIdx int) {
	if l == nil || label == "" {
		return
	}
	l.records = append(l.records, Record{
		Path:     path,
		Label:    label,
		Type:     typ,
		StackPtr: stackPtr,
		EntryIdx: entryIdx,
	})
	idx := len(l.records) - 1
	l.driver.ListInsert(l, path, label, idx)

	actions := &Actions{}
	l.records[idx].Actions = actions
	l.binder.Bind(l, path, label, typ, idx, actions)
}

// Pop removes the last record and returns the stack pointer it carried.
func (l *List) Pop() (int, bool) {
	if l == nil || len(l.records) == 0 {
		return 0, false
	}
	last := len(l.records) - 1
	l.driver.ListFree(l, last, last)
	ptr := l.records[last].StackPtr
	l.records[last] = Record{}
	l.records = l.records[:last]
	l.driver.ListSetSelection(l)
	return ptr, true
}

// Clear drops every record, letting the driver release per-record state
// before the list-level clear notification.
func (l *List) Clear() {
	if l == nil {
		return
	}
	size := len(l.records)
	for i := 0; i < size; i++ {
		l.driver.ListFree(l, i, size)
	}
	l.driver.ListClear(l)
	for i := range l.records {
		l.records[i] = Record{}
	}
	l.records = l.records[:0]
}

// free releases backend state for every record without the clear hook.
func (l *List) free() {
	if l == nil {
		return
	}
	size := len(l.records)
	for i := 0; i < size; i++ {
		l.driver.ListFree(l, i, size)
	}
	l.records = nil
}

// At returns a copy of the record at idx.
func (l *List) At(idx int) (Record, bool) {
	if l == nil || idx < 0 || idx >= len(l.records) {
		return Record{}, false
	}
	return l.records[idx], true
}

// Last returns a copy of the final record.
func (l *List) Last() (Record, bool) {
	if l == nil || len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// AltAt returns the display override at idx, falling back to the path.
func (l *List) AltAt(idx int) string {
	rec, ok := l.At(idx)
	if !ok {
		return ""
	}
	if rec.Alt != "" {
		return rec.Alt
	}
	return rec.Path
}

// SetAltAt sets the display override at idx.
func (l *List) SetAltAt(idx int, alt string) {
	if l == nil || idx < 0 || idx >= len(l.records) {
		return
	}
	l.records[idx].Alt = alt
}

// ActionsAt returns the action bundle at idx, or nil.
func (l *List) ActionsAt(idx int) *Actions {
	if l == nil || idx < 0 || idx >= len(l.records) {
		return nil
	}
	return l.records[idx].Actions
}

// LastActions returns the action bundle of the final record, or nil.
func (l *List) LastActions() *Actions {
	return l.ActionsAt(l.Size() - 1)
}

// IsDir reports whether the record at idx is a directory.
func (l *List) IsDir(idx int) bool {
	rec, ok := l.At(idx)
	return ok && rec.Type == TypeDirectory
}
