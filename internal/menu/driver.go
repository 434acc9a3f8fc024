package menu

// ListKind identifies a cached list flavour held by the rendering backend.
type ListKind int

const (
	ListPlain ListKind = iota
	ListHorizontal
)

// Driver is the rendering backend notified at every list mutation. The core
// never interprets what a driver does with these calls.
type Driver interface {
	ListClear(list *List)
	ListInsert(list *List, path, label string, idx int)
	ListFree(list *List, idx, size int)
	ListSetSelection(list *List)
	ListCache(kind ListKind, value int)
}

// Binder populates the action bundle of a freshly pushed record.
type Binder interface {
	Bind(list *List, path, label string, typ Type, idx int, actions *Actions)
}

// BinderFunc adapts a plain function to the Binder interface.
type BinderFunc func(list *List, path, label string, typ Type, idx int, actions *Actions)

func (f BinderFunc) Bind(list *List, path, label string, typ Type, idx int, actions *Actions) {
	f(list, path, label, typ, idx, actions)
}

// Navigator owns the selection cursor and the scroll index set.
type Navigator interface {
	Selection() (int, bool)
	SetSelection(idx int)
	ClearScrollIndices()
	AddScrollIndex(idx int)
	Clear(pendingPush bool)
	ScrollToSelection()
}

// NopDriver ignores every notification.
type NopDriver struct{}

func (NopDriver) ListClear(*List) {}
func (NopDriver) ListInsert(*List, string, string, int) {}
func (NopDriver) ListFree(*List, int, int) {}
func (NopDriver) ListSetSelection(*List) {}
func (NopDriver) ListCache(ListKind, int) {}

type nopBinder struct{}

func (nopBinder) Bind(*List, string, string, Type, int, *Actions) {}
