package menu

import "fmt"

type fakeNav struct {
	selection   int
	noSelection bool
	indices     []int
	cleared     []bool
	scrolls     int
}

func (n *fakeNav) Selection() (int, bool) { return n.selection, !n.noSelection }
func (n *fakeNav) SetSelection(idx int) { n.selection = idx }
func (n *fakeNav) ClearScrollIndices() { n.indices = nil }
func (n *fakeNav) AddScrollIndex(idx int) { n.indices = append(n.indices, idx) }
func (n *fakeNav) Clear(pendingPush bool) { n.cleared = append(n.cleared, pendingPush) }
func (n *fakeNav) ScrollToSelection() { n.scrolls++ }

type recordingDriver struct {
	calls []string
}

func (d *recordingDriver) ListClear(*List) { d.calls = append(d.calls, "clear") }

func (d *recordingDriver) ListInsert(_ *List, _, label string, idx int) {
	d.calls = append(d.calls, fmt.Sprintf("insert %s@%d", label, idx))
}

func (d *recordingDriver) ListFree(_ *List, idx, size int) {
	d.calls = append(d.calls, fmt.Sprintf("free %d/%d", idx, size))
}

func (d *recordingDriver) ListSetSelection(*List) { d.calls = append(d.calls, "select") }

func (d *recordingDriver) ListCache(kind ListKind, value int) {
	d.calls = append(d.calls, fmt.Sprintf("cache %d:%d", kind, value))
}

func newTestEntries(nav Navigator, binder Binder) (*Entries, *recordingDriver) {
	driver := &recordingDriver{}
	e, err := New(Options{Driver: driver, Binder: binder, Navigator: nav, Version: "1.0"})
	if err != nil {
		panic(err)
	}
	return e, driver
}
