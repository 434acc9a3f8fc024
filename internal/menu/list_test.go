package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushScreens(e *Entries, screens ...Record) {
	for _, r := range screens {
		e.Push(e.MenuStack(), r.Path, r.Label, r.Type, r.StackPtr, 0)
	}
}

func TestPopStackNeverPopsRoot(t *testing.T) {
	e, driver := newTestEntries(&fakeNav{}, nil)
	pushScreens(e, Record{Label: "Main Menu", Type: TypeRoot})
	driver.calls = nil

	_, ok := e.PopStack()
	assert.False(t, ok)
	assert.Equal(t, 1, e.StackSize())
	assert.Empty(t, driver.calls)
	assert.False(t, e.NeedsRefresh())
}

func TestPopStackMarksRefresh(t *testing.T) {
	e, driver := newTestEntries(&fakeNav{}, nil)
	pushScreens(e,
		Record{Label: "Main Menu", Type: TypeRoot},
		Record{Label: "Settings", Type: TypeSettings, StackPtr: 2},
	)
	driver.calls = nil

	ptr, ok := e.PopStack()
	require.True(t, ok)
	assert.Equal(t, 2, ptr)
	assert.True(t, e.NeedsRefresh())
	assert.False(t, e.ShowBack())
	assert.Equal(t, []string{"cache 0:0", "free 1/1", "select"}, driver.calls)
}

func TestFlushStackToLabel(t *testing.T) {
	nav := &fakeNav{selection: 9}
	e, _ := newTestEntries(nav, nil)
	pushScreens(e,
		Record{Label: "Main Menu", Type: TypeRoot},
		Record{Label: "Settings", Type: TypeSettings, StackPtr: 1},
		Record{Label: "Menu", Type: TypeSettingsGroup, StackPtr: 4},
		Record{Label: "Size Units", Type: TypeSettingPicker, StackPtr: 2},
	)

	e.FlushStack("Menu", 0)
	top, ok := e.LastStack()
	require.True(t, ok)
	assert.Equal(t, "Menu", top.Label)
	assert.Equal(t, 3, e.StackSize())
	assert.Equal(t, 2, nav.selection)
	assert.True(t, e.NeedsRefresh())
}

func TestFlushStackNeedleIsExactMatch(t *testing.T) {
	e, _ := newTestEntries(&fakeNav{}, nil)
	pushScreens(e,
		Record{Label: "Main Menu", Type: TypeRoot},
		Record{Label: "Settings", Type: TypeSettings},
		Record{Label: "Settings Extra", Type: TypeSettingsGroup},
	)

	e.FlushStack("Settings", 0)
	assert.Equal(t, 2, e.StackSize())

	e.FlushStack("Sett", 0)
	assert.Equal(t, 1, e.StackSize(), "partial needle flushes to the root")
}

func TestFlushStackToType(t *testing.T) {
	nav := &fakeNav{}
	e, _ := newTestEntries(nav, nil)
	pushScreens(e,
		Record{Label: "Main Menu", Type: TypeRoot},
		Record{Path: "/home", Label: "/home", Type: TypeDirectory, StackPtr: 3},
		Record{Path: "/home/user", Label: "/home/user", Type: TypeDirectory, StackPtr: 6},
	)

	e.FlushStack("", TypeRoot)
	assert.Equal(t, 1, e.StackSize())
	assert.Equal(t, 3, nav.selection)
}

func TestFlushStackAtTargetOnlyMarksRefresh(t *testing.T) {
	nav := &fakeNav{selection: 4}
	e, _ := newTestEntries(nav, nil)
	pushScreens(e, Record{Label: "Main Menu", Type: TypeRoot})

	e.FlushStack("", TypeRoot)
	assert.Equal(t, 1, e.StackSize())
	assert.Equal(t, 4, nav.selection)
	assert.True(t, e.NeedsRefresh())
}

func TestMenuListCloseIsIdempotent(t *testing.T) {
	e, _ := newTestEntries(&fakeNav{}, nil)
	pushScreens(e, Record{Label: "Main Menu", Type: TypeRoot})
	list := e.MenuList()
	list.Close()
	list.Close()
	assert.Equal(t, 0, list.StackSize())
	assert.Equal(t, 0, list.Size())

	var nilList *MenuList
	nilList.Close()
	_, ok := nilList.PopStack()
	assert.False(t, ok)
}
