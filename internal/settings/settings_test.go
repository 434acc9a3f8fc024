package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	tree := New(FlagBasic)
	assert.True(t, tree.Bool(ShowCoreName))
	assert.False(t, tree.Bool(ShowFooter))
	assert.True(t, tree.Bool(Wraparound))
	assert.True(t, tree.Bool(DirectoriesFirst))

	_, ok := tree.Lookup(SizeUnits)
	assert.False(t, ok, "advanced settings need FlagAdvanced")

	groups := tree.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, GroupMenu, groups[0].Name)
	assert.Equal(t, GroupBrowser, groups[1].Name)
}

func TestAdvancedSettings(t *testing.T) {
	tree := New(FlagAll)
	s, ok := tree.Lookup(SizeUnits)
	require.True(t, ok)
	assert.Equal(t, UnitsSI, s.Value())
	assert.Equal(t, "SI", s.Display())

	group, ok := tree.Group(GroupBrowser)
	require.True(t, ok)
	assert.Len(t, group.Settings, 3)
}

func TestSetParsesValues(t *testing.T) {
	tree := New(FlagAll)
	require.NoError(t, tree.Set(ShowFooter, "on"))
	assert.True(t, tree.Bool(ShowFooter))
	require.NoError(t, tree.Set(ShowFooter, " false "))
	assert.False(t, tree.Bool(ShowFooter))
	require.NoError(t, tree.Set(SizeUnits, "IEC"))
	assert.Equal(t, UnitsIEC, tree.String(SizeUnits))

	assert.ErrorIs(t, tree.Set(ShowFooter, "maybe"), ErrInvalidValue)
	assert.ErrorIs(t, tree.Set(SizeUnits, "furlongs"), ErrInvalidValue)
	assert.ErrorIs(t, tree.Set("nope", "1"), ErrUnknownSetting)
}

func TestApplyCollectsErrors(t *testing.T) {
	tree := New(FlagBasic)
	err := tree.Apply(map[string]string{
		ShowFooter: "true",
		"missing":  "1",
		ShowHidden: "sometimes",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSetting)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.True(t, tree.Bool(ShowFooter), "valid entries still apply")
}

func TestCycle(t *testing.T) {
	tree := New(FlagAll)

	changed, err := tree.Cycle(SizeUnits, 1, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, UnitsIEC, tree.String(SizeUnits))

	tree.Cycle(SizeUnits, 1, false)
	changed, _ = tree.Cycle(SizeUnits, 1, false)
	assert.False(t, changed, "clamped at last option")

	changed, _ = tree.Cycle(SizeUnits, 1, true)
	assert.True(t, changed)
	assert.Equal(t, UnitsSI, tree.String(SizeUnits))

	changed, _ = tree.Cycle(SizeUnits, -1, true)
	assert.True(t, changed)
	assert.Equal(t, UnitsBytes, tree.String(SizeUnits))

	changed, _ = tree.Cycle(ShowHidden, -1, false)
	assert.True(t, changed)
	assert.True(t, tree.Bool(ShowHidden))

	_, err = tree.Cycle("nope", 1, true)
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestSetOption(t *testing.T) {
	tree := New(FlagAll)
	require.NoError(t, tree.SetOption(SizeUnits, 2))
	assert.Equal(t, UnitsBytes, tree.String(SizeUnits))
	assert.ErrorIs(t, tree.SetOption(SizeUnits, 3), ErrInvalidValue)
	assert.ErrorIs(t, tree.SetOption(ShowHidden, 0), ErrInvalidValue)
}

func TestResetAndFree(t *testing.T) {
	tree := New(FlagBasic)
	s, _ := tree.Lookup(ShowCoreName)
	s.Toggle()
	assert.False(t, s.Bool())
	s.Reset()
	assert.True(t, s.Bool())

	assert.Equal(t, "true", tree.Values()[ShowCoreName])

	tree.Free()
	assert.Empty(t, tree.Groups())
	assert.False(t, tree.Bool(ShowCoreName))

	var nilTree *Tree
	assert.False(t, nilTree.Bool(ShowCoreName))
	assert.Equal(t, "", nilTree.String(ShowCoreName))
}
