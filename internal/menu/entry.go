package menu

// Type tags a record so the display list and action binder know what it is.
type Type int

const (
	TypePlain Type = iota
	TypeRoot
	TypeDirectory
	TypeFile
	TypeSettings
	TypeSettingsGroup
	TypeSetting
	TypeSettingPicker
	TypeSettingOption
	TypeInfo
)

var typeNames = map[Type]string{
	TypePlain:         "plain",
	TypeRoot:          "root",
	TypeDirectory:     "directory",
	TypeFile:          "file",
	TypeSettings:      "settings",
	TypeSettingsGroup: "settings-group",
	TypeSetting:       "setting",
	TypeSettingPicker: "setting-picker",
	TypeSettingOption: "setting-option",
	TypeInfo:          "info",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Record is one row of a List. Label is the identity used when matching
// stack entries; Path is the primary display string.
type Record struct {
	Path     string
	Label    string
	Type     Type
	StackPtr int
	EntryIdx int
	Alt      string
	Actions  *Actions
}

// Entry is the display-ready view of a selection buffer row produced by
// Entries.Get.
type Entry struct {
	Path     string
	Label    string
	Value    string
	Spacing  int
	Type     Type
	EntryIdx int
	Idx      int
}

// ValueFunc formats the display fields of the entry at idx. menuLabel is the
// label of the screen on top of the stack.
type ValueFunc func(list *List, idx int, menuLabel string, rec Record, entry *Entry)

// TitleFunc formats the title of a screen from its stack record.
type TitleFunc func(path, label string, typ Type) (string, error)

// ActionFunc reacts to the entry at idx being activated or adjusted.
type ActionFunc func(e *Entries, idx int, rec Record) error

// Actions is the per-entry capability bundle assigned at push time.
type Actions struct {
	GetValue ValueFunc
	GetTitle TitleFunc
	OK       ActionFunc
	Left     ActionFunc
	Right    ActionFunc
}
