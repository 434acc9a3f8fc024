// Package displaylist fills the selection buffer for whatever screen is on
// top of the menu stack and binds the per-type actions of every pushed
// record.
//
// Screens are keyed by the stack record type: the main menu (TypeRoot), a
// directory listing (TypeDirectory, labelled with its absolute path), the
// settings groups (TypeSettings), the settings of one group
// (TypeSettingsGroup, labelled with the group name), the option picker of an
// enum setting (TypeSettingPicker) and the information screen (TypeInfo).
//
// Entering a screen pushes a stack record carrying the current cursor, so
// popping or flushing the stack restores it.
package displaylist
