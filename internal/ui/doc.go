// Package ui contains the Bubble Tea program that drives the menu.
// The Model owns a *menu.Entries handle and keeps the terminal in step with
// it; dedicated helpers own navigation, search, rendering and backend
// updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, window sizes, directory listings,
//     watcher events).
//   - Every Update ends with syncRefresh: when the menu raised its blocking
//     refresh flag, the display list rebuilds the selection buffer for the
//     screen on top of the stack and Entries.Refresh clamps the cursor.
//   - While the search prompt is open the nonblocking refresh flag is held,
//     so rebuilds requested in the meantime wait until the prompt closes.
//
// Rendering:
//   - renderCache is the menu.Driver. It caches the display fields of every
//     row and drops them when the menu reports a list mutation.
//
// Backend interactions:
//   - Directory listings are read off the update loop through the
//     internal/ui/command bus and arrive as directoryLoadedMsg.
//   - A backend.Watcher follows the directory on top of the stack; a change
//     reloads its listing.
package ui
