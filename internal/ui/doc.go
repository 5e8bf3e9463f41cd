// Package ui provides the Bubble Tea terminal interface for breeds.
//
// # Architecture Overview
//
// The UI renders purely from gallery.View. It never decides which images to
// show; it forwards user intent to the gallery.Model and re-reads the view
// whenever the model reports a change.
//
// # Package Structure
//
//   - app.go: root Model, Update loop, Run
//   - commands.go: tea.Msg types and the tea.Cmd wrappers around blocking fetches
//   - search.go: search box with autocomplete suggestions
//   - grid.go: header, image list and footer rendering
//   - detail.go: image dialog with like, download and explore actions
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings
//   - theme.go: color themes and Lipgloss styles
//
// # Concurrency
//
// Searches, random gallery loads, catalog loads and downloads run as tea.Cmd
// functions on Bubble Tea's goroutines. The gallery model is safe for
// concurrent use. Run subscribes to the model and to the notification queue
// and forwards each change to the program with Program.Send from a fresh
// goroutine, since listeners can fire from inside Update.
//
// # Key Features
//
//   - "/" focuses the search box; tab completes, enter searches, esc leaves
//   - enter opens the detail dialog for the selected image
//   - "l" likes, "d" downloads, "x" explores the breed of the selected image
//   - "f" toggles between All and Liked; the choice is saved in prefs
//   - "T" cycles themes; the choice is saved in prefs
//   - notifications show in the footer for a few seconds
package ui
