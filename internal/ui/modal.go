package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is a dialog drawn over the gallery. It receives every key while open;
// Update reports done=true once the dialog should be dismissed.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (next Modal, cmd tea.Cmd, done bool)
	View(theme Theme, width, height int) string
}
