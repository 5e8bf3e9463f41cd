package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchKey processes keyboard input while the search box has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.search.Blur()
		m.suggestions = nil
		m.suggestion = -1
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := m.search.Value()
		if m.suggestion >= 0 && m.suggestion < len(m.suggestions) {
			value = m.suggestions[m.suggestion]
			m.search.SetValue(value)
		}
		m.search.Blur()
		m.suggestions = nil
		m.suggestion = -1
		return m.selectQuery(value)

	case key.Matches(msg, m.keys.Complete):
		if len(m.suggestions) > 0 {
			idx := max(m.suggestion, 0)
			m.search.SetValue(m.suggestions[idx])
			m.search.CursorEnd()
			m.updateSuggestions()
		}
		return m, nil

	case msg.Type == tea.KeyUp:
		if m.suggestion >= 0 {
			m.suggestion--
		}
		return m, nil

	case msg.Type == tea.KeyDown:
		if m.suggestion < len(m.suggestions)-1 {
			m.suggestion++
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.updateSuggestions()
	}
	return m, cmd
}

// updateSuggestions refilters the catalog against the search box value.
func (m *Model) updateSuggestions() {
	all := m.gallery.Suggestions(m.search.Value())
	if len(all) > maxSuggestions {
		all = all[:maxSuggestions]
	}
	// A value that already names an entry exactly needs no dropdown.
	if len(all) == 1 && strings.EqualFold(all[0], strings.TrimSpace(m.search.Value())) {
		all = nil
	}
	m.suggestions = all
	m.suggestion = -1
}

// renderSearch renders the search box and, while focused, the dropdown.
func (m Model) renderSearch() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.search.View())
	if !m.search.Focused() {
		return b.String()
	}

	if m.gallery.CatalogLoading() {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("  " + m.spinner.View() + " loading breeds"))
		return b.String()
	}
	for i, s := range m.suggestions {
		b.WriteString("\n")
		line := "  " + s
		if i == m.suggestion {
			b.WriteString(styles.Selected.Render(line))
			continue
		}
		b.WriteString(styles.MutedText.Render(line))
	}
	return b.String()
}

// searchLines is the height renderSearch occupies.
func (m Model) searchLines() int {
	if !m.search.Focused() {
		return searchHeight
	}
	if m.gallery.CatalogLoading() {
		return searchHeight + 1
	}
	return searchHeight + len(m.suggestions)
}
