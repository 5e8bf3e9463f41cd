package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/breedview/breeds/internal/gallery"
)

// renderMain renders the header, search box, grid and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearch())
	b.WriteString("\n")
	b.WriteString(m.renderGrid(m.gridHeight()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// gridHeight is the number of rows left for images.
func (m Model) gridHeight() int {
	return max(m.height-headerHeight-footerHeight-m.searchLines(), 1)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	tabs := make([]string, 0, 2)
	for _, f := range []gallery.Filter{gallery.FilterAll, gallery.FilterLiked} {
		if f == m.view.Filter {
			tabs = append(tabs, styles.ActiveTab.Render(f.String()))
			continue
		}
		tabs = append(tabs, styles.InactiveTab.Render(f.String()))
	}

	parts := []string{
		styles.Logo.Render("breeds"),
		"  ",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"  ",
		styles.Heart.Render(fmt.Sprintf("♥ %d", m.view.LikedCount)),
	}
	if !m.view.Query.IsZero() {
		parts = append(parts, "  ", styles.AccentText.Render(m.view.Query.String()))
	}
	if m.view.Loading {
		parts = append(parts, "  ", m.spinner.View())
	}

	return styles.Header.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// renderGrid lists the displayed images, scrolled so the selection is visible.
func (m Model) renderGrid(height int) string {
	styles := m.theme.Styles()

	if m.view.Loading && len(m.items) == 0 {
		return padLines(styles.MutedText.Render(m.spinner.View()+" Fetching dogs..."), height)
	}
	if m.view.Empty() {
		return padLines(styles.MutedText.Render(m.view.EmptyMessage()), height)
	}

	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}
	end := min(start+height, len(m.items))

	showURL := m.width >= LayoutCompactWidth
	rowStyle := lipgloss.NewStyle().MaxWidth(max(m.width, 1))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.items[i]

		marker := "  "
		if m.gallery.IsLiked(item.Src) {
			marker = "♥ "
		}
		name := item.Name
		if name == "" {
			name = "unknown breed"
		}
		row := marker + fmt.Sprintf("%-*s", NameColumnWidth, titleCase(name))
		if showURL {
			row += " " + item.Src
		}

		switch {
		case i == m.selected:
			lines = append(lines, rowStyle.Render(styles.Selected.Render(row)))
		case marker != "  ":
			lines = append(lines, rowStyle.Render(styles.Heart.Render(marker)+styles.Text.Render(row[len(marker):])))
		default:
			lines = append(lines, rowStyle.Render(styles.Text.Render(row)))
		}
	}
	return padLines(strings.Join(lines, "\n"), height)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.toast != nil {
		badge := styles.ToastStyle(m.toast.Level).Render(m.toast.Level.String())
		return styles.Footer.Width(m.width).Render(badge + " " + m.toast.Message)
	}
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// padLines pads s with blank lines to exactly height lines.
func padLines(s string, height int) string {
	n := strings.Count(s, "\n") + 1
	if n >= height {
		return s
	}
	return s + strings.Repeat("\n", height-n)
}
