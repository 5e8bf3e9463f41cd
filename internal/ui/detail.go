package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/breedview/breeds/internal/breed"
)

// detailModal shows one image with its like, download and explore actions.
type detailModal struct {
	item       breed.Item
	liked      bool
	canExplore bool
}

func newDetailModal(item breed.Item, liked, canExplore bool) detailModal {
	return detailModal{item: item, liked: liked, canExplore: canExplore}
}

// Update implements Modal.
func (d detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch {
	case key.Matches(km, keys.Escape), key.Matches(km, keys.Quit):
		return d, nil, true
	case key.Matches(km, keys.Like):
		return d, emit(likeMsg{src: d.item.Src}), false
	case key.Matches(km, keys.Download):
		return d, emit(downloadMsg{item: d.item}), false
	case key.Matches(km, keys.Explore):
		if !d.canExplore {
			return d, nil, false
		}
		return d, emit(exploreMsg{src: d.item.Src}), true
	}
	return d, nil, false
}

// View implements Modal.
func (d detailModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	name := d.item.Name
	if name == "" {
		name = "Unknown breed"
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(titleCase(name)))
	if d.liked {
		b.WriteString(" ")
		b.WriteString(styles.Heart.Render("♥"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(d.item.Src))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(d.item.FileName()))
	b.WriteString("\n\n")

	likeLabel := "Like"
	if d.liked {
		likeLabel = "Unlike"
	}
	actions := []string{
		actionLabel(styles, "l", likeLabel),
		actionLabel(styles, "d", "Download"),
	}
	if d.canExplore {
		actions = append(actions, actionLabel(styles, "x", "Explore "+name))
	}
	actions = append(actions, actionLabel(styles, "esc", "Close"))
	b.WriteString(strings.Join(actions, "   "))

	modalWidth := min(max(width-8, 20), 80)
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Background(lipgloss.Color(theme.SurfaceAlt)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func actionLabel(styles Styles, k, label string) string {
	return styles.WarningText.Render(k) + " " + styles.Text.Render(label)
}

// titleCase capitalizes each word of a breed name for display.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "-" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
