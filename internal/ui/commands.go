package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/breedview/breeds/internal/breed"
	"github.com/breedview/breeds/internal/gallery"
)

// Messages

// changedMsg tells the model to re-read the gallery view.
type changedMsg struct{}

// toastMsg tells the model to drain pending notifications.
type toastMsg struct{}

// toastExpiredMsg clears the toast stamped at.
type toastExpiredMsg struct{ at time.Time }

type likeMsg struct{ src string }

type downloadMsg struct{ item breed.Item }

type exploreMsg struct{ src string }

type downloadedMsg struct {
	path string
	err  error
}

// Commands

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func searchCmd(ctx context.Context, g *gallery.Model, req gallery.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		g.RunSearch(ctx, req)
		return changedMsg{}
	}
}

func randomCmd(ctx context.Context, g *gallery.Model, req gallery.RandomRequest) tea.Cmd {
	return func() tea.Msg {
		g.RunRandom(ctx, req)
		return changedMsg{}
	}
}

func catalogCmd(ctx context.Context, g *gallery.Model) tea.Cmd {
	return func() tea.Msg {
		g.LoadCatalog(ctx)
		return changedMsg{}
	}
}

func downloadCmd(ctx context.Context, d Downloader, item breed.Item) tea.Cmd {
	if d == nil {
		return nil
	}
	return func() tea.Msg {
		path, err := d.Download(ctx, item)
		return downloadedMsg{path: path, err: err}
	}
}

func toastExpireCmd(at time.Time) tea.Cmd {
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{at: at}
	})
}
