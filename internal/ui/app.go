package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/breedview/breeds/internal/breed"
	"github.com/breedview/breeds/internal/gallery"
	"github.com/breedview/breeds/internal/notify"
	"github.com/breedview/breeds/internal/prefs"
)

// Downloader saves an image locally.
type Downloader interface {
	Download(ctx context.Context, item breed.Item) (string, error)
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Gallery    *gallery.Model
	Downloader Downloader
	Toasts     *notify.Queue
	Notifier   notify.Notifier // defaults to Toasts
	Logger     *zap.Logger
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	gallery    *gallery.Model
	downloader Downloader
	toasts     *notify.Queue
	notifier   notify.Notifier
	logger     *zap.Logger
	prefsPath  string
	keys       keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal
	spinner  spinner.Model
	help     help.Model

	// Gallery state
	view     gallery.View
	items    []breed.Item
	selected int

	// Search box
	search      textinput.Model
	suggestions []string
	suggestion  int // highlighted suggestion, -1 for none

	toast *notify.Notification
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	notifier := opts.Notifier
	if notifier == nil && opts.Toasts != nil {
		notifier = opts.Toasts
	}
	if notifier == nil {
		notifier = notify.Discard
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = ThemeNames()[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search breeds"
	search.CharLimit = 64

	m := Model{
		ctx:        ctx,
		gallery:    opts.Gallery,
		downloader: opts.Downloader,
		toasts:     opts.Toasts,
		notifier:   notifier,
		logger:     logger,
		prefsPath:  prefsPath,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
		search:     search,
		suggestion: -1,
	}
	m.refresh()
	return m
}

// Init implements tea.Model. It starts the random gallery and the breed
// catalog fetches.
func (m Model) Init() tea.Cmd {
	req := m.gallery.BeginRandom()
	return tea.Batch(
		m.spinner.Tick,
		randomCmd(m.ctx, m.gallery, req),
		catalogCmd(m.ctx, m.gallery),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-4, 10)
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case changedMsg:
		m.refresh()
		return m, nil

	case toastMsg:
		return m.handleToasts()

	case toastExpiredMsg:
		if m.toast != nil && m.toast.At.Equal(msg.at) {
			m.toast = nil
		}
		return m, nil

	case likeMsg:
		m.toggleLike(msg.src)
		return m, nil

	case downloadMsg:
		return m, downloadCmd(m.ctx, m.downloader, msg.item)

	case downloadedMsg:
		if msg.err != nil {
			m.logger.Debug("download finished with error", zap.Error(msg.err))
		}
		return m, nil

	case exploreMsg:
		return m.explore(msg.src)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		m.updateSuggestions()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if m.view.Query.IsZero() {
			return m, nil
		}
		m.search.SetValue("")
		return m.selectQuery("")

	case key.Matches(msg, m.keys.ToggleFilter):
		m.gallery.ToggleFilter()
		m.savePrefs()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		req := m.gallery.BeginRandom()
		m.refresh()
		return m, randomCmd(m.ctx, m.gallery, req)

	case key.Matches(msg, m.keys.Open):
		if item, ok := m.selectedItem(); ok {
			m.modal = newDetailModal(item, m.gallery.IsLiked(item.Src), m.view.CanSearchByImage)
		}
		return m, nil

	case key.Matches(msg, m.keys.Like):
		if item, ok := m.selectedItem(); ok {
			m.toggleLike(item.Src)
		}
		return m, nil

	case key.Matches(msg, m.keys.Download):
		if item, ok := m.selectedItem(); ok {
			return m, downloadCmd(m.ctx, m.downloader, item)
		}
		return m, nil

	case key.Matches(msg, m.keys.Explore):
		if item, ok := m.selectedItem(); ok && m.view.CanSearchByImage {
			return m.explore(item.Src)
		}
		return m, nil
	}

	m.moveSelection(msg)
	return m, nil
}

func (m *Model) moveSelection(msg tea.KeyMsg) {
	count := len(m.items)
	if count == 0 {
		return
	}
	page := max(m.gridHeight()-1, 1)

	switch {
	case key.Matches(msg, m.keys.Up):
		m.selected--
	case key.Matches(msg, m.keys.Down):
		m.selected++
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.PageUp):
		m.selected -= page
	case key.Matches(msg, m.keys.PageDown):
		m.selected += page
	}
	m.selected = min(max(m.selected, 0), count-1)
}

func (m Model) selectedItem() (breed.Item, bool) {
	if m.selected < 0 || m.selected >= len(m.items) {
		return breed.Item{}, false
	}
	return m.items[m.selected], true
}

// selectQuery applies a search box value and starts the fetch it needs.
func (m Model) selectQuery(value string) (tea.Model, tea.Cmd) {
	req, ok := m.gallery.Select(value)
	m.selected = 0
	m.refresh()
	if !ok {
		return m, nil
	}
	return m, searchCmd(m.ctx, m.gallery, req)
}

func (m Model) explore(src string) (tea.Model, tea.Cmd) {
	req, ok := m.gallery.Explore(src)
	if !ok {
		return m, nil
	}
	m.search.SetValue(req.Query.String())
	m.selected = 0
	m.refresh()
	return m, searchCmd(m.ctx, m.gallery, req)
}

func (m *Model) toggleLike(src string) {
	if _, err := m.gallery.ToggleLike(src); err != nil {
		m.logger.Warn("toggle like failed", zap.String("src", src), zap.Error(err))
		notify.Send(m.notifier, notify.Error, "Could not save liked breeds")
	}
	m.refresh()
}

func (m Model) handleToasts() (tea.Model, tea.Cmd) {
	if m.toasts == nil {
		return m, nil
	}
	pending := m.toasts.Drain()
	if len(pending) == 0 {
		return m, nil
	}
	latest := pending[len(pending)-1]
	m.toast = &latest
	return m, toastExpireCmd(latest.At)
}

// refresh re-reads the derived view and keeps the selection and any open
// dialog consistent with it.
func (m *Model) refresh() {
	if m.gallery == nil {
		return
	}
	m.view = m.gallery.View()
	m.items = m.view.Items()
	if m.selected >= len(m.items) {
		m.selected = max(len(m.items)-1, 0)
	}
	if d, ok := m.modal.(detailModal); ok {
		d.liked = m.gallery.IsLiked(d.item.Src)
		m.modal = d
	}
	if m.search.Focused() {
		m.updateSuggestions()
	}
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Filter: "all"}
	if m.gallery != nil && m.gallery.Filter() == gallery.FilterLiked {
		p.Filter = "liked"
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))

	// Listeners can fire from inside Update, which must not block on Send.
	m.gallery.Subscribe(func() { go p.Send(changedMsg{}) })
	if m.toasts != nil {
		m.toasts.Subscribe(func() { go p.Send(toastMsg{}) })
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
