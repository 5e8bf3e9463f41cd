package gallery

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/breedview/breeds/internal/breed"
	"github.com/breedview/breeds/internal/notify"
)

// DefaultRandomCount is the size of the random fallback gallery.
const DefaultRandomCount = 10

// Searcher fetches images. Implementations absorb their own failures and
// return empty results instead.
type Searcher interface {
	Search(ctx context.Context, q breed.Query) ([]string, bool)
	RandomImages(ctx context.Context, n int) []string
	AllBreeds(ctx context.Context) breed.List
}

// Favorites is the liked-image store the gallery reads and toggles.
type Favorites interface {
	List() []string
	IsLiked(src string) bool
	Toggle(src string) (bool, error)
	Subscribe(fn func())
}

// Options configure a Model.
type Options struct {
	RandomCount int
	Filter      Filter
	Notifier    notify.Notifier
	Logger      *zap.Logger
}

// SearchRequest is a search fetch to run for a specific query generation.
type SearchRequest struct {
	Query      breed.Query
	Generation uint64
}

// RandomRequest is a random gallery fetch for a specific generation.
type RandomRequest struct {
	Count      int
	Generation uint64
}

// resource tracks one re-triggerable fetch. A result is applied only while its
// generation is still current.
type resource struct {
	value      []string
	loaded     bool
	loading    bool
	generation uint64
	cancel     context.CancelFunc
}

func (r *resource) begin() uint64 {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.generation++
	r.loading = true
	return r.generation
}

func (r *resource) reset() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.generation++
	r.value = nil
	r.loaded = false
	r.loading = false
}

// Model owns the search state of the gallery: the active query, the filter,
// the search and random fetches, and the derived View.
type Model struct {
	mu          sync.Mutex
	searcher    Searcher
	favs        Favorites
	notifier    notify.Notifier
	logger      *zap.Logger
	randomCount int

	query  breed.Query
	filter Filter
	search resource
	random resource

	catalog        []string
	catalogLoading bool

	listeners []func()
}

// New builds a Model. The model subscribes to favs so a like or unlike
// re-derives the view.
func New(searcher Searcher, favs Favorites, opts Options) *Model {
	m := &Model{
		searcher:    searcher,
		favs:        favs,
		notifier:    opts.Notifier,
		logger:      opts.Logger,
		randomCount: opts.RandomCount,
		filter:      opts.Filter,
	}
	if m.notifier == nil {
		m.notifier = notify.Discard
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.randomCount <= 0 {
		m.randomCount = DefaultRandomCount
	}
	if favs != nil {
		favs.Subscribe(m.changed)
	}
	return m
}

// Subscribe registers fn to run after every state change.
func (m *Model) Subscribe(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Query returns the active query.
func (m *Model) Query() breed.Query {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.query
}

// Filter returns the active filter.
func (m *Model) Filter() Filter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

// Select applies a search box value such as "bulldog - french". A blank value
// clears the search. It reports false when nothing needs fetching.
func (m *Model) Select(selection string) (SearchRequest, bool) {
	return m.SetQuery(breed.ParseSelection(selection))
}

// SetQuery replaces the active query. Any in-flight search for the previous
// query is cancelled and its result will be ignored. It reports false when q
// is unchanged or selects nothing.
func (m *Model) SetQuery(q breed.Query) (SearchRequest, bool) {
	m.mu.Lock()
	if q == m.query {
		m.mu.Unlock()
		return SearchRequest{}, false
	}
	m.query = q
	m.search.reset()
	if q.IsZero() {
		m.mu.Unlock()
		m.changed()
		return SearchRequest{}, false
	}
	req := SearchRequest{Query: q, Generation: m.search.begin()}
	m.mu.Unlock()

	m.logger.Debug("search started", zap.String("query", q.String()), zap.Uint64("generation", req.Generation))
	m.changed()
	return req, true
}

// Explore searches for the breed shown in src.
func (m *Model) Explore(src string) (SearchRequest, bool) {
	q, ok := breed.QueryFromSrc(src)
	if !ok {
		return SearchRequest{}, false
	}
	return m.SetQuery(q)
}

// RunSearch performs req and applies the result if req is still current.
func (m *Model) RunSearch(ctx context.Context, req SearchRequest) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m.mu.Lock()
	if req.Generation != m.search.generation {
		m.mu.Unlock()
		return
	}
	m.search.cancel = cancel
	m.mu.Unlock()

	images, _ := m.searcher.Search(ctx, req.Query)

	m.mu.Lock()
	if req.Generation != m.search.generation {
		m.mu.Unlock()
		m.logger.Debug("stale search result dropped", zap.String("query", req.Query.String()))
		return
	}
	m.search.value = images
	m.search.loaded = true
	m.search.loading = false
	m.search.cancel = nil
	filter := m.filter
	m.mu.Unlock()

	if len(images) > 0 && filter != FilterLiked {
		notify.Send(m.notifier, notify.Info, fmt.Sprintf("%d breeds found", len(images)))
	}
	m.changed()
}

// BeginRandom marks the random gallery as loading and returns the request
// that will fill it.
func (m *Model) BeginRandom() RandomRequest {
	m.mu.Lock()
	req := RandomRequest{Count: m.randomCount, Generation: m.random.begin()}
	m.mu.Unlock()
	m.changed()
	return req
}

// RunRandom performs req and applies the result if req is still current.
func (m *Model) RunRandom(ctx context.Context, req RandomRequest) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m.mu.Lock()
	if req.Generation != m.random.generation {
		m.mu.Unlock()
		return
	}
	m.random.cancel = cancel
	m.mu.Unlock()

	images := m.searcher.RandomImages(ctx, req.Count)

	m.mu.Lock()
	if req.Generation != m.random.generation {
		m.mu.Unlock()
		return
	}
	m.random.value = images
	m.random.loaded = true
	m.random.loading = false
	m.random.cancel = nil
	m.mu.Unlock()
	m.changed()
}

// RefreshRandom reloads the random gallery and blocks until it arrives.
func (m *Model) RefreshRandom(ctx context.Context) {
	m.RunRandom(ctx, m.BeginRandom())
}

// SetFilter changes the filter without touching the query.
func (m *Model) SetFilter(f Filter) {
	m.mu.Lock()
	if m.filter == f {
		m.mu.Unlock()
		return
	}
	m.filter = f
	m.mu.Unlock()
	m.changed()
}

// ToggleFilter switches between All and Liked and returns the new filter.
func (m *Model) ToggleFilter() Filter {
	m.mu.Lock()
	m.filter = m.filter.Next()
	f := m.filter
	m.mu.Unlock()
	m.changed()
	return f
}

// ToggleLike likes or unlikes src and returns the new state.
func (m *Model) ToggleLike(src string) (bool, error) {
	if m.favs == nil {
		return false, fmt.Errorf("favorites unavailable")
	}
	return m.favs.Toggle(src)
}

// IsLiked reports whether src is a favorite.
func (m *Model) IsLiked(src string) bool {
	return m.favs != nil && m.favs.IsLiked(src)
}

// LoadCatalog fetches the breed catalog used for suggestions.
func (m *Model) LoadCatalog(ctx context.Context) {
	m.mu.Lock()
	m.catalogLoading = true
	m.mu.Unlock()

	opts := breed.Options(m.searcher.AllBreeds(ctx))

	m.mu.Lock()
	m.catalog = opts
	m.catalogLoading = false
	m.mu.Unlock()
	m.changed()
}

// CatalogLoading reports whether the catalog fetch is in flight.
func (m *Model) CatalogLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalogLoading
}

// Suggestions returns the catalog entries matching term.
func (m *Model) Suggestions(term string) []string {
	m.mu.Lock()
	catalog := m.catalog
	m.mu.Unlock()
	return slices.Clone(breed.Filter(catalog, term))
}

// Inputs snapshots the current derivation inputs.
func (m *Model) Inputs() Inputs {
	var liked []string
	if m.favs != nil {
		liked = m.favs.List()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return Inputs{
		Query:         m.query,
		Filter:        m.filter,
		Search:        slices.Clone(m.search.value),
		SearchLoading: m.search.loading,
		Random:        slices.Clone(m.random.value),
		RandomLoading: m.random.loading,
		Liked:         liked,
	}
}

// View derives the displayed state.
func (m *Model) View() View {
	return Derive(m.Inputs())
}

func (m *Model) changed() {
	m.mu.Lock()
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
