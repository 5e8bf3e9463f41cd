package gallery

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breedview/breeds/internal/breed"
	"github.com/breedview/breeds/internal/favorites"
	"github.com/breedview/breeds/internal/notify"
)

type fakeSearcher struct {
	mu       sync.Mutex
	results  map[breed.Query][]string
	random   []string
	breeds   breed.List
	gate     chan struct{}
	searches []breed.Query
}

func (f *fakeSearcher) Search(ctx context.Context, q breed.Query) ([]string, bool) {
	if q.IsZero() {
		return nil, false
	}
	f.mu.Lock()
	f.searches = append(f.searches, q)
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, true
		}
	}
	return f.results[q], true
}

func (f *fakeSearcher) RandomImages(_ context.Context, n int) []string {
	if n < len(f.random) {
		return f.random[:n]
	}
	return f.random
}

func (f *fakeSearcher) AllBreeds(context.Context) breed.List {
	return f.breeds
}

func newModel(t *testing.T, s *fakeSearcher, liked ...string) (*Model, *favorites.Store, *notify.Queue) {
	t.Helper()
	favs, err := favorites.New(favorites.NewMemoryStorage())
	require.NoError(t, err)
	for _, src := range liked {
		require.NoError(t, favs.Add(src))
	}
	queue := notify.NewQueue(16)
	m := New(s, favs, Options{Notifier: queue})
	return m, favs, queue
}

func TestModel_BreedSearchShowsResults(t *testing.T) {
	s := &fakeSearcher{
		results: map[breed.Query][]string{{Breed: "bulldog"}: {"b1.jpg", "b2.jpg"}},
		random:  randomTen(),
	}
	m, _, queue := newModel(t, s)
	m.RefreshRandom(context.Background())

	req, ok := m.Select("Bulldog")
	require.True(t, ok)
	assert.True(t, m.View().Loading)

	m.RunSearch(context.Background(), req)
	v := m.View()
	assert.Equal(t, []string{"b1.jpg", "b2.jpg"}, v.Images)
	assert.False(t, v.CanSearchByImage)
	assert.False(t, v.Loading)

	got := queue.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "2 breeds found", got[0].Message)
	assert.Equal(t, notify.Info, got[0].Level)
}

func TestModel_NoQueryShowsRandomGallery(t *testing.T) {
	s := &fakeSearcher{random: randomTen()}
	m, _, _ := newModel(t, s)

	req := m.BeginRandom()
	assert.Equal(t, DefaultRandomCount, req.Count)
	assert.True(t, m.View().Loading)

	m.RunRandom(context.Background(), req)
	v := m.View()
	assert.Len(t, v.Images, 10)
	assert.True(t, v.CanSearchByImage)
}

func TestModel_LikedFilterShowsFavorites(t *testing.T) {
	s := &fakeSearcher{random: randomTen()}
	m, favs, _ := newModel(t, s, "x.jpg")
	m.RefreshRandom(context.Background())

	m.SetFilter(FilterLiked)
	assert.Equal(t, []string{"x.jpg"}, m.View().Images)

	require.NoError(t, favs.Add("y.jpg"))
	assert.Equal(t, []string{"x.jpg", "y.jpg"}, m.View().Images)

	assert.Equal(t, FilterAll, m.ToggleFilter())
	assert.Len(t, m.View().Images, 10)
}

func TestModel_EmptySearchFallsBackToRandom(t *testing.T) {
	s := &fakeSearcher{random: randomTen()}
	m, _, queue := newModel(t, s)
	m.RefreshRandom(context.Background())

	req, ok := m.Select("zzz")
	require.True(t, ok)
	m.RunSearch(context.Background(), req)

	v := m.View()
	assert.Equal(t, randomTen(), v.Images)
	assert.True(t, v.CanSearchByImage)
	assert.Equal(t, 0, queue.Len())
}

func TestModel_SubBreedSelection(t *testing.T) {
	french := breed.Query{Breed: "bulldog", SubBreed: "french"}
	s := &fakeSearcher{results: map[breed.Query][]string{french: {"f1.jpg"}}}
	m, _, _ := newModel(t, s)

	req, ok := m.Select("Bulldog - French")
	require.True(t, ok)
	assert.Equal(t, french, req.Query)
	m.RunSearch(context.Background(), req)
	assert.Equal(t, []string{"f1.jpg"}, m.View().Images)
}

func TestModel_SameSelectionDoesNotRefetch(t *testing.T) {
	s := &fakeSearcher{}
	m, _, _ := newModel(t, s)

	_, ok := m.Select("pug")
	require.True(t, ok)
	_, ok = m.Select(" PUG ")
	assert.False(t, ok)
}

func TestModel_ClearingSelectionReturnsToGallery(t *testing.T) {
	s := &fakeSearcher{
		results: map[breed.Query][]string{{Breed: "pug"}: {"p.jpg"}},
		random:  randomTen(),
	}
	m, _, _ := newModel(t, s)
	m.RefreshRandom(context.Background())

	req, _ := m.Select("pug")
	m.RunSearch(context.Background(), req)
	require.Equal(t, []string{"p.jpg"}, m.View().Images)

	_, ok := m.Select("")
	assert.False(t, ok)
	assert.True(t, m.Query().IsZero())
	assert.Len(t, m.View().Images, 10)
}

func TestModel_StaleSearchResultIsIgnored(t *testing.T) {
	s := &fakeSearcher{
		results: map[breed.Query][]string{
			{Breed: "bulldog"}: {"b1.jpg"},
			{Breed: "pug"}:     {"p1.jpg"},
		},
		gate: make(chan struct{}),
	}
	m, _, _ := newModel(t, s)

	first, ok := m.Select("bulldog")
	require.True(t, ok)
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.RunSearch(context.Background(), first)
	}()

	second, ok := m.Select("pug")
	require.True(t, ok)
	close(s.gate)
	m.RunSearch(context.Background(), second)
	<-done

	v := m.View()
	assert.Equal(t, []string{"p1.jpg"}, v.Images)
	assert.Equal(t, breed.Query{Breed: "pug"}, v.Query)
}

func TestModel_ExploreSearchesImageBreed(t *testing.T) {
	s := &fakeSearcher{}
	m, _, _ := newModel(t, s)

	req, ok := m.Explore("https://images.dog.ceo/breeds/retriever-golden/n1.jpg")
	require.True(t, ok)
	assert.Equal(t, breed.Query{Breed: "retriever", SubBreed: "golden"}, req.Query)

	_, ok = m.Explore("no-breed.jpg")
	assert.False(t, ok)
}

func TestModel_ToggleLikeNotifiesSubscribers(t *testing.T) {
	s := &fakeSearcher{}
	m, _, _ := newModel(t, s)
	changes := 0
	m.Subscribe(func() { changes++ })

	liked, err := m.ToggleLike("a.jpg")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.True(t, m.IsLiked("a.jpg"))
	assert.Equal(t, 1, m.View().LikedCount)

	liked, err = m.ToggleLike("a.jpg")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 2, changes)
}

func TestModel_LikedFilterSuppressesFoundNotification(t *testing.T) {
	s := &fakeSearcher{results: map[breed.Query][]string{{Breed: "pug"}: {"p.jpg"}}}
	m, _, queue := newModel(t, s)
	m.SetFilter(FilterLiked)

	req, _ := m.Select("pug")
	m.RunSearch(context.Background(), req)
	assert.Equal(t, 0, queue.Len())
}

func TestModel_CatalogSuggestions(t *testing.T) {
	s := &fakeSearcher{breeds: breed.List{"bulldog": {"french", "boston"}, "pug": nil}}
	m, _, _ := newModel(t, s)

	assert.Empty(t, m.Suggestions(""))
	m.LoadCatalog(context.Background())
	assert.False(t, m.CatalogLoading())
	assert.Equal(t, []string{"bulldog", "bulldog - french", "bulldog - boston", "pug"}, m.Suggestions(""))
	assert.Equal(t, []string{"bulldog - french"}, m.Suggestions("fre"))
}
