package gallery

import (
	"slices"

	"github.com/breedview/breeds/internal/breed"
)

// Inputs is everything the displayed image set depends on.
type Inputs struct {
	Query         breed.Query
	Filter        Filter
	Search        []string
	SearchLoading bool
	Random        []string
	RandomLoading bool
	Liked         []string
}

// View is the derived state the UI renders from.
type View struct {
	Query            breed.Query
	Filter           Filter
	Images           []string
	Loading          bool
	CanSearchByImage bool
	LikedCount       int
}

// Empty reports whether the grid should render its empty state.
func (v View) Empty() bool {
	return !v.Loading && len(v.Images) == 0
}

// EmptyMessage is the caption for the empty state.
func (v View) EmptyMessage() string {
	if v.Filter == FilterLiked {
		return "No liked breeds found"
	}
	return "No breeds found"
}

// Items pairs each displayed URL with its breed name.
func (v View) Items() []breed.Item {
	items := make([]breed.Item, len(v.Images))
	for i, src := range v.Images {
		items[i] = breed.NewItem(src)
	}
	return items
}

// Derive computes the displayed images from in.
//
//   - a search in flight for the active query renders as loading;
//   - with no query, Liked shows the favorites and All shows the random gallery;
//   - with a query, non-empty search results win, else the random gallery;
//   - Liked always narrows the result to favorites.
//
// A failed fetch and an empty result are indistinguishable here.
func Derive(in Inputs) View {
	v := View{Query: in.Query, Filter: in.Filter, LikedCount: len(in.Liked)}

	if !in.Query.IsZero() && in.SearchLoading {
		v.Loading = true
		return v
	}

	var shown []string
	fromRandom := false
	switch {
	case in.Query.IsZero() && in.Filter == FilterLiked:
		shown = in.Liked
	case in.Query.IsZero():
		shown, fromRandom = in.Random, true
	case len(in.Search) > 0:
		shown = in.Search
	default:
		shown, fromRandom = in.Random, true
	}

	if fromRandom && in.RandomLoading && len(in.Random) == 0 {
		v.Loading = true
		return v
	}

	if in.Filter == FilterLiked {
		shown = intersect(shown, in.Liked)
	}
	v.Images = slices.Clone(shown)
	v.CanSearchByImage = len(in.Search) == 0 && len(v.Images) > 0
	return v
}

func intersect(images, liked []string) []string {
	set := make(map[string]struct{}, len(liked))
	for _, src := range liked {
		set[src] = struct{}{}
	}
	var out []string
	for _, src := range images {
		if _, ok := set[src]; ok {
			out = append(out, src)
		}
	}
	return out
}
