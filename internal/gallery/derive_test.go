package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breedview/breeds/internal/breed"
)

func randomTen() []string {
	out := make([]string, 10)
	for i := range out {
		out[i] = "https://images.dog.ceo/breeds/pug/r" + string(rune('0'+i)) + ".jpg"
	}
	return out
}

func TestDerive(t *testing.T) {
	random := randomTen()
	bulldog := breed.Query{Breed: "bulldog"}

	tests := []struct {
		name       string
		in         Inputs
		want       []string
		loading    bool
		canSearch  bool
		emptyState bool
	}{
		{
			name: "active search shows results",
			in:   Inputs{Query: bulldog, Search: []string{"b1.jpg", "b2.jpg"}, Random: random},
			want: []string{"b1.jpg", "b2.jpg"},
		},
		{
			name:      "no query shows random gallery",
			in:        Inputs{Random: random},
			want:      random,
			canSearch: true,
		},
		{
			name:      "no query liked filter shows favorites",
			in:        Inputs{Filter: FilterLiked, Random: random, Liked: []string{"x.jpg"}},
			want:      []string{"x.jpg"},
			canSearch: true,
		},
		{
			name:      "empty search result falls back to random gallery",
			in:        Inputs{Query: breed.Query{Breed: "zzz"}, Random: random},
			want:      random,
			canSearch: true,
		},
		{
			name:       "empty search and empty random renders empty state",
			in:         Inputs{Query: breed.Query{Breed: "zzz"}},
			emptyState: true,
		},
		{
			name:    "search in flight is loading",
			in:      Inputs{Query: bulldog, SearchLoading: true, Random: random},
			loading: true,
		},
		{
			name:    "random in flight with nothing yet is loading",
			in:      Inputs{RandomLoading: true},
			loading: true,
		},
		{
			name:      "random refresh keeps showing previous gallery",
			in:        Inputs{RandomLoading: true, Random: random},
			want:      random,
			canSearch: true,
		},
		{
			name: "liked filter narrows search results",
			in: Inputs{
				Query:  bulldog,
				Filter: FilterLiked,
				Search: []string{"b1.jpg", "b2.jpg"},
				Liked:  []string{"b2.jpg", "other.jpg"},
			},
			want: []string{"b2.jpg"},
		},
		{
			name: "liked filter with no liked results is empty",
			in: Inputs{
				Query:  bulldog,
				Filter: FilterLiked,
				Search: []string{"b1.jpg"},
			},
			emptyState: true,
		},
		{
			name:       "liked filter with no favorites is empty",
			in:         Inputs{Filter: FilterLiked, Random: random},
			emptyState: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Derive(tt.in)
			assert.Equal(t, tt.loading, v.Loading)
			assert.Equal(t, tt.canSearch, v.CanSearchByImage)
			assert.Equal(t, tt.emptyState, v.Empty())
			if len(tt.want) == 0 {
				assert.Empty(t, v.Images)
			} else {
				assert.Equal(t, tt.want, v.Images)
			}
		})
	}
}

func TestDerive_DoesNotAliasInputs(t *testing.T) {
	in := Inputs{Random: []string{"a.jpg"}}
	v := Derive(in)
	v.Images[0] = "changed"
	assert.Equal(t, "a.jpg", in.Random[0])
}

func TestView_EmptyMessageAndItems(t *testing.T) {
	assert.Equal(t, "No breeds found", View{}.EmptyMessage())
	assert.Equal(t, "No liked breeds found", View{Filter: FilterLiked}.EmptyMessage())

	v := View{Images: []string{"https://images.dog.ceo/breeds/hound-afghan/1.jpg"}}
	items := v.Items()
	assert.Equal(t, "hound - afghan", items[0].Name)
}

func TestFilter(t *testing.T) {
	assert.Equal(t, "All", FilterAll.String())
	assert.Equal(t, "Liked", FilterLiked.String())
	assert.Equal(t, FilterLiked, FilterAll.Next())
	assert.Equal(t, FilterAll, FilterLiked.Next())
	assert.Equal(t, FilterLiked, ParseFilter(" liked "))
	assert.Equal(t, FilterAll, ParseFilter("bogus"))
}
