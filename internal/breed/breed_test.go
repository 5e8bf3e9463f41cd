package breed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "bulldog", "bulldog"},
		{"case", "BullDog", "bulldog"},
		{"accents", "Épagneul Bréton", "epagneul breton"},
		{"trim", "  husky\t", "husky"},
		{"empty", "", ""},
		{"separator kept", "Bulldog - French", "bulldog - french"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", " ", "Ça va", "ÅNGSTRÖM", "İstanbul", "naïve café", "日本", "ﬁ", "é"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNameFromSrc(t *testing.T) {
	tests := []struct {
		src    string
		want   string
		wantOK bool
	}{
		{"https://images.dog.ceo/breeds/retriever-golden/n02099601_100.jpg", "retriever - golden", true},
		{"https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg", "hound - afghan", true},
		{"https://images.dog.ceo/breeds/pug/n02110958_1.jpg", "pug", true},
		{"https://example.com/dogs/pug.jpg", "", false},
		{"", "", false},
		{"not a url at all", "", false},
	}
	for _, tt := range tests {
		got, ok := NameFromSrc(tt.src)
		assert.Equal(t, tt.wantOK, ok, tt.src)
		assert.Equal(t, tt.want, got, tt.src)
	}
}

func TestQueryFromSrc(t *testing.T) {
	q, ok := QueryFromSrc("https://images.dog.ceo/breeds/bulldog-french/x.jpg")
	assert.True(t, ok)
	assert.Equal(t, Query{Breed: "bulldog", SubBreed: "french"}, q)

	q, ok = QueryFromSrc("https://images.dog.ceo/breeds/akita/x.jpg")
	assert.True(t, ok)
	assert.Equal(t, Query{Breed: "akita"}, q)

	_, ok = QueryFromSrc("b1.jpg")
	assert.False(t, ok)
}

func TestParseSelection(t *testing.T) {
	assert.Equal(t, Query{}, ParseSelection("   "))
	assert.Equal(t, Query{Breed: "bulldog"}, ParseSelection("Bulldog"))
	assert.Equal(t, Query{Breed: "bulldog", SubBreed: "french"}, ParseSelection("Bulldog - French"))
}

func TestQuery_String(t *testing.T) {
	assert.Equal(t, "", Query{}.String())
	assert.True(t, Query{}.IsZero())
	assert.Equal(t, "hound - afghan", Query{Breed: "hound", SubBreed: "afghan"}.String())
}

func TestItem(t *testing.T) {
	item := NewItem("https://images.dog.ceo/breeds/retriever-golden/n02099601_100.jpg")
	assert.Equal(t, "retriever - golden", item.Name)
	assert.Equal(t, "retriever-golden-n02099601_100.jpg", item.FileName())

	bare := Item{Src: "https://example.com/a.png?size=large"}
	assert.Equal(t, "a.png", bare.FileName())
}

func TestOptionsAndFilter(t *testing.T) {
	list := List{
		"hound":   {"afghan", "basset"},
		"akita":   {},
		"bulldog": {"french"},
	}
	opts := Options(list)
	assert.Equal(t, []string{
		"akita",
		"bulldog",
		"bulldog - french",
		"hound",
		"hound - afghan",
		"hound - basset",
	}, opts)

	assert.Equal(t, opts, Filter(opts, " "))
	assert.Equal(t, []string{"hound - afghan"}, Filter(opts, "AFGHÂN"))
	assert.Nil(t, Filter(opts, "zzz"))
}
