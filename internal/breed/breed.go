// Package breed holds the dog breed domain types and the pure string helpers
// shared by the gallery, the API gateway and the UI.
package breed

import (
	"path"
	"strings"
)

// Separator joins a breed and a sub-breed in display strings, e.g. "bulldog - french".
const Separator = " - "

// Query selects the images to search for. Empty strings mean no selection.
type Query struct {
	Breed    string
	SubBreed string
}

// IsZero reports whether no breed is selected.
func (q Query) IsZero() bool {
	return q.Breed == ""
}

// String renders the query the way the search box shows it.
func (q Query) String() string {
	if q.SubBreed == "" {
		return q.Breed
	}
	return q.Breed + Separator + q.SubBreed
}

// List maps a breed name to its ordered sub-breed names.
type List map[string][]string

// Item is a single gallery entry.
type Item struct {
	Name string
	Src  string
}

// NewItem builds an item for src, deriving the name from the URL when possible.
func NewItem(src string) Item {
	name, _ := NameFromSrc(src)
	return Item{Name: name, Src: src}
}

// FileName returns the file name used when the image is saved locally.
func (i Item) FileName() string {
	base := path.Base(strings.SplitN(i.Src, "?", 2)[0])
	if base == "." || base == "/" {
		base = "image"
	}
	name := strings.ReplaceAll(Normalize(i.Name), Separator, "-")
	name = strings.Join(strings.Fields(name), "-")
	if name == "" {
		return base
	}
	return name + "-" + base
}
