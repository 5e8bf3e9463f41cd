package gallery

import "strings"

// Filter selects which universe of images the grid shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterLiked
)

// String returns the label shown on the filter toggle.
func (f Filter) String() string {
	if f == FilterLiked {
		return "Liked"
	}
	return "All"
}

// Next returns the other filter option.
func (f Filter) Next() Filter {
	if f == FilterLiked {
		return FilterAll
	}
	return FilterLiked
}

// ParseFilter maps a stored label back to a Filter. Unknown labels are FilterAll.
func ParseFilter(s string) Filter {
	if strings.EqualFold(strings.TrimSpace(s), "liked") {
		return FilterLiked
	}
	return FilterAll
}
