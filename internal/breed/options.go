package breed

import (
	"sort"
	"strings"
)

// Options flattens the catalog into autocomplete entries: each breed followed
// by its "<breed> - <sub>" entries. Breeds are sorted, sub-breeds keep catalog order.
func Options(list List) []string {
	names := make([]string, 0, len(list))
	for name := range list {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name)
		for _, sub := range list[name] {
			out = append(out, name+Separator+sub)
		}
	}
	return out
}

// Filter keeps the options containing term after normalization. A blank term
// keeps everything.
func Filter(options []string, term string) []string {
	needle := Normalize(term)
	if needle == "" {
		return options
	}
	var out []string
	for _, opt := range options {
		if strings.Contains(Normalize(opt), needle) {
			out = append(out, opt)
		}
	}
	return out
}
