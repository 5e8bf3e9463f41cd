package breed

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var breedSegment = regexp.MustCompile(`/breeds/([^/]+)`)

// Normalize lowercases s, strips diacritics and trims surrounding whitespace so
// that "  Épagneul " and "epagneul" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	lower := strings.ToLower(s)
	out, _, err := transform.String(t, lower)
	if err != nil {
		out = lower
	}
	return strings.TrimSpace(out)
}

// NameFromSrc extracts the display breed name from an image URL such as
// https://images.dog.ceo/breeds/retriever-golden/n02099601_100.jpg, which
// yields "retriever - golden". It reports false when the URL has no
// /breeds/<token> segment.
func NameFromSrc(src string) (string, bool) {
	m := breedSegment.FindStringSubmatch(src)
	if m == nil {
		return "", false
	}
	return strings.Join(strings.Split(m[1], "-"), Separator), true
}

// QueryFromSrc returns the query that searches for the breed shown in src.
// Only the first '-' splits breed from sub-breed.
func QueryFromSrc(src string) (Query, bool) {
	m := breedSegment.FindStringSubmatch(src)
	if m == nil {
		return Query{}, false
	}
	b, sub, _ := strings.Cut(m[1], "-")
	return Query{Breed: Normalize(b), SubBreed: Normalize(sub)}, true
}

// ParseSelection turns a search box value ("bulldog" or "bulldog - french")
// into a query. Blank input yields the zero query.
func ParseSelection(s string) Query {
	n := Normalize(s)
	if n == "" {
		return Query{}
	}
	if b, sub, ok := strings.Cut(n, Separator); ok {
		return Query{Breed: strings.TrimSpace(b), SubBreed: strings.TrimSpace(sub)}
	}
	return Query{Breed: n}
}
