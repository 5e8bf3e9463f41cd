package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which image URLs are hidden.
	LayoutCompactWidth = 90

	// NameColumnWidth is the width reserved for breed names in the grid.
	NameColumnWidth = 32
)

// Chrome heights: header, search box, footer.
const (
	headerHeight = 1
	searchHeight = 1
	footerHeight = 1

	// maxSuggestions caps the autocomplete dropdown.
	maxSuggestions = 8
)

// Timing constants.
const (
	// ToastDuration is how long a notification stays in the footer.
	ToastDuration = 4 * time.Second
)
