// Package gallery decides which images the breed grid shows.
//
// # Overview
//
// Model is the single owned state container for a gallery session. It holds
// the active breed query, the All/Liked filter, and two fetches: the search
// for the active query and the random fallback gallery. The UI and the CLI
// receive the same Model at construction time; there is no package state.
//
// # Derivation
//
// Derive is a pure function from Inputs to View. Model.View snapshots the
// inputs under the lock and calls it, so every render sees a consistent set:
//
//	query    filter  search      shown
//	-------  ------  ----------  -------------------------------
//	(any)    (any)   in flight   loading
//	empty    All     -           random gallery
//	empty    Liked   -           favorites
//	set      All     non-empty   search results
//	set      All     empty       random gallery
//	set      Liked   (any)       the above, narrowed to favorites
//
// CanSearchByImage is true exactly when no search results exist and the grid
// is not empty, i.e. the grid shows fallback images whose breed the user can
// search for.
//
// # Change Notification
//
// Subscribe registers callbacks that run after every state change: a new
// query, a filter toggle, a fetch result, or a favorites mutation (the model
// subscribes to its Favorites). Callbacks run on the goroutine that made the
// change and must not block.
//
// # Fetch Lifecycle
//
// SetQuery bumps the search generation, cancels the previous in-flight search
// and returns a SearchRequest. The caller runs it with RunSearch, usually on a
// background goroutine. A result whose generation is no longer current is
// dropped on arrival, so at most one search per query value can ever land.
// The random gallery follows the same BeginRandom/RunRandom pattern.
//
// # Error Handling
//
// Fetch failures are absorbed by the Searcher (see package dogapi) and arrive
// here as empty results. The model does not distinguish "no results" from
// "fetch failed"; both fall back to the random gallery or the empty state.
package gallery
