// Package app is the composition root for breeds.
//
// # Overview
//
// Build wires configuration, the Dog CEO client, the API gateway, the
// favorites store and the downloader into a Services value. The TUI (Run) and
// every cobra subcommand start from the same Services, so they share one
// notion of where favorites live and how failures are reported.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()            Read ~/.config/breeds/config.toml
//	       ├─────> logging.New()            JSON log file, debug with --verbose
//	       ├─────> prefs.Load()             Theme and last filter
//	       ├─────> Build()                  Client, gateway, favorites, downloader
//	       ├─────> StartFavoritesWatcher()  Reload likes written by other instances
//	       └─────> ui.Run()                 Start TUI (blocks)
//
// # Notifications
//
// Build takes a sink for user-facing notifications. The TUI passes its toast
// queue; the CLI passes a printer for stderr. Every notification is also
// written to the log.
//
// # Favorites Watcher
//
// The watcher reloads the store when likedBreeds.json changes on disk, so two
// running instances converge. When the watcher fails it is restarted after an
// exponential backoff starting at 2 seconds and capped at 30 seconds.
//
// # Error Handling
//
// Fatal errors (returned from Run or Build):
//   - Invalid configuration file
//   - Invalid api_base_url
//   - Corrupt likedBreeds.json, unless [favorites] recover_corrupt is set
//   - Log file that cannot be created
//
// Everything after startup is recoverable: fetch failures become empty
// results plus a notification, and watcher failures are retried.
package app
