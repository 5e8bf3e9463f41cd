package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/breedview/breeds/internal/config"
	"github.com/breedview/breeds/internal/favorites"
	"github.com/breedview/breeds/internal/gallery"
	"github.com/breedview/breeds/internal/notify"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		APIBaseURL:      "http://127.0.0.1:1/api",
		RandomCount:     3,
		RequestTimeout:  time.Second,
		DataDir:         filepath.Join(dir, "data"),
		DownloadDir:     filepath.Join(dir, "downloads"),
		LogFile:         filepath.Join(dir, "breeds.log"),
		DownloadWorkers: 2,
	}
}

func writeFavorites(t *testing.T, cfg config.Config, body string) string {
	t.Helper()
	storage := favorites.FileStorage{Dir: cfg.DataDir}
	path := storage.Path(favorites.Key)
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestBuild_LoadsExistingFavorites(t *testing.T) {
	cfg := testConfig(t)
	writeFavorites(t, cfg, `["a.jpg","b.jpg"]`)

	svc, err := Build(cfg, nil, notify.Discard)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := svc.Favorites.Len(); got != 2 {
		t.Fatalf("Favorites.Len = %d, want 2", got)
	}
	if svc.Downloader.Dir() != cfg.DownloadDir {
		t.Fatalf("Downloader.Dir = %q, want %q", svc.Downloader.Dir(), cfg.DownloadDir)
	}
}

func TestBuild_CorruptFavoritesFailsWithPath(t *testing.T) {
	cfg := testConfig(t)
	path := writeFavorites(t, cfg, `{not json`)

	_, err := Build(cfg, nil, notify.Discard)
	if err == nil {
		t.Fatal("Build returned nil error for corrupt favorites")
	}
	if !errors.Is(err, favorites.ErrCorrupt) {
		t.Fatalf("error %v does not wrap ErrCorrupt", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not name %q", err, path)
	}
}

func TestBuild_RecoverCorruptStartsEmpty(t *testing.T) {
	cfg := testConfig(t)
	cfg.RecoverCorrupt = true
	path := writeFavorites(t, cfg, `{not json`)

	svc, err := Build(cfg, nil, notify.Discard)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := svc.Favorites.Len(); got != 0 {
		t.Fatalf("Favorites.Len = %d, want 0", got)
	}

	// The corrupt file stays until the next mutation.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != `{not json` {
		t.Fatalf("favorites file rewritten to %q before any mutation", data)
	}
}

func TestBuild_RejectsBadBaseURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.APIBaseURL = "://nope"

	if _, err := Build(cfg, nil, notify.Discard); err == nil {
		t.Fatal("Build returned nil error for an invalid base URL")
	}
}

func TestServices_GalleryStartsOnFilter(t *testing.T) {
	cfg := testConfig(t)
	svc, err := Build(cfg, nil, notify.Discard)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	g := svc.Gallery(gallery.FilterLiked)
	if g.Filter() != gallery.FilterLiked {
		t.Fatalf("Filter = %v, want Liked", g.Filter())
	}
	if req := g.BeginRandom(); req.Count != cfg.RandomCount {
		t.Fatalf("random count = %d, want %d", req.Count, cfg.RandomCount)
	}
}
