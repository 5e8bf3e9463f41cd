package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/breedview/breeds/internal/config"
	"github.com/breedview/breeds/internal/dogapi"
	"github.com/breedview/breeds/internal/download"
	"github.com/breedview/breeds/internal/favorites"
	"github.com/breedview/breeds/internal/gallery"
	"github.com/breedview/breeds/internal/logging"
	"github.com/breedview/breeds/internal/notify"
	"github.com/breedview/breeds/internal/prefs"
	"github.com/breedview/breeds/internal/ui"
)

// Options configure the breeds application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/breeds/prefs.toml
	Verbose    bool
}

// Services is the wired object graph shared by the TUI and the CLI commands.
type Services struct {
	Config     config.Config
	Logger     *zap.Logger
	Notifier   notify.Notifier
	Client     *dogapi.Client
	Gateway    *dogapi.Gateway
	Storage    favorites.FileStorage
	Favorites  *favorites.Store
	Downloader *download.Downloader
}

// Build constructs every service from cfg. Notifications go to sink and to
// the log.
func Build(cfg config.Config, logger *zap.Logger, sink notify.Notifier) (*Services, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := notify.Multi{sink, notify.Log{Logger: logger.Named("notify")}}

	client, err := dogapi.NewClient(cfg.APIBaseURL, dogapi.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("init dog api client: %w", err)
	}

	storage := favorites.FileStorage{Dir: cfg.DataDir}
	favs, err := favorites.New(storage, favorites.WithLogger(logger.Named("favorites")))
	switch {
	case errors.Is(err, favorites.ErrCorrupt) && cfg.RecoverCorrupt:
		logger.Warn("liked breeds file is corrupt, starting empty",
			zap.String("path", storage.Path(favorites.Key)), zap.Error(err))
		favs = favorites.NewEmpty(storage, favorites.WithLogger(logger.Named("favorites")))
	case err != nil:
		return nil, fmt.Errorf("load liked breeds from %s: %w", storage.Path(favorites.Key), err)
	}

	downloader := download.New(cfg.DownloadDir,
		download.WithHTTPClient(client.HTTPClient()),
		download.WithWorkers(cfg.DownloadWorkers),
		download.WithNotifier(notifier),
		download.WithLogger(logger.Named("download")),
	)

	return &Services{
		Config:     cfg,
		Logger:     logger,
		Notifier:   notifier,
		Client:     client,
		Gateway:    dogapi.NewGateway(client, notifier, logger.Named("dogapi")),
		Storage:    storage,
		Favorites:  favs,
		Downloader: downloader,
	}, nil
}

// Gallery returns a search view-model over the services, starting on filter.
func (s *Services) Gallery(filter gallery.Filter) *gallery.Model {
	return gallery.New(s.Gateway, s.Favorites, gallery.Options{
		RandomCount: s.Config.RandomCount,
		Filter:      filter,
		Notifier:    s.Notifier,
		Logger:      s.Logger.Named("gallery"),
	})
}

// Run boots the breeds TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: opts.Verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	toasts := notify.NewQueue(0)
	svc, err := Build(cfg, logger, toasts)
	if err != nil {
		return err
	}

	// Keep favorites in sync with other running instances
	StartFavoritesWatcher(ctx, svc.Favorites, svc.Storage, logger)

	logger.Info("starting tui",
		zap.String("api", cfg.APIBaseURL),
		zap.String("data_dir", cfg.DataDir),
		zap.Int("liked", svc.Favorites.Len()))

	return ui.Run(ui.Options{
		Context:    ctx,
		Gallery:    svc.Gallery(gallery.ParseFilter(userPrefs.Filter)),
		Downloader: svc.Downloader,
		Toasts:     toasts,
		Notifier:   svc.Notifier,
		Logger:     logger.Named("ui"),
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}
