// Package download saves gallery images to the local filesystem.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/breedview/breeds/internal/breed"
	"github.com/breedview/breeds/internal/notify"
)

// MsgDownloadFailed is shown when an image cannot be saved.
const MsgDownloadFailed = "Error downloading image"

const (
	maxImageBytes  = 32 << 20
	defaultWorkers = 4
)

// Downloader fetches image URLs into a directory.
type Downloader struct {
	http     *http.Client
	dir      string
	workers  int
	notifier notify.Notifier
	logger   *zap.Logger
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithHTTPClient sets the client used for image requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(d *Downloader) {
		if hc != nil {
			d.http = hc
		}
	}
}

// WithWorkers bounds the number of parallel downloads in DownloadAll.
func WithWorkers(n int) Option {
	return func(d *Downloader) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithNotifier sets where download outcomes are reported.
func WithNotifier(n notify.Notifier) Option {
	return func(d *Downloader) {
		if n != nil {
			d.notifier = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Downloader) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns a Downloader writing into dir.
func New(dir string, opts ...Option) *Downloader {
	d := &Downloader{
		http:     http.DefaultClient,
		dir:      dir,
		workers:  defaultWorkers,
		notifier: notify.Discard,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dir returns the destination directory.
func (d *Downloader) Dir() string {
	return d.dir
}

// Download saves item and returns the written path. Failures are logged,
// reported to the notifier and returned.
func (d *Downloader) Download(ctx context.Context, item breed.Item) (string, error) {
	path, err := d.save(ctx, item)
	if err != nil {
		d.logger.Warn("download failed", zap.String("src", item.Src), zap.Error(err))
		notify.Send(d.notifier, notify.Error, MsgDownloadFailed)
		return "", err
	}
	d.logger.Info("image downloaded", zap.String("src", item.Src), zap.String("path", path))
	notify.Send(d.notifier, notify.Success, "Downloaded "+filepath.Base(path))
	return path, nil
}

// Result summarises a DownloadAll run.
type Result struct {
	Saved  []string
	Failed []error
}

// DownloadAll saves items on a bounded worker pool. Individual failures do
// not stop the remaining downloads.
func (d *Downloader) DownloadAll(ctx context.Context, items []breed.Item) Result {
	var (
		mu  sync.Mutex
		res Result
	)
	pool := pond.NewPool(d.workers, pond.WithContext(ctx))
	for _, item := range items {
		pool.Submit(func() {
			path, err := d.save(ctx, item)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				d.logger.Warn("download failed", zap.String("src", item.Src), zap.Error(err))
				res.Failed = append(res.Failed, fmt.Errorf("%s: %w", item.Src, err))
				return
			}
			res.Saved = append(res.Saved, path)
		})
	}
	_ = pool.Stop().Wait()

	if len(res.Failed) > 0 {
		notify.Send(d.notifier, notify.Error, fmt.Sprintf("%d of %d downloads failed", len(res.Failed), len(items)))
	} else if len(res.Saved) > 0 {
		notify.Send(d.notifier, notify.Success, fmt.Sprintf("Downloaded %d images", len(res.Saved)))
	}
	return res
}

func (d *Downloader) save(ctx context.Context, item breed.Item) (string, error) {
	if strings.TrimSpace(item.Src) == "" {
		return "", errors.New("image url is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.Src, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("image returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	name := item.FileName()
	if filepath.Ext(name) == "" {
		name += mimetype.Detect(data).Extension()
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(d.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}
