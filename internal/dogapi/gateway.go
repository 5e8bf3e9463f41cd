package dogapi

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/breedview/breeds/internal/breed"
	"github.com/breedview/breeds/internal/notify"
)

// User-facing messages for failed calls.
const (
	MsgSearchBreedFailed    = "Error searching breed"
	MsgSearchSubBreedFailed = "Error searching sub breed"
	MsgRandomFailed         = "Error loading random breeds"
	MsgAllBreedsFailed      = "Error loading breeds"
)

// Gateway wraps a Fetcher so failures never reach the caller: every call
// degrades to an empty result and a notification instead.
type Gateway struct {
	client   Fetcher
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewGateway builds a Gateway. A nil notifier or logger discards output.
func NewGateway(client Fetcher, notifier notify.Notifier, logger *zap.Logger) *Gateway {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{client: client, notifier: notifier, logger: logger}
}

// SearchByBreed returns every image of a breed, or nil on failure.
func (g *Gateway) SearchByBreed(ctx context.Context, name string) []string {
	images, err := g.client.FetchBreedImages(ctx, name)
	if err != nil {
		g.fail(ctx, err, MsgSearchBreedFailed, zap.String("breed", name))
		return nil
	}
	return images
}

// SearchBySubBreed returns every image of a breed and sub-breed, or nil on failure.
func (g *Gateway) SearchBySubBreed(ctx context.Context, name, sub string) []string {
	images, err := g.client.FetchSubBreedImages(ctx, name, sub)
	if err != nil {
		g.fail(ctx, err, MsgSearchSubBreedFailed, zap.String("breed", name), zap.String("sub_breed", sub))
		return nil
	}
	return images
}

// Search dispatches q to the breed or sub-breed endpoint. It reports false
// without calling the API when q selects nothing.
func (g *Gateway) Search(ctx context.Context, q breed.Query) ([]string, bool) {
	switch {
	case q.IsZero():
		return nil, false
	case q.SubBreed == "":
		return g.SearchByBreed(ctx, q.Breed), true
	default:
		return g.SearchBySubBreed(ctx, q.Breed, q.SubBreed), true
	}
}

// RandomImages issues n independent random-image requests in parallel and
// returns the URLs in request order. If any request fails the whole result is
// empty.
func (g *Gateway) RandomImages(ctx context.Context, n int) []string {
	if n <= 0 {
		return nil
	}
	results := make([]string, n)
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range n {
		eg.Go(func() error {
			src, err := g.client.FetchRandomImage(egCtx)
			if err != nil {
				return err
			}
			results[i] = src
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.fail(ctx, err, MsgRandomFailed, zap.Int("count", n))
		return nil
	}
	return results
}

// AllBreeds returns the breed catalog, or an empty list on failure.
func (g *Gateway) AllBreeds(ctx context.Context) breed.List {
	list, err := g.client.FetchAllBreeds(ctx)
	if err != nil {
		g.fail(ctx, err, MsgAllBreedsFailed)
		return breed.List{}
	}
	return list
}

// fail logs err and notifies the user, except when the caller cancelled ctx:
// a superseded request is not something the user needs to hear about.
func (g *Gateway) fail(ctx context.Context, err error, msg string, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if errors.Is(ctx.Err(), context.Canceled) {
		g.logger.Debug(msg+" (cancelled)", fields...)
		return
	}
	g.logger.Warn(msg, fields...)
	notify.Send(g.notifier, notify.Error, msg)
}
