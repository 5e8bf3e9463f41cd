// Package dogapi provides the HTTP client and the failure-absorbing gateway
// for the Dog CEO breed API.
//
// # Overview
//
// The package is split into two layers:
//
//   - client.go: Client issues requests, unwraps the {message, status}
//     envelope and returns wrapped errors.
//   - gateway.go: Gateway converts every failure into an empty result plus a
//     user notification, so callers only ever see data.
//
// # API Endpoints
//
//   - GET /breeds/list/all: breed to sub-breed catalog
//   - GET /breed/{breed}/images: every image of a breed
//   - GET /breed/{breed}/{subBreed}/images: every image of a sub-breed
//   - GET /breeds/image/random: one random image
//
// Every response has the shape:
//
//	{"message": <payload>, "status": "success"}
//
// A status other than "success", or an HTTP status of 400 or above, is
// reported as ErrStatus. The API's own error text is included when the body
// carries one, e.g.:
//
//	dog api error: /breed/zzz/images returned status 404: Breed not found
//
// # Client Usage
//
//	client, err := dogapi.NewClient("", dogapi.WithTimeout(5*time.Second))
//	if err != nil {
//		return err
//	}
//	images, err := client.FetchBreedImages(ctx, "bulldog")
//
// # Gateway Usage
//
//	gw := dogapi.NewGateway(client, queue, logger)
//	images := gw.SearchByBreed(ctx, "bulldog") // nil and a toast on failure
//	gallery := gw.RandomImages(ctx, 10)        // 10 parallel requests
//
// # Random Images
//
// RandomImages fans out n single-image requests with an errgroup rather than
// using the batched /breeds/image/random/{n} endpoint. Results keep request
// order. One failed request empties the whole result and cancels the others.
//
// # Cancellation
//
// All calls take a context. When the caller cancels it (for example because a
// newer search replaced this one) the gateway logs at debug level and does not
// notify: a superseded request is not an error.
//
// # Thread Safety
//
// Client and Gateway are safe for concurrent use.
package dogapi
