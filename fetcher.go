package easynews

import "context"

// Fetcher retrieves raw resources from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the response body.
	// Returns EUNAVAILABLE for non-success responses.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
