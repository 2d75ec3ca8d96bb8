package postport

import "context"

// Fetcher downloads remote image bytes.
type Fetcher interface {
	// Fetch retrieves the resource at url. A non-2xx response or a transport
	// failure is returned as an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
