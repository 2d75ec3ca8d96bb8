package mock

import (
	"context"

	"github.com/fwojciec/postport"
)

// Compile-time interface verification.
var (
	_ postport.Fetcher       = (*Fetcher)(nil)
	_ postport.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of postport.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// DomainLimiter is a mock implementation of postport.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
