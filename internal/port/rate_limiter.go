package port

import "context"

// RateLimiter bounds the number of accepted upload requests per client
// identifier over a fixed window.
type RateLimiter interface {
	// Allow increments the client's counter and reports whether the request
	// fits within the current window.
	Allow(ctx context.Context, clientID string) (bool, error)
}
