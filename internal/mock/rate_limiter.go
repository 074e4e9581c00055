package mock

import "context"

// RateLimiter implements port.RateLimiter for tests.
type RateLimiter struct {
	AllowOut bool
	AllowErr error

	Called   bool
	ClientID string
}

func (m *RateLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	m.Called = true
	m.ClientID = clientID
	if m.AllowErr != nil {
		return false, m.AllowErr
	}
	return m.AllowOut, nil
}
