package engine

import "time"

// TimeProvider abstracts the monotonic clock so frame timing is testable
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real system clock
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the real-time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
