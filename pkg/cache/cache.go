// Package cache provides the caching layer used to memoize computed charts.
// Backends share one small interface so the chart runner can work against a
// local file cache, a Redis instance, or no cache at all.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for computed results.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the computation stages.
type Keyer interface {
	// ChartKey generates a key for a fully computed chart.
	ChartKey(opts any) string

	// PositionsKey generates a key for a raw position lookup.
	PositionsKey(jd float64, system string) string

	// AspectKey generates a key for an aspect matrix.
	AspectKey(chartHash, mode string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ChartKey generates a key for a fully computed chart.
func (k *DefaultKeyer) ChartKey(opts any) string {
	return hashKey("chart", opts)
}

// PositionsKey generates a key for a raw position lookup.
func (k *DefaultKeyer) PositionsKey(jd float64, system string) string {
	return hashKey("positions", jd, system)
}

// AspectKey generates a key for an aspect matrix.
func (k *DefaultKeyer) AspectKey(chartHash, mode string) string {
	return hashKey("aspects", chartHash, mode)
}
