package cache

import "time"

// TTLs per cached artifact class. Position lookups are immutable for a
// given moment so they keep the longest lifetime; full charts and aspect
// matrices follow the options that produced them.
const (
	TTLPositions = 30 * 24 * time.Hour
	TTLChart     = 7 * 24 * time.Hour
	TTLAspects   = 7 * 24 * time.Hour
)
