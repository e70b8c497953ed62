package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The
// serve process uses it to keep per-tenant caches apart on a shared Redis.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ChartKey generates a prefixed chart key.
func (k *ScopedKeyer) ChartKey(opts any) string {
	return k.prefix + k.inner.ChartKey(opts)
}

// PositionsKey generates a prefixed positions key.
func (k *ScopedKeyer) PositionsKey(jd float64, system string) string {
	return k.prefix + k.inner.PositionsKey(jd, system)
}

// AspectKey generates a prefixed aspect matrix key.
func (k *ScopedKeyer) AspectKey(chartHash, mode string) string {
	return k.prefix + k.inner.AspectKey(chartHash, mode)
}
