package cache

// ScopedKeyer wraps a Keyer with a prefix. The cache namespace setting uses
// it to keep setups apart when they share one backend.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ClassKey generates a prefixed block result key.
func (k *ScopedKeyer) ClassKey(block, attrsHash string, opts ClassKeyOpts) string {
	return k.prefix + k.inner.ClassKey(block, attrsHash, opts)
}

// ArtifactKey generates a prefixed document render key.
func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}
