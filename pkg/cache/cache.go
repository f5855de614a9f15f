// Package cache stores rendered class strings and serialized documents so
// repeated renders of unchanged blocks skip the engine.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for several server instances
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the inputs together with
// [KeyVersion], so entries written by an older engine are never read back.
// [ScopedKeyer] prefixes keys to isolate tenants or environments.
package cache

import (
	"context"
	"time"
)

// KeyVersion is mixed into every generated key. Bump it whenever the class
// output for a given input changes.
const KeyVersion = "v1"

// Entry lifetimes.
const (
	// TTLClasses applies to per-block class results. The output is a pure
	// function of the key, so entries live long.
	TTLClasses = 30 * 24 * time.Hour

	// TTLArtifact applies to serialized document renders.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored data and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Keyer builds cache keys.
type Keyer interface {
	// ClassKey identifies the class result of one block instance.
	ClassKey(block, attrsHash string, opts ClassKeyOpts) string

	// ArtifactKey identifies a serialized render of a whole document.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// ClassKeyOpts are the render options that change a block's result.
type ClassKeyOpts struct {
	Profile string `json:"profile"`
	Strict  bool   `json:"strict,omitempty"`
}

// ArtifactKeyOpts are the render options that change a document's output.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Profile string `json:"profile"`
	Strict  bool   `json:"strict,omitempty"`
}

// DefaultKeyer hashes key inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ClassKey returns "classes:<sha256>".
func (DefaultKeyer) ClassKey(block, attrsHash string, opts ClassKeyOpts) string {
	return hashKey("classes", KeyVersion, block, attrsHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", KeyVersion, docHash, opts)
}
