package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// LayoutKeyOpts are the inputs besides the canvas that change an elkjs result.
type LayoutKeyOpts struct {
	Mode         string `json:"mode"`
	ElkjsVersion string `json:"elkjs_version,omitempty"`
}

// ArtifactKeyOpts describe a rendered preview.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// Keyer derives cache keys from content hashes and stage options.
type Keyer interface {
	LayoutKey(canvasHash string, opts LayoutKeyOpts) string
	ArtifactKey(canvasHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form "<stage>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the unscoped keyer.
func NewDefaultKeyer() *DefaultKeyer { return &DefaultKeyer{} }

// LayoutKey keys an elkjs layout result.
func (DefaultKeyer) LayoutKey(canvasHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", canvasHash, opts)
}

// ArtifactKey keys a rendered preview.
func (DefaultKeyer) ArtifactKey(canvasHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", canvasHash, opts)
}

// ScopedKeyer prefixes every key of an inner Keyer.
//
//	shared := cache.NewScopedKeyer(nil, "team-a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) *ScopedKeyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey returns the prefixed layout key.
func (k *ScopedKeyer) LayoutKey(canvasHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(canvasHash, opts)
}

// ArtifactKey returns the prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(canvasHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(canvasHash, opts)
}

var (
	_ Keyer = (*DefaultKeyer)(nil)
	_ Keyer = (*ScopedKeyer)(nil)
)

func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
