package domain

import (
	"time"

	"github.com/opencontainers/go-digest"
)

// LayerInfo records the cache state of one built layer. A layer is valid for
// reuse iff both its own cache key and its parent digest are unchanged, so a
// change anywhere in the chain invalidates everything after it.
type LayerInfo struct {
	StageName string    `json:"stage_name,omitzero"`
	CacheKey  string    `json:"cache_key,omitzero"`
	Digest    string    `json:"digest,omitzero"`
	Parent    string    `json:"parent,omitzero"`
	Unpinned  bool      `json:"unpinned,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// ChainDigest derives a layer's content address from its own cache key and
// the digest of the preceding layer. The first layer passes an empty parent.
func ChainDigest(parent, cacheKey string) string {
	return digest.FromString(parent + "\x00" + cacheKey).String()
}
