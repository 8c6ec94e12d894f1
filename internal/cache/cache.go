// Package cache stores converted corpora so repeated analyze runs skip
// re-parsing the raw annotation dumps. Entries are keyed by content
// hash, so an edited source file never hits a stale conversion.
package cache

import (
	"encoding/hex"
	"time"

	"github.com/zeebo/blake3"
)

// Cache defines the interface for caching converted corpora.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the conversion format and the raw input
// bytes. The format tag is part of the key: the same file parsed as
// CoNLL and as GENIA yields different corpora.
func Key(format string, raw []byte) string {
	h := blake3.New()
	_, _ = h.Write([]byte("spanscope:v1:" + format + ":"))
	_, _ = h.Write(raw)
	return hex.EncodeToString(h.Sum(nil))
}
