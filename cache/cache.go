// Package cache accumulates a proof across multiple chunked uploads, the
// same way the original Solana program's ProofCacheAccount fills up across
// repeated load_proof calls before a single validate_event call consumes
// the whole thing.
package cache

import (
	"github.com/davidt58/peptide-event-verifier/errors"
)

// DefaultMaxSize is the default cap on total accumulated bytes, matching
// the original program's #[max_len(3000)] bound on ProofCacheAccount.
const DefaultMaxSize = 3000

// ProofCache accumulates proof bytes across successive Append calls, up to
// a configured maximum total size.
type ProofCache struct {
	buf     []byte
	maxSize int
}

// NewProofCache creates an empty ProofCache bounded at maxSize bytes. A
// maxSize of 0 defaults to DefaultMaxSize.
func NewProofCache(maxSize int) *ProofCache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &ProofCache{maxSize: maxSize}
}

// Append adds chunk to the cache, returning an error if doing so would
// exceed the configured maximum size.
func (c *ProofCache) Append(chunk []byte) error {
	if len(c.buf)+len(chunk) > c.maxSize {
		return errors.ErrCacheOverflow(len(c.buf)+len(chunk), c.maxSize)
	}
	c.buf = append(c.buf, chunk...)
	return nil
}

// Bytes returns the accumulated proof bytes.
func (c *ProofCache) Bytes() []byte {
	return c.buf
}

// Len returns the number of bytes currently accumulated.
func (c *ProofCache) Len() int {
	return len(c.buf)
}

// Clear empties the cache, the Go analogue of clear_proof_cache.
func (c *ProofCache) Clear() {
	c.buf = c.buf[:0]
}

// Resize changes the cache's maximum size, the analogue of
// resize_proof_cache. It does not truncate already-accumulated bytes; a
// maxSize smaller than the current length only blocks further Appends.
func (c *ProofCache) Resize(maxSize int) {
	c.maxSize = maxSize
}
