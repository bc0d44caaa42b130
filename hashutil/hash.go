package hashutil

import "github.com/cespare/xxhash/v2"

// Sum64 hashes a byte range the way Framebuffer.CheckRAM hashes a
// framebuffer's known RDRAM contents to detect CPU-side writes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest wraps a resettable hasher for callers that accumulate a framebuffer
// hash across several non-contiguous writes before comparing.
type Digest struct {
	h *xxhash.Digest
}

// NewDigest returns a ready-to-use Digest.
func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

// Write feeds bytes into the running hash.
func (d *Digest) Write(p []byte) {
	_, _ = d.h.Write(p)
}

// Sum64 returns the current hash value without resetting the digest.
func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}

// Reset clears the digest for reuse.
func (d *Digest) Reset() {
	d.h.Reset()
}
