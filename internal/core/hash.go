package core

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates simulation values into a 64-bit digest. Games use it
// to fingerprint snapshots in determinism tests.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Int mixes integers into the digest.
func (h *Hasher) Int(vs ...int) {
	for _, v := range vs {
		binary.LittleEndian.PutUint64(h.buf[:], uint64(v)) //#nosec G115 -- hash computation
		_, _ = h.d.Write(h.buf[:])
	}
}

// Float mixes the exact bit patterns of floats into the digest.
func (h *Hasher) Float(vs ...float64) {
	for _, v := range vs {
		binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
		_, _ = h.d.Write(h.buf[:])
	}
}

// String mixes a length-prefixed string into the digest.
func (h *Hasher) String(s string) {
	h.Int(len(s))
	_, _ = h.d.WriteString(s)
}

// Sum64 returns the digest.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}
