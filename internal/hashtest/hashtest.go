// Package hashtest checks the properties every Areion hash construction must have: determinism, independence from
// how the input is chunked, fixed-size output, idempotent Sum, Reset, avalanche, and constant memory.
package hashtest

import (
	"bytes"
	"fmt"
	"hash"
	"math/bits"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

// Run runs every property check against the hash returned by newHash, which must produce size-byte digests.
func Run(t *testing.T, newHash func() hash.Hash, size int) {
	t.Helper()

	t.Run("Determinism", func(t *testing.T) { Determinism(t, newHash) })
	t.Run("ChunkingIndependence", func(t *testing.T) { ChunkingIndependence(t, newHash) })
	t.Run("FixedSize", func(t *testing.T) { FixedSize(t, newHash, size) })
	t.Run("SumIdempotent", func(t *testing.T) { SumIdempotent(t, newHash) })
	t.Run("Reset", func(t *testing.T) { Reset(t, newHash) })
	t.Run("Avalanche", func(t *testing.T) { Avalanche(t, newHash) })
	t.Run("MemoryBound", func(t *testing.T) { MemoryBound(t, newHash) })
}

// Lengths are the message lengths exercised by the checks: around the block and padding boundaries, and up to 1 MiB.
var Lengths = []int{0, 1, 23, 24, 25, 31, 32, 33, 55, 56, 63, 64, 65, 100, 1000, 4096, 1 << 20} //nolint:gochecknoglobals // test table

// Message returns n deterministic pseudo-random bytes.
func Message(seed uint64, n int) []byte {
	rng := pcg.New(seed)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Uint32())
	}
	return b
}

// Digest returns the digest of msg written in a single call.
func Digest(newHash func() hash.Hash, msg []byte) []byte {
	h := newHash()
	_, _ = h.Write(msg)
	return h.Sum(nil)
}

// Determinism checks that hashing the same message twice yields the same digest.
func Determinism(t *testing.T, newHash func() hash.Hash) {
	t.Helper()

	for _, n := range Lengths[:len(Lengths)-1] {
		msg := Message(uint64(n), n) //nolint:gosec // n is non-negative
		assert.Equal(t, Digest(newHash, msg), Digest(newHash, msg))
	}
}

// ChunkingIndependence checks that splitting a message into arbitrary non-empty chunks does not change its digest.
func ChunkingIndependence(t *testing.T, newHash func() hash.Hash) {
	t.Helper()

	rng := pcg.New(0xc4a9)
	for _, n := range []int{1, 31, 32, 33, 64, 97, 1000, 5000} {
		msg := Message(uint64(n), n) //nolint:gosec // n is non-negative
		want := Digest(newHash, msg)

		for range 20 {
			h := newHash()
			for p := msg; len(p) > 0; {
				k := min(len(p), 1+int(rng.Uint32n(80)))
				_, _ = h.Write(p[:k])
				p = p[k:]
			}
			if got := h.Sum(nil); !bytes.Equal(got, want) {
				t.Fatalf("chunked digest of %d bytes = %x, want = %x", n, got, want)
			}
		}

		// Byte at a time.
		h := newHash()
		for i := range msg {
			_, _ = h.Write(msg[i : i+1])
		}
		assert.Equal(t, h.Sum(nil), want)
	}
}

// FixedSize checks that every digest is exactly size bytes long, for messages from 0 bytes to 1 MiB.
func FixedSize(t *testing.T, newHash func() hash.Hash, size int) {
	t.Helper()

	assert.Equal(t, newHash().Size(), size)
	for _, n := range Lengths {
		assert.Equal(t, len(Digest(newHash, make([]byte, n))), size)
	}
}

// SumIdempotent checks that Sum appends to its argument, does not modify the hash state, and that writing more data
// afterwards changes the digest.
func SumIdempotent(t *testing.T, newHash func() hash.Hash) {
	t.Helper()

	h := newHash()
	_, _ = h.Write([]byte("Hello, world!"))

	sum := h.Sum(nil)
	assert.Equal(t, h.Sum([]byte("prefix")), append([]byte("prefix"), sum...))
	assert.Equal(t, h.Sum(nil), sum)

	_, _ = h.Write([]byte("Hello, world!"))
	assert.NotEqual(t, h.Sum(nil), sum)
	assert.Equal(t, h.Sum(nil), Digest(newHash, []byte("Hello, world!Hello, world!")))
}

// Reset checks that a reset hash is indistinguishable from a new one.
func Reset(t *testing.T, newHash func() hash.Hash) {
	t.Helper()

	h := newHash()
	_, _ = h.Write(Message(1, 77))
	h.Reset()
	assert.Equal(t, h.Sum(nil), Digest(newHash, nil))

	_, _ = h.Write([]byte("data"))
	assert.Equal(t, h.Sum(nil), Digest(newHash, []byte("data")))
}

// Avalanche checks that flipping a single input bit flips close to half of the output bits on average.
func Avalanche(t *testing.T, newHash func() hash.Hash) {
	t.Helper()

	const trials = 256
	rng := pcg.New(0xa7a1)

	var flipped, total int
	for i := range trials {
		msg := Message(uint64(i), 1+i%96)             //nolint:gosec // i is non-negative
		bit := int(rng.Uint32n(uint32(8 * len(msg)))) //nolint:gosec // small lengths

		a := Digest(newHash, msg)
		msg[bit/8] ^= 1 << (bit % 8)
		b := Digest(newHash, msg)

		for j := range a {
			flipped += bits.OnesCount8(a[j] ^ b[j])
		}
		total += 8 * len(a)
	}

	if ratio := float64(flipped) / float64(total); ratio < 0.48 || ratio > 0.52 {
		t.Errorf("average flipped output bits = %.4f, want ~0.5", ratio)
	}
}

// SizeName returns a benchmark name for an n-byte input, e.g. 16B, 1KiB, or 1MiB.
func SizeName(n int) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMiB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKiB", n>>10)
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// MemoryBound checks that streaming writes never allocate, so memory use stays bounded by the block buffer no matter
// how much data is hashed.
func MemoryBound(t *testing.T, newHash func() hash.Hash) {
	t.Helper()

	h := newHash()
	chunk := Message(4096, 4096)
	for _, n := range []int{4096, 4095, 17} {
		p := chunk[:n]
		if allocs := testing.AllocsPerRun(100, func() { _, _ = h.Write(p) }); allocs != 0 {
			t.Errorf("Write of %d bytes allocated %v times per run, want 0", n, allocs)
		}
	}
}
