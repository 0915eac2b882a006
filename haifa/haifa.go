// Package haifa implements Areion512-HAIFA, a HAIFA-mode hash built on the Areion-512 Davies–Meyer compression
// function.
//
// Each compression mixes a block counter and a finalization flag into the chaining value, and an optional 16-byte
// salt into its second lane:
//
//	t        = LE64(counter) || LE64(final ? 2^64-1 : 0)
//	(h0, h1) = DM512(m0, m1, h0 XOR t, h1 XOR salt)
//
// The flag is set only on the last compression of a message, so a published digest is never a valid intermediate
// chaining value and the construction resists length extension. Padding is the same Merkle–Damgård strengthening
// used by the md package.
package haifa

import (
	"encoding/binary"
	"errors"
	"hash"

	"github.com/codahale/areion"
	"github.com/codahale/areion/internal/block"
	"github.com/codahale/areion/internal/mem"
)

const (
	// Size is the size, in bytes, of the digest.
	Size = 32

	// BlockSize is the block size, in bytes, of the hash.
	BlockSize = block.Size

	// SaltSize is the size, in bytes, of the salt.
	SaltSize = areion.LaneSize

	// Name is the name of the construction.
	Name = "Areion512-HAIFA"
)

// ErrFinalized is the panic value raised when a finalized Hasher is updated or finalized again.
var ErrFinalized = block.ErrFinalized

// iv is the first half of SHA-512's initial hash value, in big-endian byte order.
var iv = [Size]byte{ //nolint:gochecknoglobals // constant
	0x6a, 0x09, 0xe6, 0x67, 0xf3, 0xbc, 0xc9, 0x08, 0xbb, 0x67, 0xae, 0x85, 0x84, 0xca, 0xa7, 0x3b,
	0x3c, 0x6e, 0xf3, 0x72, 0xfe, 0x94, 0xf8, 0x2b, 0xa5, 0x4f, 0xf5, 0x3a, 0x5f, 0x1d, 0x36, 0xf1,
}

// A Hasher computes Areion512-HAIFA digests. The zero value is an unsalted Hasher. It must not be used concurrently;
// use Clone to fork it.
type Hasher struct {
	c     chain
	buf   block.Buffer
	ready bool
}

// New returns a new unsalted Hasher.
func New() *Hasher {
	return NewSalted([SaltSize]byte{})
}

// NewSalted returns a new Hasher using the given salt. A zero salt is equivalent to no salt.
func NewSalted(salt [SaltSize]byte) *Hasher {
	d := &Hasher{c: chain{salt: areion.Lane(salt)}} //nolint:exhaustruct // initialized via Reset
	d.Reset()
	return d
}

// Sum returns the unsalted Areion512-HAIFA digest of data.
func Sum(data []byte) [Size]byte {
	return SumSalted([SaltSize]byte{}, data)
}

// SumSalted returns the Areion512-HAIFA digest of data using the given salt.
func SumSalted(salt [SaltSize]byte, data []byte) [Size]byte {
	d := Hasher{c: chain{salt: areion.Lane(salt)}} //nolint:exhaustruct // initialized via Reset
	d.Reset()
	d.Update(data)
	return d.Finalize()
}

// Update absorbs p into the hash state. It panics if the Hasher has been finalized.
func (d *Hasher) Update(p []byte) {
	d.init()
	d.buf.Write(&d.c, p)
}

// Write absorbs p into the hash state. It never returns an error.
func (d *Hasher) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Finalize pads the message, compresses the last block with the finalization flag set, and returns the digest. The
// Hasher cannot be updated or finalized again until Reset.
func (d *Hasher) Finalize() [Size]byte {
	d.init()
	d.buf.PadLength(&d.c)
	var out [Size]byte
	d.c.h0.Store(out[:16])
	d.c.h1.Store(out[16:])
	return out
}

// FinalizeReset returns the digest and resets the Hasher, keeping its salt.
func (d *Hasher) FinalizeReset() [Size]byte {
	out := d.Finalize()
	d.Reset()
	return out
}

// Sum appends the digest of the message written so far to b without changing the hash state.
func (d *Hasher) Sum(b []byte) []byte {
	c := *d
	out := c.Finalize()
	return mem.Append(b, out[:])
}

// Reset returns the Hasher to its initial state. The salt is kept.
func (d *Hasher) Reset() {
	d.c.h0, d.c.h1 = areion.Load(iv[:16]), areion.Load(iv[16:])
	d.c.counter = 0
	d.buf.Reset()
	d.ready = true
}

// Clone returns an independent copy of the Hasher.
func (d *Hasher) Clone() *Hasher {
	c := *d
	return &c
}

// Size returns the size of the digest in bytes.
func (d *Hasher) Size() int {
	return Size
}

// BlockSize returns the block size of the hash in bytes.
func (d *Hasher) BlockSize() int {
	return BlockSize
}

const (
	magic         = "aha\x01"
	marshaledSize = len(magic) + Size + SaltSize + block.MarshaledSize
)

// MarshalBinary returns the hash state, including the salt. Finalized Hashers cannot be marshaled.
func (d *Hasher) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledSize))
}

// AppendBinary appends the hash state to b.
func (d *Hasher) AppendBinary(b []byte) ([]byte, error) {
	d.init()
	b = append(b, magic...)
	b = append(b, d.c.h0[:]...)
	b = append(b, d.c.h1[:]...)
	b = append(b, d.c.salt[:]...)
	return d.buf.AppendBinary(b)
}

// UnmarshalBinary restores a hash state produced by MarshalBinary. The block counter is recovered from the number of
// blocks compressed.
func (d *Hasher) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("areion/haifa: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.New("areion/haifa: invalid hash state size")
	}
	b = b[len(magic):]
	c := chain{h0: areion.Load(b), h1: areion.Load(b[16:]), salt: areion.Load(b[32:])} //nolint:exhaustruct // counter
	if _, err := d.buf.UnmarshalBinary(b[Size+SaltSize:]); err != nil {
		return err
	}
	c.counter = d.buf.Blocks()
	d.c = c
	d.ready = true
	return nil
}

// init resets a zero-value Hasher before its first use.
func (d *Hasher) init() {
	if !d.ready {
		d.Reset()
	}
}

type chain struct {
	h0, h1  areion.Lane
	salt    areion.Lane
	counter uint64
}

func (c *chain) CompressBlock(b *[block.Size]byte, final bool) {
	var t areion.Lane
	binary.LittleEndian.PutUint64(t[:8], c.counter)
	if final {
		binary.LittleEndian.PutUint64(t[8:], ^uint64(0))
	}
	c.h0, c.h1 = areion.DM512(areion.Load(b[:16]), areion.Load(b[16:]), c.h0.Xor(t), c.h1.Xor(c.salt))
	c.counter++
}

var (
	_ hash.Hash        = (*Hasher)(nil)
	_ block.Compressor = (*chain)(nil)
)
