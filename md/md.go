// Package md implements Areion512-MD, a Merkle–Damgård hash built on the Areion-512 Davies–Meyer compression
// function.
//
// Messages are processed in 32-byte blocks with Merkle–Damgård strengthening. Like every plain Merkle–Damgård hash,
// Areion512-MD is subject to length extension: given Hash(m) and the length of m, anyone can compute
// Hash(m || pad || suffix) without knowing m. Use the sponge or haifa packages where that matters.
package md

import (
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

	// Name is the name of the construction.
	Name = "Areion512-MD"
)

// ErrFinalized is the panic value raised when a finalized Hasher is updated or finalized again.
var ErrFinalized = block.ErrFinalized

// IV is the initial chaining value shared by Areion512-MD and Areion512-MMO: SHA-256's initial hash value, in
// big-endian byte order.
var IV = [Size]byte{ //nolint:gochecknoglobals // constant
	0x6a, 0x09, 0xe6, 0x67, 0xbb, 0x67, 0xae, 0x85, 0x3c, 0x6e, 0xf3, 0x72, 0xa5, 0x4f, 0xf5, 0x3a,
	0x51, 0x0e, 0x52, 0x7f, 0x9b, 0x05, 0x68, 0x8c, 0x1f, 0x83, 0xd9, 0xab, 0x5b, 0xe0, 0xcd, 0x19,
}

// A Hasher computes Areion512-MD digests. It implements hash.Hash, encoding.BinaryMarshaler,
// encoding.BinaryAppender, and encoding.BinaryUnmarshaler. The zero value is ready to use.
//
// A Hasher must not be used concurrently; use Clone to fork independent copies.
type Hasher struct {
	c     chain
	buf   block.Buffer
	ready bool
}

// New returns a new Hasher.
func New() *Hasher {
	d := new(Hasher)
	d.Reset()
	return d
}

// Sum returns the Areion512-MD digest of data.
func Sum(data []byte) [Size]byte {
	var d Hasher
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

// Finalize pads the message and returns its digest. The Hasher cannot be updated or finalized again until Reset.
func (d *Hasher) Finalize() [Size]byte {
	d.init()
	d.buf.PadLength(&d.c)
	return d.c.digest()
}

// FinalizeReset returns the digest of the message and resets the Hasher for a new one.
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

// Reset returns the Hasher to its initial state.
func (d *Hasher) Reset() {
	d.c = chain{h0: areion.Load(IV[:16]), h1: areion.Load(IV[16:])}
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
	magic         = "amd\x01"
	marshaledSize = len(magic) + Size + block.MarshaledSize
)

// MarshalBinary returns the hash state. Finalized Hashers cannot be marshaled.
func (d *Hasher) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledSize))
}

// AppendBinary appends the hash state to b.
func (d *Hasher) AppendBinary(b []byte) ([]byte, error) {
	d.init()
	b = append(b, magic...)
	b = append(b, d.c.h0[:]...)
	b = append(b, d.c.h1[:]...)
	return d.buf.AppendBinary(b)
}

// UnmarshalBinary restores a hash state produced by MarshalBinary.
func (d *Hasher) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("areion/md: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.New("areion/md: invalid hash state size")
	}
	b = b[len(magic):]
	c := chain{h0: areion.Load(b), h1: areion.Load(b[16:])}
	if _, err := d.buf.UnmarshalBinary(b[Size:]); err != nil {
		return err
	}
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

// chain is the chaining value. It compresses each block with the message in the first two lanes of the
// permutation and the chaining value in the last two.
type chain struct {
	h0, h1 areion.Lane
}

func (c *chain) CompressBlock(b *[block.Size]byte, _ bool) {
	c.h0, c.h1 = areion.DM512(areion.Load(b[:16]), areion.Load(b[16:]), c.h0, c.h1)
}

func (c *chain) digest() (out [Size]byte) {
	c.h0.Store(out[:16])
	c.h1.Store(out[16:])
	return out
}

// Length returns the total number of bytes, message and padding, that Areion512-MD compresses for an n-byte message.
func Length(n uint64) uint64 {
	blocks := n/BlockSize + 1
	if n%BlockSize >= BlockSize-block.LengthSize {
		blocks++
	}
	return blocks * BlockSize
}

var (
	_ hash.Hash        = (*Hasher)(nil)
	_ block.Compressor = (*chain)(nil)
)
