// Package mmo implements Areion512-MMO, a Merkle–Damgård hash built on the Areion-512 Matyas–Meyer–Oseas compression
// function. It shares its initial value, block size, and padding with Areion512-MD.
package mmo

import (
	"errors"
	"hash"

	"github.com/codahale/areion"
	"github.com/codahale/areion/internal/block"
	"github.com/codahale/areion/internal/mem"
	"github.com/codahale/areion/md"
)

const (
	// Size is the size, in bytes, of the digest.
	Size = 32

	// BlockSize is the block size, in bytes, of the hash.
	BlockSize = block.Size

	// Name is the name of the construction.
	Name = "Areion512-MMO"
)

// ErrFinalized is the panic value raised when a finalized Hasher is updated or finalized again.
var ErrFinalized = block.ErrFinalized

// A Hasher computes Areion512-MMO digests. The zero value is ready to use. It must not be used concurrently.
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

// Sum returns the Areion512-MMO digest of data.
func Sum(data []byte) [Size]byte {
	var d Hasher
	d.Reset()
	d.Update(data)
	return d.Finalize()
}

// Update absorbs p. It panics if the Hasher has been finalized.
func (d *Hasher) Update(p []byte) {
	d.init()
	d.buf.Write(&d.c, p)
}

// Write absorbs p. It never returns an error.
func (d *Hasher) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Finalize pads the message and returns its digest. Any further use of the Hasher before Reset panics.
func (d *Hasher) Finalize() [Size]byte {
	d.init()
	d.buf.PadLength(&d.c)
	var out [Size]byte
	d.c.h0.Store(out[:16])
	d.c.h1.Store(out[16:])
	return out
}

// FinalizeReset returns the digest and resets the Hasher.
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
	d.c = chain{h0: areion.Load(md.IV[:16]), h1: areion.Load(md.IV[16:])}
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
	magic         = "ammo\x01"
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
		return errors.New("areion/mmo: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.New("areion/mmo: invalid hash state size")
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

// chain is the chaining value. The message block is fed forward into the lanes it occupied in the permutation.
type chain struct {
	h0, h1 areion.Lane
}

func (c *chain) CompressBlock(b *[block.Size]byte, _ bool) {
	c.h0, c.h1 = areion.MMO512(c.h0, c.h1, areion.Load(b[:16]), areion.Load(b[16:]))
}

var (
	_ hash.Hash        = (*Hasher)(nil)
	_ block.Compressor = (*chain)(nil)
)
