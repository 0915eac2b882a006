// Package sponge implements Areion256-Sponge and Areion512-Sponge, sponge hashes built on the Areion-512 permutation.
//
// The 512-bit state is split into a 256-bit rate, which message blocks are XORed into, and a 256-bit capacity, which
// is never exposed. The two variants differ in their domain separation byte and digest size. Because the digest is
// squeezed from the rate alone, the hashes are not subject to length extension.
package sponge

import (
	"errors"
	"hash"

	"github.com/codahale/areion"
	"github.com/codahale/areion/internal/block"
	"github.com/codahale/areion/internal/mem"
)

const (
	// Size256 is the size, in bytes, of an Areion256-Sponge digest.
	Size256 = 32

	// Size512 is the size, in bytes, of an Areion512-Sponge digest.
	Size512 = 64

	// Rate is the number of state bytes each block is absorbed into.
	Rate = block.Size

	// Capacity is the number of state bytes never exposed.
	Capacity = areion.Width512 - Rate

	// BlockSize is the block size, in bytes, of both hashes.
	BlockSize = Rate

	// Name256 is the name of the 256-bit construction.
	Name256 = "Areion256-Sponge"

	// Name512 is the name of the 512-bit construction.
	Name512 = "Areion512-Sponge"

	ds256 = 0x01
	ds512 = 0x02
)

// ErrFinalized is the panic value raised when a finalized Hasher is updated or finalized again.
var ErrFinalized = block.ErrFinalized

// A Hasher computes Areion256-Sponge or Areion512-Sponge digests. The zero value is an Areion256-Sponge Hasher. It
// must not be used concurrently.
type Hasher struct {
	s   state
	buf block.Buffer
	ds  byte
}

// New returns a new Areion256-Sponge Hasher.
func New() *Hasher {
	return &Hasher{ds: ds256} //nolint:exhaustruct // zero state is initial
}

// New512 returns a new Areion512-Sponge Hasher.
func New512() *Hasher {
	return &Hasher{ds: ds512} //nolint:exhaustruct // zero state is initial
}

// Sum256 returns the Areion256-Sponge digest of data.
func Sum256(data []byte) (out [Size256]byte) {
	d := Hasher{ds: ds256} //nolint:exhaustruct // zero state is initial
	d.Update(data)
	d.finalize(out[:])
	return out
}

// Sum512 returns the Areion512-Sponge digest of data.
func Sum512(data []byte) (out [Size512]byte) {
	d := Hasher{ds: ds512} //nolint:exhaustruct // zero state is initial
	d.Update(data)
	d.finalize(out[:])
	return out
}

// Update absorbs p into the rate. It panics if the Hasher has been finalized.
func (d *Hasher) Update(p []byte) {
	d.buf.Write(&d.s, p)
}

// Write absorbs p into the rate. It never returns an error.
func (d *Hasher) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Finalize pads the message and squeezes a Size-byte digest. The Hasher cannot be updated or finalized again until
// Reset.
func (d *Hasher) Finalize() []byte {
	out := make([]byte, d.Size())
	d.finalize(out)
	return out
}

// FinalizeReset returns the digest and resets the Hasher.
func (d *Hasher) FinalizeReset() []byte {
	out := d.Finalize()
	d.Reset()
	return out
}

// Sum appends the digest of the message written so far to b without changing the hash state.
func (d *Hasher) Sum(b []byte) []byte {
	c := *d
	head, tail := mem.SliceForAppend(b, d.Size())
	c.finalize(tail)
	return head
}

// Reset returns the Hasher to its initial, all-zero state.
func (d *Hasher) Reset() {
	clear(d.s[:])
	d.buf.Reset()
}

// Clone returns an independent copy of the Hasher.
func (d *Hasher) Clone() *Hasher {
	c := *d
	return &c
}

// Size returns the size of the digest in bytes: Size256 or Size512.
func (d *Hasher) Size() int {
	if d.variant() == ds512 {
		return Size512
	}
	return Size256
}

// BlockSize returns the rate of the sponge in bytes.
func (d *Hasher) BlockSize() int {
	return BlockSize
}

// Name returns the name of the construction.
func (d *Hasher) Name() string {
	if d.variant() == ds512 {
		return Name512
	}
	return Name256
}

// variant returns the domain separation byte. A zero-value Hasher is Areion256-Sponge.
func (d *Hasher) variant() byte {
	if d.ds == 0 {
		return ds256
	}
	return d.ds
}

func (d *Hasher) finalize(out []byte) {
	d.buf.PadDomain(&d.s, d.variant())
	for {
		n := copy(out, d.s[:Rate])
		out = out[n:]
		if len(out) == 0 {
			return
		}
		areion.Permute512((*[areion.Width512]byte)(&d.s))
	}
}

const (
	magic         = "asp\x01"
	marshaledSize = len(magic) + 1 + areion.Width512 + block.MarshaledSize
)

// MarshalBinary returns the hash state, including the variant. Finalized Hashers cannot be marshaled.
func (d *Hasher) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledSize))
}

// AppendBinary appends the hash state to b.
func (d *Hasher) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, magic...)
	b = append(b, d.variant())
	b = append(b, d.s[:]...)
	return d.buf.AppendBinary(b)
}

// UnmarshalBinary restores a hash state produced by MarshalBinary, switching the Hasher to the marshaled variant.
func (d *Hasher) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("areion/sponge: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.New("areion/sponge: invalid hash state size")
	}
	b = b[len(magic):]
	if ds := b[0]; ds != ds256 && ds != ds512 {
		return errors.New("areion/sponge: invalid hash state variant")
	}
	if _, err := d.buf.UnmarshalBinary(b[1+areion.Width512:]); err != nil {
		return err
	}
	d.ds = b[0]
	copy(d.s[:], b[1:])
	return nil
}

// state is the permutation state. Its first Rate bytes are the rate.
type state [areion.Width512]byte

func (s *state) CompressBlock(b *[block.Size]byte, _ bool) {
	mem.XOR(s[:Rate], s[:Rate], b[:])
	areion.Permute512((*[areion.Width512]byte)(s))
}

var (
	_ hash.Hash        = (*Hasher)(nil)
	_ block.Compressor = (*state)(nil)
)
