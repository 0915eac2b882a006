// Package block implements the buffering and padding layer shared by the Areion hash constructions.
//
// A Buffer accumulates a byte stream into fixed-size blocks and hands each full block to a Compressor as soon as it
// is complete, so memory use is independent of the input length. On finalization it applies either Merkle–Damgård
// strengthening (PadLength) or sponge padding (PadDomain).
package block

import (
	"encoding/binary"
	"errors"
)

const (
	// Size is the block size in bytes.
	Size = 32

	// LengthSize is the size in bytes of the bit length field written by PadLength.
	LengthSize = 8

	// MarshaledSize is the size of a Buffer's binary representation.
	MarshaledSize = 8 + 1 + Size
)

// ErrFinalized is the panic value raised when a finalized Buffer is written to or padded again.
var ErrFinalized = errors.New("areion: use of finalized hasher")

// A Compressor processes full blocks. The final flag is set on the last block of a padded message.
type Compressor interface {
	CompressBlock(block *[Size]byte, final bool)
}

// A Buffer holds a partial block, the count of message blocks compressed so far, and whether the message has been
// padded. The zero value is an empty buffer.
type Buffer struct {
	buf       [Size]byte
	pos       int
	blocks    uint64
	finalized bool
}

// Write appends p to the buffered message, passing every completed block to c. Full blocks of p are compressed in
// place without being copied.
func (b *Buffer) Write(c Compressor, p []byte) {
	b.checkFinalized()

	if b.pos > 0 {
		n := copy(b.buf[b.pos:], p)
		b.pos += n
		p = p[n:]
		if b.pos < Size {
			return
		}
		c.CompressBlock(&b.buf, false)
		b.blocks++
		b.pos = 0
	}

	for len(p) >= Size {
		c.CompressBlock((*[Size]byte)(p[:Size]), false)
		b.blocks++
		p = p[Size:]
	}

	b.pos = copy(b.buf[:], p)
}

// PadLength applies Merkle–Damgård strengthening: a 1 bit, 0 bits, and the 64-bit big-endian message length in bits.
// If the partial block lacks room for the marker and the length, an extra block is compressed first. The last block
// is passed to c with final set.
func (b *Buffer) PadLength(c Compressor) {
	b.checkFinalized()

	bits := b.Len() << 3
	b.buf[b.pos] = 0x80
	clear(b.buf[b.pos+1:])
	if b.pos+1 > Size-LengthSize {
		c.CompressBlock(&b.buf, false)
		clear(b.buf[:])
	}
	binary.BigEndian.PutUint64(b.buf[Size-LengthSize:], bits)
	c.CompressBlock(&b.buf, true)

	b.finish()
}

// PadDomain applies sponge padding: the domain separation byte ds directly after the message, 0 bits, and a final 1
// bit in the last byte of the block. The padded block is passed to c with final set.
func (b *Buffer) PadDomain(c Compressor, ds byte) {
	b.checkFinalized()

	clear(b.buf[b.pos:])
	b.buf[b.pos] ^= ds
	b.buf[Size-1] ^= 0x80
	c.CompressBlock(&b.buf, true)

	b.finish()
}

// Len returns the number of message bytes written, modulo 2^64.
func (b *Buffer) Len() uint64 {
	return b.blocks*Size + uint64(b.pos) //nolint:gosec // pos is always in [0, Size)
}

// Blocks returns the number of full message blocks compressed.
func (b *Buffer) Blocks() uint64 {
	return b.blocks
}

// Buffered returns the number of bytes waiting for a full block.
func (b *Buffer) Buffered() int {
	return b.pos
}

// Finalized returns true if the buffer has been padded.
func (b *Buffer) Finalized() bool {
	return b.finalized
}

// Reset returns the buffer to its empty state.
func (b *Buffer) Reset() {
	*b = Buffer{} //nolint:exhaustruct // zero value is empty
}

// AppendBinary appends the buffer's binary representation to dst: the block count as a 64-bit big-endian integer,
// the number of buffered bytes, and the block buffer with unused bytes zeroed. Finalized buffers cannot be marshaled.
func (b *Buffer) AppendBinary(dst []byte) ([]byte, error) {
	if b.finalized {
		return nil, ErrFinalized
	}
	dst = binary.BigEndian.AppendUint64(dst, b.blocks)
	dst = append(dst, byte(b.pos))
	dst = append(dst, b.buf[:b.pos]...)
	return append(dst, make([]byte, Size-b.pos)...), nil
}

// UnmarshalBinary restores the buffer from the first MarshaledSize bytes of data and returns the rest.
func (b *Buffer) UnmarshalBinary(data []byte) ([]byte, error) {
	if len(data) < MarshaledSize {
		return nil, errors.New("areion/block: invalid hash state size")
	}
	pos := int(data[8])
	if pos >= Size {
		return nil, errors.New("areion/block: invalid buffered byte count")
	}
	b.Reset()
	b.blocks = binary.BigEndian.Uint64(data)
	b.pos = pos
	copy(b.buf[:pos], data[9:9+pos])
	return data[MarshaledSize:], nil
}

func (b *Buffer) finish() {
	clear(b.buf[:])
	b.pos = 0
	b.finalized = true
}

func (b *Buffer) checkFinalized() {
	if b.finalized {
		panic(ErrFinalized)
	}
}
