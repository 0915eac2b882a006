// Package areion implements the Areion-256 and Areion-512 permutations and the compression functions built on them.
//
// Areion is a family of keyless permutations designed around the AES round function. On amd64 and arm64 it uses the
// AES-NI and ARMv8 Cryptography Extensions instruction sets when available; elsewhere it uses a bitsliced, pure Go AES
// round which produces identical results.
//
// The permutations are exposed at the lane level ([Areion256], [Areion512]) and as in-place transforms of byte
// arrays ([Permute256], [Permute512]). The Davies–Meyer ([DM256], [DM512]) and Matyas–Meyer–Oseas ([MMO512])
// compression functions are the building blocks of the hash constructions in the md, mmo, sponge, and haifa
// packages.
//
// See [Areion: Highly-Efficient Permutations and Its Applications to Hash Functions for Short Input].
//
// [Areion: Highly-Efficient Permutations and Its Applications to Hash Functions for Short Input]: https://eprint.iacr.org/2023/794
package areion

import (
	"github.com/codahale/areion/internal/aesni"
)

// LaneSize is the size of a lane in bytes.
const LaneSize = 16

// A Lane is a 128-bit value, the unit of the Areion permutations. Byte i of a lane is byte i of its memory
// representation.
type Lane [LaneSize]byte

// Load returns the lane stored in the first 16 bytes of b. It panics if b is shorter than 16 bytes.
func Load(b []byte) Lane {
	return Lane(b[:LaneSize])
}

// Store writes the lane to the first 16 bytes of dst. It panics if dst is shorter than 16 bytes.
func (l Lane) Store(dst []byte) {
	copy(dst[:LaneSize], l[:])
}

// Xor returns l XOR m.
func (l Lane) Xor(m Lane) Lane {
	for i := range l {
		l[i] ^= m[i]
	}
	return l
}

// AESRound applies a single keyless AES round (SubBytes, ShiftRows, MixColumns) to l and XORs rc into the result.
func AESRound(l, rc Lane) Lane {
	return aesni.AESENC(l, rc)
}

func enc(l, k Lane) Lane {
	return aesni.AESENC(l, k)
}

func encLast(l, k Lane) Lane {
	return aesni.AESENCLAST(l, k)
}
