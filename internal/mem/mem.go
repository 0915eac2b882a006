// Package mem provides byte slice helpers shared by the hash constructions.
package mem

import (
	"crypto/subtle"
	"slices"
)

// XOR sets dst[i] = a[i] ^ b[i] for each index of dst. Slices larger than 16 bytes go through subtle.XORBytes, which
// uses SIMD; small ones use a scalar loop to avoid the call overhead.
func XOR(dst, a, b []byte) {
	if len(dst) > 16 {
		subtle.XORBytes(dst, a, b)
		return
	}
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// SliceForAppend takes a slice and a requested number of bytes. It returns a slice with the contents of the given
// slice followed by that many bytes and a second slice that aliases into it and contains only the extra bytes. If the
// original slice has sufficient capacity, then no allocation is performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}

// Append appends the digest d to b, reusing b's capacity when possible.
func Append(b, d []byte) []byte {
	head, tail := SliceForAppend(b, len(d))
	copy(tail, d)
	return head
}
