// Package aesni provides the keyless AES round functions used as the non-linear layer of the Areion permutations.
//
// On amd64 and arm64 it uses the AES-NI and ARMv8 Cryptography Extensions instructions when the CPU supports them. On
// other architectures, or when built with the purego tag, it uses a bitsliced, pure Go implementation of the AES round
// which attempts to be constant time. Both paths produce bit-identical results.
package aesni

// AESENC performs one AES encryption round: SubBytes, ShiftRows, MixColumns, and AddRoundKey with the given key.
//
// It is equivalent to the AESENC instruction from AES-NI.
func AESENC(state, key [16]byte) [16]byte {
	return aesEnc(state, key)
}

// AESENCLAST performs a final AES encryption round: SubBytes, ShiftRows, and AddRoundKey with the given key.
//
// It is equivalent to the AESENCLAST instruction from AES-NI.
func AESENCLAST(state, key [16]byte) [16]byte {
	return aesEncLast(state, key)
}
