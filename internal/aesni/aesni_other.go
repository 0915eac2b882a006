//go:build (!amd64 && !arm64) || purego

package aesni

// UseAESNI is set if the current CPU supports AES instructions.
var UseAESNI = false //nolint:gochecknoglobals // should only check once

func aesEnc(state, key [16]byte) [16]byte {
	return aesEncGeneric(state, key)
}

func aesEncLast(state, key [16]byte) [16]byte {
	return aesEncLastGeneric(state, key)
}
