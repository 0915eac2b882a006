//go:build arm64 && !purego

package aesni

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// UseAESNI is set if the current CPU supports AES instructions. All Apple Silicon supports them, even when feature
// detection does not report it.
var UseAESNI = cpu.ARM64.HasAES || runtime.GOOS == "darwin" //nolint:gochecknoglobals // should only check once

//go:noescape
//goland:noinspection GoUnusedParameter
func aesEncAsm(out, in, key *[16]byte)

//go:noescape
//goland:noinspection GoUnusedParameter
func aesEncLastAsm(out, in, key *[16]byte)

func aesEnc(state, key [16]byte) [16]byte {
	if !UseAESNI {
		return aesEncGeneric(state, key)
	}
	var out [16]byte
	aesEncAsm(&out, &state, &key)
	return out
}

func aesEncLast(state, key [16]byte) [16]byte {
	if !UseAESNI {
		return aesEncLastGeneric(state, key)
	}
	var out [16]byte
	aesEncLastAsm(&out, &state, &key)
	return out
}
