package areion //nolint:testpackage // testing unexported internals

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func seqBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func decode(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex: %v", err)
	}
	return b
}

// The permutation vectors below were computed with an independent implementation of the round functions described
// in https://eprint.iacr.org/2023/794, using a FIPS-197 checked AES round.
func TestPermute256Vectors(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		output string
	}{
		{"zero", make([]byte, 32), "e2a7f4801b30b2ec13f95866eef3a59693e332c4627268f467b6275ced5b74f9"},
		{"sequence", seqBytes(32), "17eed60d8e2c1049e14e535e0d5fa27ac7adbfed11f54922d9df53a43d206bae"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := [Width256]byte(tc.input)
			Permute256(&state)
			if got, want := state[:], decode(t, tc.output); !bytes.Equal(got, want) {
				t.Errorf("Permute256 mismatch:\nGot:  %x\nWant: %x", got, want)
			}
		})
	}
}

func TestPermute512Vectors(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		output string
	}{
		{
			"zero", make([]byte, 64),
			"e1a682eb66d048f95e51c0f3f22bbee6" +
				"12abcc0f5f100ffd33c10d2572bce69c" +
				"39525a3c52ac08eef92f2a1872d07c3b" +
				"a76aec460a6052fb11cb5bec12e56605",
		},
		{
			"sequence", seqBytes(64),
			"e6c4b71625e8ed2bebdac4e01533707a" +
				"e7bfffad1bc20e24c659d781325ffb1c" +
				"9941801ce8ac15522bc480036b5fdeb9" +
				"6505f49e8cf12e7ef5080197976ff8fc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := [Width512]byte(tc.input)
			Permute512(&state)
			if got, want := state[:], decode(t, tc.output); !bytes.Equal(got, want) {
				t.Errorf("Permute512 mismatch:\nGot:  %x\nWant: %x", got, want)
			}
		})
	}
}

func TestCompressionVectors(t *testing.T) {
	zero, seq := make([]byte, 64), seqBytes(64)

	t.Run("DM256", func(t *testing.T) {
		// The permutation of zero XORed with zero is the permutation of zero.
		y0, y1 := DM256(Load(zero), Load(zero[16:]))
		assert.Equal(t, hex.EncodeToString(append(y0[:], y1[:]...)),
			"e2a7f4801b30b2ec13f95866eef3a59693e332c4627268f467b6275ced5b74f9")
	})

	t.Run("DM512", func(t *testing.T) {
		y0, y1 := DM512(Load(zero), Load(zero[16:]), Load(zero[32:]), Load(zero[48:]))
		assert.Equal(t, hex.EncodeToString(append(y0[:], y1[:]...)),
			"5e51c0f3f22bbee633c10d2572bce69c39525a3c52ac08eea76aec460a6052fb")

		y0, y1 = DM512(Load(seq), Load(seq[16:]), Load(seq[32:]), Load(seq[48:]))
		assert.Equal(t, hex.EncodeToString(append(y0[:], y1[:]...)),
			"e3d3ceeb193e7e75de40cd9a2e42e503b960a23fcc8933755534c6adb8c41849")
	})

	t.Run("MMO512", func(t *testing.T) {
		y0, y1 := MMO512(Load(zero), Load(zero[16:]), Load(zero[32:]), Load(zero[48:]))
		assert.Equal(t, hex.EncodeToString(append(y0[:], y1[:]...)),
			"39525a3c52ac08eef92f2a1872d07c3ba76aec460a6052fb11cb5bec12e56605")
	})
}

func TestDM512Truncation(t *testing.T) {
	rng := pcg.New(512)
	for range 100 {
		var x [Width512]byte
		for i := range x {
			x[i] = byte(rng.Uint32())
		}

		y := x
		Permute512(&y)
		for i := range y {
			y[i] ^= x[i]
		}

		z0, z1 := DM512(Load(x[:]), Load(x[16:]), Load(x[32:]), Load(x[48:]))
		want := append(append(append(append([]byte(nil), y[8:16]...), y[24:32]...), y[32:40]...), y[48:56]...)
		assert.Equal(t, append(z0[:], z1[:]...), want)
	}
}

func TestLaneForms(t *testing.T) {
	rng := pcg.New(256)
	for range 100 {
		var s [Width512]byte
		for i := range s {
			s[i] = byte(rng.Uint32())
		}

		s256 := [Width256]byte(s[:Width256])
		Permute256(&s256)
		y0, y1 := Areion256(Load(s[:]), Load(s[16:]))
		assert.Equal(t, s256[:], append(y0[:], y1[:]...))

		s512 := s
		Permute512(&s512)
		z0, z1, z2, z3 := Areion512(Load(s[:]), Load(s[16:]), Load(s[32:]), Load(s[48:]))
		assert.Equal(t, s512[:], append(append(append(z0[:], z1[:]...), z2[:]...), z3[:]...))
	}
}

func TestPermutationsAreDistinct(t *testing.T) {
	var a, b [Width512]byte
	Permute512(&a)
	Permute512(&b)
	assert.Equal(t, a, b)

	b[63] ^= 1
	Permute512(&b)
	Permute512(&a)
	assert.NotEqual(t, a, b)

	var c [Width256]byte
	Permute256(&c)
	assert.NotEqual(t, c[:], a[:Width256])
}

func TestRoundConstants(t *testing.T) {
	// The leading 60 32-bit words of the fractional part of π.
	words := []uint32{
		0x243f6a88, 0x85a308d3, 0x13198a2e, 0x03707344, 0xa4093822, 0x299f31d0, 0x082efa98, 0xec4e6c89,
		0x452821e6, 0x38d01377, 0xbe5466cf, 0x34e90c6c, 0xc0ac29b7, 0xc97c50dd, 0x3f84d5b5, 0xb5470917,
		0x9216d5d9, 0x8979fb1b, 0xd1310ba6, 0x98dfb5ac, 0x2ffd72db, 0xd01adfb7, 0xb8e1afed, 0x6a267e96,
		0xba7c9045, 0xf12c7f99, 0x24a19947, 0xb3916cf7, 0x0801f2e2, 0x858efc16, 0x636920d8, 0x71574e69,
		0xa458fea3, 0xf4933d7e, 0x0d95748f, 0x728eb658, 0x718bcd58, 0x82154aee, 0x7b54a41d, 0xc25a59b5,
		0x9c30d539, 0x2af26013, 0xc5d1b023, 0x286085f0, 0xca417918, 0xb8db38ef, 0x8e79dcb0, 0x603a180e,
		0x6c9e0e8b, 0xb01e8a3e, 0xd71577c1, 0xbd314b27, 0x78af2fda, 0x55605c60, 0xe65525f3, 0xaa55ab94,
		0x57489862, 0x63e81440, 0x55ca396a, 0x2aab10b6,
	}

	for i, c := range rc {
		for j := range 4 {
			assert.Equal(t, binary.LittleEndian.Uint32(c[4*(3-j):]), words[4*i+j])
		}
	}
}

func TestLane(t *testing.T) {
	b := seqBytes(20)
	l := Load(b[4:])
	assert.Equal(t, l[0], byte(4))
	assert.Equal(t, l[15], byte(19))

	out := make([]byte, 20)
	l.Store(out[2:])
	assert.Equal(t, out[2:18], b[4:])

	assert.Equal(t, l.Xor(l), Lane{})
	assert.Equal(t, l.Xor(Lane{}), l)

	// A keyless AES round of zero is SubBytes(0) = 0x63 in every byte, which MixColumns leaves unchanged.
	r := AESRound(Lane{}, Lane{})
	assert.Equal(t, r, Lane(bytes.Repeat([]byte{0x63}, LaneSize)))
}

func BenchmarkPermute256(b *testing.B) {
	var state [Width256]byte
	b.SetBytes(int64(len(state)))
	b.ReportAllocs()
	for b.Loop() {
		Permute256(&state)
	}
}

func BenchmarkPermute512(b *testing.B) {
	var state [Width512]byte
	b.SetBytes(int64(len(state)))
	b.ReportAllocs()
	for b.Loop() {
		Permute512(&state)
	}
}

func BenchmarkDM512(b *testing.B) {
	var x0, x1, x2, x3 Lane
	b.SetBytes(32)
	b.ReportAllocs()
	for b.Loop() {
		x2, x3 = DM512(x0, x1, x2, x3)
	}
}

func BenchmarkMMO512(b *testing.B) {
	var h0, h1, m0, m1 Lane
	b.SetBytes(32)
	b.ReportAllocs()
	for b.Loop() {
		h0, h1 = MMO512(h0, h1, m0, m1)
	}
}
