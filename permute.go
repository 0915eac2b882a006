package areion

const (
	// Width256 is the width of the Areion-256 permutation in bytes.
	Width256 = 2 * LaneSize

	// Width512 is the width of the Areion-512 permutation in bytes.
	Width512 = 4 * LaneSize

	rounds256 = 10
	rounds512 = 15
)

// Areion256 applies the Areion-256 permutation to the 256-bit state (x0, x1).
func Areion256(x0, x1 Lane) (Lane, Lane) {
	// The lanes trade places every round; with an even number of rounds they end up where they started.
	for i := 0; i < rounds256; i += 2 {
		x0, x1 = round256(x0, x1, i)
		x1, x0 = round256(x1, x0, i+1)
	}
	return x0, x1
}

func round256(x0, x1 Lane, i int) (Lane, Lane) {
	x1 = enc(enc(x0, rc[i]), x1)
	x0 = encLast(x0, Lane{})
	return x0, x1
}

// Areion512 applies the Areion-512 permutation to the 512-bit state (x0, x1, x2, x3).
func Areion512(x0, x1, x2, x3 Lane) (Lane, Lane, Lane, Lane) {
	// Each round rotates the lanes left by one. Fifteen rounds leave them rotated by three, which the return undoes.
	x0, x1, x2, x3 = round512(x0, x1, x2, x3, 0)
	x1, x2, x3, x0 = round512(x1, x2, x3, x0, 1)
	x2, x3, x0, x1 = round512(x2, x3, x0, x1, 2)
	x3, x0, x1, x2 = round512(x3, x0, x1, x2, 3)
	x0, x1, x2, x3 = round512(x0, x1, x2, x3, 4)
	x1, x2, x3, x0 = round512(x1, x2, x3, x0, 5)
	x2, x3, x0, x1 = round512(x2, x3, x0, x1, 6)
	x3, x0, x1, x2 = round512(x3, x0, x1, x2, 7)
	x0, x1, x2, x3 = round512(x0, x1, x2, x3, 8)
	x1, x2, x3, x0 = round512(x1, x2, x3, x0, 9)
	x2, x3, x0, x1 = round512(x2, x3, x0, x1, 10)
	x3, x0, x1, x2 = round512(x3, x0, x1, x2, 11)
	x0, x1, x2, x3 = round512(x0, x1, x2, x3, 12)
	x1, x2, x3, x0 = round512(x1, x2, x3, x0, 13)
	x2, x3, x0, x1 = round512(x2, x3, x0, x1, 14)
	return x3, x0, x1, x2
}

func round512(x0, x1, x2, x3 Lane, i int) (Lane, Lane, Lane, Lane) {
	x1 = enc(x0, x1)
	x3 = enc(x2, x3)
	x0 = encLast(x0, Lane{})
	x2 = enc(encLast(x2, rc[i]), Lane{})
	return x0, x1, x2, x3
}

// Permute256 applies the Areion-256 permutation to a 256-bit state in place. Lane i is bytes [16i, 16i+16).
func Permute256(state *[Width256]byte) {
	x0, x1 := Areion256(Load(state[0:]), Load(state[16:]))
	x0.Store(state[0:])
	x1.Store(state[16:])
}

// Permute512 applies the Areion-512 permutation to a 512-bit state in place. Lane i is bytes [16i, 16i+16).
func Permute512(state *[Width512]byte) {
	x0, x1, x2, x3 := Areion512(Load(state[0:]), Load(state[16:]), Load(state[32:]), Load(state[48:]))
	x0.Store(state[0:])
	x1.Store(state[16:])
	x2.Store(state[32:])
	x3.Store(state[48:])
}

// rc holds the round constants: the fractional part of π in 32-bit words, four words per constant, each constant the
// little-endian encoding of w0<<96 | w1<<64 | w2<<32 | w3.
var rc = [rounds512]Lane{ //nolint:gochecknoglobals // constants
	{0x44, 0x73, 0x70, 0x03, 0x2e, 0x8a, 0x19, 0x13, 0xd3, 0x08, 0xa3, 0x85, 0x88, 0x6a, 0x3f, 0x24}, // 243f6a88 85a308d3 13198a2e 03707344
	{0x89, 0x6c, 0x4e, 0xec, 0x98, 0xfa, 0x2e, 0x08, 0xd0, 0x31, 0x9f, 0x29, 0x22, 0x38, 0x09, 0xa4}, // a4093822 299f31d0 082efa98 ec4e6c89
	{0x6c, 0x0c, 0xe9, 0x34, 0xcf, 0x66, 0x54, 0xbe, 0x77, 0x13, 0xd0, 0x38, 0xe6, 0x21, 0x28, 0x45}, // 452821e6 38d01377 be5466cf 34e90c6c
	{0x17, 0x09, 0x47, 0xb5, 0xb5, 0xd5, 0x84, 0x3f, 0xdd, 0x50, 0x7c, 0xc9, 0xb7, 0x29, 0xac, 0xc0}, // c0ac29b7 c97c50dd 3f84d5b5 b5470917
	{0xac, 0xb5, 0xdf, 0x98, 0xa6, 0x0b, 0x31, 0xd1, 0x1b, 0xfb, 0x79, 0x89, 0xd9, 0xd5, 0x16, 0x92}, // 9216d5d9 8979fb1b d1310ba6 98dfb5ac
	{0x96, 0x7e, 0x26, 0x6a, 0xed, 0xaf, 0xe1, 0xb8, 0xb7, 0xdf, 0x1a, 0xd0, 0xdb, 0x72, 0xfd, 0x2f}, // 2ffd72db d01adfb7 b8e1afed 6a267e96
	{0xf7, 0x6c, 0x91, 0xb3, 0x47, 0x99, 0xa1, 0x24, 0x99, 0x7f, 0x2c, 0xf1, 0x45, 0x90, 0x7c, 0xba}, // ba7c9045 f12c7f99 24a19947 b3916cf7
	{0x69, 0x4e, 0x57, 0x71, 0xd8, 0x20, 0x69, 0x63, 0x16, 0xfc, 0x8e, 0x85, 0xe2, 0xf2, 0x01, 0x08}, // 0801f2e2 858efc16 636920d8 71574e69
	{0x58, 0xb6, 0x8e, 0x72, 0x8f, 0x74, 0x95, 0x0d, 0x7e, 0x3d, 0x93, 0xf4, 0xa3, 0xfe, 0x58, 0xa4}, // a458fea3 f4933d7e 0d95748f 728eb658
	{0xb5, 0x59, 0x5a, 0xc2, 0x1d, 0xa4, 0x54, 0x7b, 0xee, 0x4a, 0x15, 0x82, 0x58, 0xcd, 0x8b, 0x71}, // 718bcd58 82154aee 7b54a41d c25a59b5
	{0xf0, 0x85, 0x60, 0x28, 0x23, 0xb0, 0xd1, 0xc5, 0x13, 0x60, 0xf2, 0x2a, 0x39, 0xd5, 0x30, 0x9c}, // 9c30d539 2af26013 c5d1b023 286085f0
	{0x0e, 0x18, 0x3a, 0x60, 0xb0, 0xdc, 0x79, 0x8e, 0xef, 0x38, 0xdb, 0xb8, 0x18, 0x79, 0x41, 0xca}, // ca417918 b8db38ef 8e79dcb0 603a180e
	{0x27, 0x4b, 0x31, 0xbd, 0xc1, 0x77, 0x15, 0xd7, 0x3e, 0x8a, 0x1e, 0xb0, 0x8b, 0x0e, 0x9e, 0x6c}, // 6c9e0e8b b01e8a3e d71577c1 bd314b27
	{0x94, 0xab, 0x55, 0xaa, 0xf3, 0x25, 0x55, 0xe6, 0x60, 0x5c, 0x60, 0x55, 0xda, 0x2f, 0xaf, 0x78}, // 78af2fda 55605c60 e65525f3 aa55ab94
	{0xb6, 0x10, 0xab, 0x2a, 0x6a, 0x39, 0xca, 0x55, 0x40, 0x14, 0xe8, 0x63, 0x62, 0x98, 0x48, 0x57}, // 57489862 63e81440 55ca396a 2aab10b6
}
