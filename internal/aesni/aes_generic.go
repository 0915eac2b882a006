package aesni

// aesEncGeneric is an implementation of Algorithm 1 of the Simpira V2 paper.
//
// It is equivalent to the AESENC instruction from AES-NI, but uses a bitsliced, pure Go implementation.
func aesEncGeneric(state, key [16]byte) [16]byte {
	q := pack(state)
	q = sbox(q)
	q = shiftRows(q)
	q = mixColumns(q)
	return addRoundKey(unpack(q), key)
}

// aesEncLastGeneric is aesEncGeneric without MixColumns, equivalent to AESENCLAST.
func aesEncLastGeneric(state, key [16]byte) [16]byte {
	q := pack(state)
	q = sbox(q)
	q = shiftRows(q)
	return addRoundKey(unpack(q), key)
}

func addRoundKey(state, key [16]byte) [16]byte {
	for i := range 16 {
		state[i] ^= key[i]
	}
	return state
}

// pack transposes the 16 state bytes into eight 16-bit bit planes: bit i of q[k] is bit k of byte i.
func pack(s [16]byte) (q [8]uint16) {
	for i := range 16 {
		b := uint16(s[i])
		for k := range 8 {
			q[k] |= ((b >> k) & 1) << i
		}
	}
	return q
}

func unpack(q [8]uint16) (s [16]byte) {
	for i := range 16 {
		var b uint16
		for k := range 8 {
			b |= ((q[k] >> i) & 1) << k
		}
		s[i] = byte(b)
	}
	return s
}

func shiftRows(q [8]uint16) [8]uint16 {
	// Row r of column c lives at bit 4c+r, so ShiftRows is the same bit permutation of every plane.
	rot := func(in uint16) uint16 {
		return (in & 0x1111) |
			((in & 0x2220) >> 4) | ((in & 0x0002) << 12) |
			((in & 0x4400) >> 8) | ((in & 0x0044) << 8) |
			((in & 0x0888) << 4) | ((in & 0x8000) >> 12)
	}
	var r [8]uint16
	for i := range 8 {
		r[i] = rot(q[i])
	}
	return r
}

func mixColumns(q [8]uint16) [8]uint16 {
	// xtime: multiplication by 2 in GF(2^8).
	t := [8]uint16{q[7], q[0] ^ q[7], q[1], q[2] ^ q[7], q[3] ^ q[7], q[4], q[5], q[6]}

	// Rotations of the rows within each column nibble.
	rot1 := func(x uint16) uint16 { return (x>>1)&0x7777 | (x&0x1111)<<3 }
	rot2 := func(x uint16) uint16 { return (x>>2)&0x3333 | (x&0x3333)<<2 }
	rot3 := func(x uint16) uint16 { return (x>>3)&0x1111 | (x&0x7777)<<1 }

	var r [8]uint16
	for k := range 8 {
		r[k] = t[k] ^ rot1(t[k]^q[k]) ^ rot2(q[k]) ^ rot3(q[k])
	}
	return r
}

func mul(a, b [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := range 8 {
		for j := range 8 {
			p[i+j] ^= a[i] & b[j]
		}
	}
	return reduce(&p)
}

func sq(a [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := range 8 {
		p[2*i] = a[i]
	}
	return reduce(&p)
}

func reduce(p *[15]uint16) [8]uint16 {
	// Reduce modulo x^8 + x^4 + x^3 + x + 1
	for i := 14; i >= 8; i-- {
		v := p[i]
		p[i-4] ^= v
		p[i-5] ^= v
		p[i-7] ^= v
		p[i-8] ^= v
	}
	return [8]uint16(p[:8])
}

// inv computes a^254, the multiplicative inverse in GF(2^8) with 0 mapped to 0.
func inv(a [8]uint16) [8]uint16 {
	x := sq(a)
	res := x
	for range 6 {
		x = sq(x)
		res = mul(res, x)
	}
	return res
}

func affine(a [8]uint16) [8]uint16 {
	var s [8]uint16
	for i := range 8 {
		s[i] = a[i] ^ a[(i+4)%8] ^ a[(i+5)%8] ^ a[(i+6)%8] ^ a[(i+7)%8]
	}
	// XOR 0x63.
	s[0] = ^s[0]
	s[1] = ^s[1]
	s[5] = ^s[5]
	s[6] = ^s[6]
	return s
}

func sbox(u [8]uint16) [8]uint16 {
	return affine(inv(u))
}
