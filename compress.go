package areion

// DM256 is the Areion-256 Davies–Meyer compression function: the permutation of (x0, x1) XORed with its input.
func DM256(x0, x1 Lane) (Lane, Lane) {
	y0, y1 := Areion256(x0, x1)
	return y0.Xor(x0), y1.Xor(x1)
}

// DM512 is the Areion-512 Davies–Meyer compression function. It XORs the permutation of (x0, x1, x2, x3) with its
// input and truncates the 512-bit result to 256 bits: the high halves of the first two lanes followed by the low
// halves of the last two.
//
// The hash constructions call it with the message block in (x0, x1) and the chaining value in (x2, x3).
func DM512(x0, x1, x2, x3 Lane) (Lane, Lane) {
	y0, y1, y2, y3 := Areion512(x0, x1, x2, x3)
	return truncate(y0.Xor(x0), y1.Xor(x1), y2.Xor(x2), y3.Xor(x3))
}

// MMO512 is the Areion-512 Matyas–Meyer–Oseas compression function. It permutes the chaining value (h0, h1)
// together with the message block (m0, m1) and feeds the message forward into the lanes it occupied.
func MMO512(h0, h1, m0, m1 Lane) (Lane, Lane) {
	_, _, y2, y3 := Areion512(h0, h1, m0, m1)
	return y2.Xor(m0), y3.Xor(m1)
}

func truncate(y0, y1, y2, y3 Lane) (z0, z1 Lane) {
	copy(z0[:8], y0[8:])
	copy(z0[8:], y1[8:])
	copy(z1[:8], y2[:8])
	copy(z1[8:], y3[:8])
	return z0, z1
}
