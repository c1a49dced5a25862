// Copyright (c) 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package edwards25519

// Scalar arithmetic modulo l = 2^252 + 27742317777372353535851937790883648493,
// the order of the edwards25519 base point. The representation is the
// classic ref10 one: a scalar is carried around as a plain 32-byte
// little-endian array, and reduction/multiply-add are implemented with the
// 21-bit-limb Barrett-style algorithm from the original ref10 code
// (sc_reduce / sc_muladd).

// Scalar represents an integer modulo l. The zero value is a valid zero
// scalar.
type Scalar struct {
	// s is the 32-byte little-endian value. It is the canonical
	// representative, 0 <= s < l, except after SetBytesWithClamping, which
	// stores the clamped value unreduced.
	s [32]byte
}

// ScalarZero is the additive identity.
func ScalarZero() *Scalar { return new(Scalar) }

// ScalarOne is the multiplicative identity.
func ScalarOne() *Scalar {
	var s Scalar
	s.s[0] = 1
	return &s
}

// Bytes returns the canonical little-endian 32-byte encoding of s.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, s.s[:])
	return out
}

// SetCanonicalBytes sets s = x and returns true, or leaves s unchanged and
// returns false if x is not the canonical encoding of a scalar in [0, l).
func (s *Scalar) SetCanonicalBytes(x []byte) (*Scalar, bool) {
	if len(x) != 32 {
		return s, false
	}
	if !isReduced(x) {
		return s, false
	}
	copy(s.s[:], x)
	return s, true
}

// SetUniformBytes reduces a 64-byte uniformly-random input modulo l, as used
// to turn a SHA-512 digest into a scalar (nonce and challenge derivation).
func (s *Scalar) SetUniformBytes(x []byte) *Scalar {
	if len(x) != 64 {
		panic("edwards25519: invalid SetUniformBytes input length")
	}
	var wide [64]byte
	copy(wide[:], x)
	scReduce(&s.s, &wide)
	return s
}

// SetBytesWithClamping applies the RFC 8032 / RFC 7748 clamping operation to
// a 32-byte seed-derived scalar (x[0] &= 248; x[31] &= 63; x[31] |= 64) and
// stores the result. The clamped value is not reduced mod l; it is used
// directly as the low-order-safe exponent for fixed-base multiplication.
func (s *Scalar) SetBytesWithClamping(x []byte) *Scalar {
	if len(x) != 32 {
		panic("edwards25519: invalid SetBytesWithClamping input length")
	}
	var tmp [32]byte
	copy(tmp[:], x)
	tmp[0] &= 248
	tmp[31] &= 63
	tmp[31] |= 64
	s.s = tmp
	return s
}

// Add sets s = a + b mod l.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	// a + b == a*1 + b, reuse muladd.
	return s.MultiplyAdd(a, ScalarOne(), b)
}

// Multiply sets s = a * b mod l.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	return s.MultiplyAdd(a, b, ScalarZero())
}

// MultiplyAdd sets s = a*b + c mod l.
func (s *Scalar) MultiplyAdd(a, b, c *Scalar) *Scalar {
	scMulAdd(&s.s, &a.s, &b.s, &c.s)
	return s
}

// Negate sets s = -a mod l.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	return s.MultiplyAdd(a, negOneScalar(), ScalarZero())
}

func negOneScalar() *Scalar {
	var s Scalar
	// l - 1 in little-endian byte form.
	s.s = [32]byte{
		0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
	return &s
}

// Invert sets s = 1/a mod l. a must be nonzero.
func (s *Scalar) Invert(a *Scalar) *Scalar {
	scInvert(&s.s, &a.s)
	return s
}

// Equal returns 1 if s == t, 0 otherwise, in constant time.
func (s *Scalar) Equal(t *Scalar) int {
	var eq byte = 1
	for i := 0; i < 32; i++ {
		eq &= boolToByte(s.s[i] == t.s[i])
	}
	return int(eq)
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	var acc byte
	for _, b := range s.s {
		acc |= b
	}
	return acc == 0
}

// scMinusOneBytes is l - 1, little-endian; used by isReduced.
var scMinusOneBytes = [32]byte{
	0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// isReduced reports whether the little-endian 32-byte x represents an
// integer strictly less than l, i.e. is a canonical scalar encoding.
func isReduced(x []byte) bool {
	for i := 31; i >= 0; i-- {
		if x[i] > scMinusOneBytes[i] {
			return false
		}
		if x[i] < scMinusOneBytes[i] {
			return true
		}
	}
	// x == l - 1, which is reduced.
	return true
}

// load3 and load4 read little-endian integers from a byte slice, as used by
// the ref10 scReduce/scMulAdd implementations below.
func load3(in []byte) int64 {
	var r int64
	r = int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	return r
}

func load4(in []byte) int64 {
	var r int64
	r = int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	r |= int64(in[3]) << 24
	return r
}

// scReduce reduces a 64-byte little-endian integer modulo l, producing a
// canonical 32-byte scalar. This is the public-domain ref10 sc_reduce
// algorithm (as found in SUPERCOP and reproduced, e.g., in
// golang.org/x/crypto/ed25519/internal/edwards25519), decomposing the input
// into 21-bit limbs and repeatedly subtracting multiples of l.
func scReduce(out *[32]byte, s *[64]byte) {
	s0 := 2097151 & load3(s[0:])
	s1 := 2097151 & (load4(s[2:]) >> 5)
	s2 := 2097151 & (load3(s[5:]) >> 2)
	s3 := 2097151 & (load4(s[7:]) >> 7)
	s4 := 2097151 & (load4(s[10:]) >> 4)
	s5 := 2097151 & (load3(s[13:]) >> 1)
	s6 := 2097151 & (load4(s[15:]) >> 6)
	s7 := 2097151 & (load3(s[18:]) >> 3)
	s8 := 2097151 & load3(s[21:])
	s9 := 2097151 & (load4(s[23:]) >> 5)
	s10 := 2097151 & (load3(s[26:]) >> 2)
	s11 := 2097151 & (load4(s[28:]) >> 7)
	s12 := 2097151 & (load4(s[31:]) >> 4)
	s13 := 2097151 & (load3(s[34:]) >> 1)
	s14 := 2097151 & (load4(s[36:]) >> 6)
	s15 := 2097151 & (load3(s[39:]) >> 3)
	s16 := 2097151 & load3(s[42:])
	s17 := 2097151 & (load4(s[44:]) >> 5)
	s18 := 2097151 & (load3(s[47:]) >> 2)
	s19 := 2097151 & (load4(s[49:]) >> 7)
	s20 := 2097151 & (load4(s[52:]) >> 4)
	s21 := 2097151 & (load3(s[55:]) >> 1)
	s22 := 2097151 & (load4(s[57:]) >> 6)
	s23 := (load4(s[60:]) >> 3)

	carry := make([]int64, 17)

	s11 += s23 * 666643
	s12 += s23 * 470296
	s13 += s23 * 654183
	s14 -= s23 * 997805
	s15 += s23 * 136657
	s16 -= s23 * 683901

	s10 += s22 * 666643
	s11 += s22 * 470296
	s12 += s22 * 654183
	s13 -= s22 * 997805
	s14 += s22 * 136657
	s15 -= s22 * 683901

	s9 += s21 * 666643
	s10 += s21 * 470296
	s11 += s21 * 654183
	s12 -= s21 * 997805
	s13 += s21 * 136657
	s14 -= s21 * 683901

	s8 += s20 * 666643
	s9 += s20 * 470296
	s10 += s20 * 654183
	s11 -= s20 * 997805
	s12 += s20 * 136657
	s13 -= s20 * 683901

	s7 += s19 * 666643
	s8 += s19 * 470296
	s9 += s19 * 654183
	s10 -= s19 * 997805
	s11 += s19 * 136657
	s12 -= s19 * 683901

	s6 += s18 * 666643
	s7 += s18 * 470296
	s8 += s18 * 654183
	s9 -= s18 * 997805
	s10 += s18 * 136657
	s11 -= s18 * 683901

	carry[6] = (s6 + (1 << 20)) >> 21
	s7 += carry[6]
	s6 -= carry[6] << 21
	carry[8] = (s8 + (1 << 20)) >> 21
	s9 += carry[8]
	s8 -= carry[8] << 21
	carry[10] = (s10 + (1 << 20)) >> 21
	s11 += carry[10]
	s10 -= carry[10] << 21
	carry[12] = (s12 + (1 << 20)) >> 21
	s13 += carry[12]
	s12 -= carry[12] << 21
	carry[14] = (s14 + (1 << 20)) >> 21
	s15 += carry[14]
	s14 -= carry[14] << 21
	carry[16] = (s16 + (1 << 20)) >> 21
	s17 += carry[16]
	s16 -= carry[16] << 21

	carry[7] = (s7 + (1 << 20)) >> 21
	s8 += carry[7]
	s7 -= carry[7] << 21
	carry[9] = (s9 + (1 << 20)) >> 21
	s10 += carry[9]
	s9 -= carry[9] << 21
	carry[11] = (s11 + (1 << 20)) >> 21
	s12 += carry[11]
	s11 -= carry[11] << 21
	carry[13] = (s13 + (1 << 20)) >> 21
	s14 += carry[13]
	s13 -= carry[13] << 21
	carry[15] = (s15 + (1 << 20)) >> 21
	s16 += carry[15]
	s15 -= carry[15] << 21

	s5 += s17 * 666643
	s6 += s17 * 470296
	s7 += s17 * 654183
	s8 -= s17 * 997805
	s9 += s17 * 136657
	s10 -= s17 * 683901

	s4 += s16 * 666643
	s5 += s16 * 470296
	s6 += s16 * 654183
	s7 -= s16 * 997805
	s8 += s16 * 136657
	s9 -= s16 * 683901

	s3 += s15 * 666643
	s4 += s15 * 470296
	s5 += s15 * 654183
	s6 -= s15 * 997805
	s7 += s15 * 136657
	s8 -= s15 * 683901

	s2 += s14 * 666643
	s3 += s14 * 470296
	s4 += s14 * 654183
	s5 -= s14 * 997805
	s6 += s14 * 136657
	s7 -= s14 * 683901

	s1 += s13 * 666643
	s2 += s13 * 470296
	s3 += s13 * 654183
	s4 -= s13 * 997805
	s5 += s13 * 136657
	s6 -= s13 * 683901

	s0 += s12 * 666643
	s1 += s12 * 470296
	s2 += s12 * 654183
	s3 -= s12 * 997805
	s4 += s12 * 136657
	s5 -= s12 * 683901
	s12 = 0

	carry[0] = (s0 + (1 << 20)) >> 21
	s1 += carry[0]
	s0 -= carry[0] << 21
	carry[2] = (s2 + (1 << 20)) >> 21
	s3 += carry[2]
	s2 -= carry[2] << 21
	carry[4] = (s4 + (1 << 20)) >> 21
	s5 += carry[4]
	s4 -= carry[4] << 21
	carry[6] = (s6 + (1 << 20)) >> 21
	s7 += carry[6]
	s6 -= carry[6] << 21
	carry[8] = (s8 + (1 << 20)) >> 21
	s9 += carry[8]
	s8 -= carry[8] << 21
	carry[10] = (s10 + (1 << 20)) >> 21
	s11 += carry[10]
	s10 -= carry[10] << 21

	carry[1] = (s1 + (1 << 20)) >> 21
	s2 += carry[1]
	s1 -= carry[1] << 21
	carry[3] = (s3 + (1 << 20)) >> 21
	s4 += carry[3]
	s3 -= carry[3] << 21
	carry[5] = (s5 + (1 << 20)) >> 21
	s6 += carry[5]
	s5 -= carry[5] << 21
	carry[7] = (s7 + (1 << 20)) >> 21
	s8 += carry[7]
	s7 -= carry[7] << 21
	carry[9] = (s9 + (1 << 20)) >> 21
	s10 += carry[9]
	s9 -= carry[9] << 21
	carry[11] = (s11 + (1 << 20)) >> 21
	s12 += carry[11]
	s11 -= carry[11] << 21

	s0 += s12 * 666643
	s1 += s12 * 470296
	s2 += s12 * 654183
	s3 -= s12 * 997805
	s4 += s12 * 136657
	s5 -= s12 * 683901
	s12 = 0

	carry[0] = s0 >> 21
	s1 += carry[0]
	s0 -= carry[0] << 21
	carry[1] = s1 >> 21
	s2 += carry[1]
	s1 -= carry[1] << 21
	carry[2] = s2 >> 21
	s3 += carry[2]
	s2 -= carry[2] << 21
	carry[3] = s3 >> 21
	s4 += carry[3]
	s3 -= carry[3] << 21
	carry[4] = s4 >> 21
	s5 += carry[4]
	s4 -= carry[4] << 21
	carry[5] = s5 >> 21
	s6 += carry[5]
	s5 -= carry[5] << 21
	carry[6] = s6 >> 21
	s7 += carry[6]
	s6 -= carry[6] << 21
	carry[7] = s7 >> 21
	s8 += carry[7]
	s7 -= carry[7] << 21
	carry[8] = s8 >> 21
	s9 += carry[8]
	s8 -= carry[8] << 21
	carry[9] = s9 >> 21
	s10 += carry[9]
	s9 -= carry[9] << 21
	carry[10] = s10 >> 21
	s11 += carry[10]
	s10 -= carry[10] << 21
	carry[11] = s11 >> 21
	s12 += carry[11]
	s11 -= carry[11] << 21

	s0 += s12 * 666643
	s1 += s12 * 470296
	s2 += s12 * 654183
	s3 -= s12 * 997805
	s4 += s12 * 136657
	s5 -= s12 * 683901

	carry[0] = s0 >> 21
	s1 += carry[0]
	s0 -= carry[0] << 21
	carry[1] = s1 >> 21
	s2 += carry[1]
	s1 -= carry[1] << 21
	carry[2] = s2 >> 21
	s3 += carry[2]
	s2 -= carry[2] << 21
	carry[3] = s3 >> 21
	s4 += carry[3]
	s3 -= carry[3] << 21
	carry[4] = s4 >> 21
	s5 += carry[4]
	s4 -= carry[4] << 21
	carry[5] = s5 >> 21
	s6 += carry[5]
	s5 -= carry[5] << 21
	carry[6] = s6 >> 21
	s7 += carry[6]
	s6 -= carry[6] << 21
	carry[7] = s7 >> 21
	s8 += carry[7]
	s7 -= carry[7] << 21
	carry[8] = s8 >> 21
	s9 += carry[8]
	s8 -= carry[8] << 21
	carry[9] = s9 >> 21
	s10 += carry[9]
	s9 -= carry[9] << 21
	carry[10] = s10 >> 21
	s11 += carry[10]
	s10 -= carry[10] << 21

	out[0] = byte(s0 >> 0)
	out[1] = byte(s0 >> 8)
	out[2] = byte((s0 >> 16) | (s1 << 5))
	out[3] = byte(s1 >> 3)
	out[4] = byte(s1 >> 11)
	out[5] = byte((s1 >> 19) | (s2 << 2))
	out[6] = byte(s2 >> 6)
	out[7] = byte((s2 >> 14) | (s3 << 7))
	out[8] = byte(s3 >> 1)
	out[9] = byte(s3 >> 9)
	out[10] = byte((s3 >> 17) | (s4 << 4))
	out[11] = byte(s4 >> 4)
	out[12] = byte(s4 >> 12)
	out[13] = byte((s4 >> 20) | (s5 << 1))
	out[14] = byte(s5 >> 7)
	out[15] = byte((s5 >> 15) | (s6 << 6))
	out[16] = byte(s6 >> 2)
	out[17] = byte(s6 >> 10)
	out[18] = byte((s6 >> 18) | (s7 << 3))
	out[19] = byte(s7 >> 5)
	out[20] = byte(s7 >> 13)
	out[21] = byte(s8 >> 0)
	out[22] = byte(s8 >> 8)
	out[23] = byte((s8 >> 16) | (s9 << 5))
	out[24] = byte(s9 >> 3)
	out[25] = byte(s9 >> 11)
	out[26] = byte((s9 >> 19) | (s10 << 2))
	out[27] = byte(s10 >> 6)
	out[28] = byte((s10 >> 14) | (s11 << 7))
	out[29] = byte(s11 >> 1)
	out[30] = byte(s11 >> 9)
	out[31] = byte(s11 >> 17)
}

// scMulAdd computes out = (a*b + c) mod l, using the same 21-bit-limb ref10
// approach as scReduce above.
func scMulAdd(out, a, b, c *[32]byte) {
	a0 := 2097151 & load3(a[0:])
	a1 := 2097151 & (load4(a[2:]) >> 5)
	a2 := 2097151 & (load3(a[5:]) >> 2)
	a3 := 2097151 & (load4(a[7:]) >> 7)
	a4 := 2097151 & (load4(a[10:]) >> 4)
	a5 := 2097151 & (load3(a[13:]) >> 1)
	a6 := 2097151 & (load4(a[15:]) >> 6)
	a7 := 2097151 & (load3(a[18:]) >> 3)
	a8 := 2097151 & load3(a[21:])
	a9 := 2097151 & (load4(a[23:]) >> 5)
	a10 := 2097151 & (load3(a[26:]) >> 2)
	a11 := (load4(a[28:]) >> 7)

	b0 := 2097151 & load3(b[0:])
	b1 := 2097151 & (load4(b[2:]) >> 5)
	b2 := 2097151 & (load3(b[5:]) >> 2)
	b3 := 2097151 & (load4(b[7:]) >> 7)
	b4 := 2097151 & (load4(b[10:]) >> 4)
	b5 := 2097151 & (load3(b[13:]) >> 1)
	b6 := 2097151 & (load4(b[15:]) >> 6)
	b7 := 2097151 & (load3(b[18:]) >> 3)
	b8 := 2097151 & load3(b[21:])
	b9 := 2097151 & (load4(b[23:]) >> 5)
	b10 := 2097151 & (load3(b[26:]) >> 2)
	b11 := (load4(b[28:]) >> 7)

	c0 := 2097151 & load3(c[0:])
	c1 := 2097151 & (load4(c[2:]) >> 5)
	c2 := 2097151 & (load3(c[5:]) >> 2)
	c3 := 2097151 & (load4(c[7:]) >> 7)
	c4 := 2097151 & (load4(c[10:]) >> 4)
	c5 := 2097151 & (load3(c[13:]) >> 1)
	c6 := 2097151 & (load4(c[15:]) >> 6)
	c7 := 2097151 & (load3(c[18:]) >> 3)
	c8 := 2097151 & load3(c[21:])
	c9 := 2097151 & (load4(c[23:]) >> 5)
	c10 := 2097151 & (load3(c[26:]) >> 2)
	c11 := (load4(c[28:]) >> 7)

	var s [24]int64

	s[0] = c0 + a0*b0
	s[1] = c1 + a0*b1 + a1*b0
	s[2] = c2 + a0*b2 + a1*b1 + a2*b0
	s[3] = c3 + a0*b3 + a1*b2 + a2*b1 + a3*b0
	s[4] = c4 + a0*b4 + a1*b3 + a2*b2 + a3*b1 + a4*b0
	s[5] = c5 + a0*b5 + a1*b4 + a2*b3 + a3*b2 + a4*b1 + a5*b0
	s[6] = c6 + a0*b6 + a1*b5 + a2*b4 + a3*b3 + a4*b2 + a5*b1 + a6*b0
	s[7] = c7 + a0*b7 + a1*b6 + a2*b5 + a3*b4 + a4*b3 + a5*b2 + a6*b1 + a7*b0
	s[8] = c8 + a0*b8 + a1*b7 + a2*b6 + a3*b5 + a4*b4 + a5*b3 + a6*b2 + a7*b1 + a8*b0
	s[9] = c9 + a0*b9 + a1*b8 + a2*b7 + a3*b6 + a4*b5 + a5*b4 + a6*b3 + a7*b2 + a8*b1 + a9*b0
	s[10] = c10 + a0*b10 + a1*b9 + a2*b8 + a3*b7 + a4*b6 + a5*b5 + a6*b4 + a7*b3 + a8*b2 + a9*b1 + a10*b0
	s[11] = c11 + a0*b11 + a1*b10 + a2*b9 + a3*b8 + a4*b7 + a5*b6 + a6*b5 + a7*b4 + a8*b3 + a9*b2 + a10*b1 + a11*b0
	s[12] = a1*b11 + a2*b10 + a3*b9 + a4*b8 + a5*b7 + a6*b6 + a7*b5 + a8*b4 + a9*b3 + a10*b2 + a11*b1
	s[13] = a2*b11 + a3*b10 + a4*b9 + a5*b8 + a6*b7 + a7*b6 + a8*b5 + a9*b4 + a10*b3 + a11*b2
	s[14] = a3*b11 + a4*b10 + a5*b9 + a6*b8 + a7*b7 + a8*b6 + a9*b5 + a10*b4 + a11*b3
	s[15] = a4*b11 + a5*b10 + a6*b9 + a7*b8 + a8*b7 + a9*b6 + a10*b5 + a11*b4
	s[16] = a5*b11 + a6*b10 + a7*b9 + a8*b8 + a9*b7 + a10*b6 + a11*b5
	s[17] = a6*b11 + a7*b10 + a8*b9 + a9*b8 + a10*b7 + a11*b6
	s[18] = a7*b11 + a8*b10 + a9*b9 + a10*b8 + a11*b7
	s[19] = a8*b11 + a9*b10 + a10*b9 + a11*b8
	s[20] = a9*b11 + a10*b10 + a11*b9
	s[21] = a10*b11 + a11*b10
	s[22] = a11 * b11
	s[23] = 0

	carry := make([]int64, 24)

	carry[0] = (s[0] + (1 << 20)) >> 21
	s[1] += carry[0]
	s[0] -= carry[0] << 21
	carry[2] = (s[2] + (1 << 20)) >> 21
	s[3] += carry[2]
	s[2] -= carry[2] << 21
	carry[4] = (s[4] + (1 << 20)) >> 21
	s[5] += carry[4]
	s[4] -= carry[4] << 21
	carry[6] = (s[6] + (1 << 20)) >> 21
	s[7] += carry[6]
	s[6] -= carry[6] << 21
	carry[8] = (s[8] + (1 << 20)) >> 21
	s[9] += carry[8]
	s[8] -= carry[8] << 21
	carry[10] = (s[10] + (1 << 20)) >> 21
	s[11] += carry[10]
	s[10] -= carry[10] << 21
	carry[12] = (s[12] + (1 << 20)) >> 21
	s[13] += carry[12]
	s[12] -= carry[12] << 21
	carry[14] = (s[14] + (1 << 20)) >> 21
	s[15] += carry[14]
	s[14] -= carry[14] << 21
	carry[16] = (s[16] + (1 << 20)) >> 21
	s[17] += carry[16]
	s[16] -= carry[16] << 21
	carry[18] = (s[18] + (1 << 20)) >> 21
	s[19] += carry[18]
	s[18] -= carry[18] << 21
	carry[20] = (s[20] + (1 << 20)) >> 21
	s[21] += carry[20]
	s[20] -= carry[20] << 21
	carry[22] = (s[22] + (1 << 20)) >> 21
	s[23] += carry[22]
	s[22] -= carry[22] << 21

	carry[1] = (s[1] + (1 << 20)) >> 21
	s[2] += carry[1]
	s[1] -= carry[1] << 21
	carry[3] = (s[3] + (1 << 20)) >> 21
	s[4] += carry[3]
	s[3] -= carry[3] << 21
	carry[5] = (s[5] + (1 << 20)) >> 21
	s[6] += carry[5]
	s[5] -= carry[5] << 21
	carry[7] = (s[7] + (1 << 20)) >> 21
	s[8] += carry[7]
	s[7] -= carry[7] << 21
	carry[9] = (s[9] + (1 << 20)) >> 21
	s[10] += carry[9]
	s[9] -= carry[9] << 21
	carry[11] = (s[11] + (1 << 20)) >> 21
	s[12] += carry[11]
	s[11] -= carry[11] << 21
	carry[13] = (s[13] + (1 << 20)) >> 21
	s[14] += carry[13]
	s[13] -= carry[13] << 21
	carry[15] = (s[15] + (1 << 20)) >> 21
	s[16] += carry[15]
	s[15] -= carry[15] << 21
	carry[17] = (s[17] + (1 << 20)) >> 21
	s[18] += carry[17]
	s[17] -= carry[17] << 21
	carry[19] = (s[19] + (1 << 20)) >> 21
	s[20] += carry[19]
	s[19] -= carry[19] << 21
	carry[21] = (s[21] + (1 << 20)) >> 21
	s[22] += carry[21]
	s[21] -= carry[21] << 21

	s[11] += s[23] * 666643
	s[12] += s[23] * 470296
	s[13] += s[23] * 654183
	s[14] -= s[23] * 997805
	s[15] += s[23] * 136657
	s[16] -= s[23] * 683901

	s[10] += s[22] * 666643
	s[11] += s[22] * 470296
	s[12] += s[22] * 654183
	s[13] -= s[22] * 997805
	s[14] += s[22] * 136657
	s[15] -= s[22] * 683901

	s[9] += s[21] * 666643
	s[10] += s[21] * 470296
	s[11] += s[21] * 654183
	s[12] -= s[21] * 997805
	s[13] += s[21] * 136657
	s[14] -= s[21] * 683901

	s[8] += s[20] * 666643
	s[9] += s[20] * 470296
	s[10] += s[20] * 654183
	s[11] -= s[20] * 997805
	s[12] += s[20] * 136657
	s[13] -= s[20] * 683901

	s[7] += s[19] * 666643
	s[8] += s[19] * 470296
	s[9] += s[19] * 654183
	s[10] -= s[19] * 997805
	s[11] += s[19] * 136657
	s[12] -= s[19] * 683901

	s[6] += s[18] * 666643
	s[7] += s[18] * 470296
	s[8] += s[18] * 654183
	s[9] -= s[18] * 997805
	s[10] += s[18] * 136657
	s[11] -= s[18] * 683901

	carry[6] = (s[6] + (1 << 20)) >> 21
	s[7] += carry[6]
	s[6] -= carry[6] << 21
	carry[8] = (s[8] + (1 << 20)) >> 21
	s[9] += carry[8]
	s[8] -= carry[8] << 21
	carry[10] = (s[10] + (1 << 20)) >> 21
	s[11] += carry[10]
	s[10] -= carry[10] << 21
	carry[12] = (s[12] + (1 << 20)) >> 21
	s[13] += carry[12]
	s[12] -= carry[12] << 21
	carry[14] = (s[14] + (1 << 20)) >> 21
	s[15] += carry[14]
	s[14] -= carry[14] << 21
	carry[16] = (s[16] + (1 << 20)) >> 21
	s[17] += carry[16]
	s[16] -= carry[16] << 21

	carry[7] = (s[7] + (1 << 20)) >> 21
	s[8] += carry[7]
	s[7] -= carry[7] << 21
	carry[9] = (s[9] + (1 << 20)) >> 21
	s[10] += carry[9]
	s[9] -= carry[9] << 21
	carry[11] = (s[11] + (1 << 20)) >> 21
	s[12] += carry[11]
	s[11] -= carry[11] << 21
	carry[13] = (s[13] + (1 << 20)) >> 21
	s[14] += carry[13]
	s[13] -= carry[13] << 21
	carry[15] = (s[15] + (1 << 20)) >> 21
	s[16] += carry[15]
	s[15] -= carry[15] << 21

	s[5] += s[17] * 666643
	s[6] += s[17] * 470296
	s[7] += s[17] * 654183
	s[8] -= s[17] * 997805
	s[9] += s[17] * 136657
	s[10] -= s[17] * 683901

	s[4] += s[16] * 666643
	s[5] += s[16] * 470296
	s[6] += s[16] * 654183
	s[7] -= s[16] * 997805
	s[8] += s[16] * 136657
	s[9] -= s[16] * 683901

	s[3] += s[15] * 666643
	s[4] += s[15] * 470296
	s[5] += s[15] * 654183
	s[6] -= s[15] * 997805
	s[7] += s[15] * 136657
	s[8] -= s[15] * 683901

	s[2] += s[14] * 666643
	s[3] += s[14] * 470296
	s[4] += s[14] * 654183
	s[5] -= s[14] * 997805
	s[6] += s[14] * 136657
	s[7] -= s[14] * 683901

	s[1] += s[13] * 666643
	s[2] += s[13] * 470296
	s[3] += s[13] * 654183
	s[4] -= s[13] * 997805
	s[5] += s[13] * 136657
	s[6] -= s[13] * 683901

	s[0] += s[12] * 666643
	s[1] += s[12] * 470296
	s[2] += s[12] * 654183
	s[3] -= s[12] * 997805
	s[4] += s[12] * 136657
	s[5] -= s[12] * 683901
	s[12] = 0

	carry[0] = (s[0] + (1 << 20)) >> 21
	s[1] += carry[0]
	s[0] -= carry[0] << 21
	carry[2] = (s[2] + (1 << 20)) >> 21
	s[3] += carry[2]
	s[2] -= carry[2] << 21
	carry[4] = (s[4] + (1 << 20)) >> 21
	s[5] += carry[4]
	s[4] -= carry[4] << 21
	carry[6] = (s[6] + (1 << 20)) >> 21
	s[7] += carry[6]
	s[6] -= carry[6] << 21
	carry[8] = (s[8] + (1 << 20)) >> 21
	s[9] += carry[8]
	s[8] -= carry[8] << 21
	carry[10] = (s[10] + (1 << 20)) >> 21
	s[11] += carry[10]
	s[10] -= carry[10] << 21

	carry[1] = (s[1] + (1 << 20)) >> 21
	s[2] += carry[1]
	s[1] -= carry[1] << 21
	carry[3] = (s[3] + (1 << 20)) >> 21
	s[4] += carry[3]
	s[3] -= carry[3] << 21
	carry[5] = (s[5] + (1 << 20)) >> 21
	s[6] += carry[5]
	s[5] -= carry[5] << 21
	carry[7] = (s[7] + (1 << 20)) >> 21
	s[8] += carry[7]
	s[7] -= carry[7] << 21
	carry[9] = (s[9] + (1 << 20)) >> 21
	s[10] += carry[9]
	s[9] -= carry[9] << 21
	carry[11] = (s[11] + (1 << 20)) >> 21
	s[12] += carry[11]
	s[11] -= carry[11] << 21

	s[0] += s[12] * 666643
	s[1] += s[12] * 470296
	s[2] += s[12] * 654183
	s[3] -= s[12] * 997805
	s[4] += s[12] * 136657
	s[5] -= s[12] * 683901
	s[12] = 0

	carry[0] = s[0] >> 21
	s[1] += carry[0]
	s[0] -= carry[0] << 21
	carry[1] = s[1] >> 21
	s[2] += carry[1]
	s[1] -= carry[1] << 21
	carry[2] = s[2] >> 21
	s[3] += carry[2]
	s[2] -= carry[2] << 21
	carry[3] = s[3] >> 21
	s[4] += carry[3]
	s[3] -= carry[3] << 21
	carry[4] = s[4] >> 21
	s[5] += carry[4]
	s[4] -= carry[4] << 21
	carry[5] = s[5] >> 21
	s[6] += carry[5]
	s[5] -= carry[5] << 21
	carry[6] = s[6] >> 21
	s[7] += carry[6]
	s[6] -= carry[6] << 21
	carry[7] = s[7] >> 21
	s[8] += carry[7]
	s[7] -= carry[7] << 21
	carry[8] = s[8] >> 21
	s[9] += carry[8]
	s[8] -= carry[8] << 21
	carry[9] = s[9] >> 21
	s[10] += carry[9]
	s[9] -= carry[9] << 21
	carry[10] = s[10] >> 21
	s[11] += carry[10]
	s[10] -= carry[10] << 21
	carry[11] = s[11] >> 21
	s[12] += carry[11]
	s[11] -= carry[11] << 21

	s[0] += s[12] * 666643
	s[1] += s[12] * 470296
	s[2] += s[12] * 654183
	s[3] -= s[12] * 997805
	s[4] += s[12] * 136657
	s[5] -= s[12] * 683901

	carry[0] = s[0] >> 21
	s[1] += carry[0]
	s[0] -= carry[0] << 21
	carry[1] = s[1] >> 21
	s[2] += carry[1]
	s[1] -= carry[1] << 21
	carry[2] = s[2] >> 21
	s[3] += carry[2]
	s[2] -= carry[2] << 21
	carry[3] = s[3] >> 21
	s[4] += carry[3]
	s[3] -= carry[3] << 21
	carry[4] = s[4] >> 21
	s[5] += carry[4]
	s[4] -= carry[4] << 21
	carry[5] = s[5] >> 21
	s[6] += carry[5]
	s[5] -= carry[5] << 21
	carry[6] = s[6] >> 21
	s[7] += carry[6]
	s[6] -= carry[6] << 21
	carry[7] = s[7] >> 21
	s[8] += carry[7]
	s[7] -= carry[7] << 21
	carry[8] = s[8] >> 21
	s[9] += carry[8]
	s[8] -= carry[8] << 21
	carry[9] = s[9] >> 21
	s[10] += carry[9]
	s[9] -= carry[9] << 21
	carry[10] = s[10] >> 21
	s[11] += carry[10]
	s[10] -= carry[10] << 21

	out[0] = byte(s[0] >> 0)
	out[1] = byte(s[0] >> 8)
	out[2] = byte((s[0] >> 16) | (s[1] << 5))
	out[3] = byte(s[1] >> 3)
	out[4] = byte(s[1] >> 11)
	out[5] = byte((s[1] >> 19) | (s[2] << 2))
	out[6] = byte(s[2] >> 6)
	out[7] = byte((s[2] >> 14) | (s[3] << 7))
	out[8] = byte(s[3] >> 1)
	out[9] = byte(s[3] >> 9)
	out[10] = byte((s[3] >> 17) | (s[4] << 4))
	out[11] = byte(s[4] >> 4)
	out[12] = byte(s[4] >> 12)
	out[13] = byte((s[4] >> 20) | (s[5] << 1))
	out[14] = byte(s[5] >> 7)
	out[15] = byte((s[5] >> 15) | (s[6] << 6))
	out[16] = byte(s[6] >> 2)
	out[17] = byte(s[6] >> 10)
	out[18] = byte((s[6] >> 18) | (s[7] << 3))
	out[19] = byte(s[7] >> 5)
	out[20] = byte(s[7] >> 13)
	out[21] = byte(s[8] >> 0)
	out[22] = byte(s[8] >> 8)
	out[23] = byte((s[8] >> 16) | (s[9] << 5))
	out[24] = byte(s[9] >> 3)
	out[25] = byte(s[9] >> 11)
	out[26] = byte((s[9] >> 19) | (s[10] << 2))
	out[27] = byte(s[10] >> 6)
	out[28] = byte((s[10] >> 14) | (s[11] << 7))
	out[29] = byte(s[11] >> 1)
	out[30] = byte(s[11] >> 9)
	out[31] = byte(s[11] >> 17)
}

// scInvert computes out = a^-1 mod l via Fermat's little theorem, raising a
// to l-2 with a fixed square-and-multiply addition chain over the bits of
// l-2. l is prime, so this always succeeds for a != 0 mod l.
func scInvert(out, a *[32]byte) {
	// l - 2 in little-endian byte form.
	exp := [32]byte{
		0xeb, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}

	one := [32]byte{1}
	result := one
	base := *a

	for byteIdx := 0; byteIdx < 32; byteIdx++ {
		b := exp[byteIdx]
		for bit := 0; bit < 8; bit++ {
			if (b>>uint(bit))&1 == 1 {
				var tmp [32]byte
				scMulAdd(&tmp, &result, &base, &[32]byte{})
				result = tmp
			}
			var sq [32]byte
			scMulAdd(&sq, &base, &base, &[32]byte{})
			base = sq
		}
	}
	*out = result
}
