// Package field implements arithmetic in GF(2^255-19), the base field of
// Curve25519 and edwards25519.
//
// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package field

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
)

// Element represents an element of the field GF(2^255-19). Note that this
// is not a cryptographically secure group, and should only be used to
// interact with point coordinates.
//
// All methods are allowed to alias their arguments and receiver, following
// the convention of math/big.Int. The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l0 + t.l1*2^51 + t.l2*2^102 + t.l3*2^153 + t.l4*2^204
	//
	// Between operations, all limbs are expected to be lower than 2^51, with
	// the exception of l0, which can be up to 2^51 + 2^13*19 right after a
	// lazy carry propagation.
	l0 uint64
	l1 uint64
	l2 uint64
	l3 uint64
	l4 uint64
}

const maskLow51Bits uint64 = (1 << 51) - 1

var (
	zero     = &Element{0, 0, 0, 0, 0}
	one      = &Element{1, 0, 0, 0, 0}
	minusOne = new(Element).Negate(one)
)

// Zero sets v = 0 and returns v.
func (v *Element) Zero() *Element {
	*v = *zero
	return v
}

// One sets v = 1 and returns v.
func (v *Element) One() *Element {
	*v = *one
	return v
}

// carryPropagate1 and carryPropagate2 bring the limbs below 52, 51, 51, 51,
// 51 bits. They are split because of inliner heuristics and MUST be called
// back to back.
func (v *Element) carryPropagate1() *Element {
	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	return v
}

func (v *Element) carryPropagate2() *Element {
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l0 += (v.l4 >> 51) * 19
	v.l4 &= maskLow51Bits
	return v
}

// reduce brings v to a fully carried (but not necessarily canonical) form.
func (v *Element) reduce() *Element {
	v.carryPropagate1().carryPropagate2()

	// v is now below 2^255 + 2^13*19, but we want it below 2^255 - 19.
	//
	// If v >= 2^255 - 19, then v + 19 overflows 2^255 - 1, which produces a
	// carry. c is 0 if v < 2^255 - 19 and 1 otherwise.
	c := (v.l0 + 19) >> 51
	c = (v.l1 + c) >> 51
	c = (v.l2 + c) >> 51
	c = (v.l3 + c) >> 51
	c = (v.l4 + c) >> 51

	v.l0 += 19 * c

	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l4 &= maskLow51Bits

	return v
}

// Add sets v = a + b and returns v.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	return v.carryPropagate1().carryPropagate2()
}

// Subtract sets v = a - b and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	// Add 2*p to guarantee the subtraction does not underflow before
	// removing b, whose limbs can be as large as 2^51 + 2^13*19.
	v.l0 = (a.l0 + 0xFFFFFFFFFFFDA) - b.l0
	v.l1 = (a.l1 + 0xFFFFFFFFFFFFE) - b.l1
	v.l2 = (a.l2 + 0xFFFFFFFFFFFFE) - b.l2
	v.l3 = (a.l3 + 0xFFFFFFFFFFFFE) - b.l3
	v.l4 = (a.l4 + 0xFFFFFFFFFFFFE) - b.l4
	return v.carryPropagate1().carryPropagate2()
}

// Negate sets v = -a and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(zero, a)
}

// Invert sets v = 1/z mod p and returns v. If z == 0, v is set to zero.
func (v *Element) Invert(z *Element) *Element {
	// Exponentiation by p-2 via the standard 254-squarings, 11-multiplies
	// addition chain.
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)
	t.Square(&z2)
	t.Square(&t)
	z9.Multiply(&t, z)
	z11.Multiply(&z9, &z2)
	t.Square(&z11)
	z2_5_0.Multiply(&t, &z9)

	t.Square(&z2_5_0)
	for i := 0; i < 4; i++ {
		t.Square(&t)
	}
	z2_10_0.Multiply(&t, &z2_5_0)

	t.Square(&z2_10_0)
	for i := 0; i < 9; i++ {
		t.Square(&t)
	}
	z2_20_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_20_0)
	for i := 0; i < 19; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_20_0)

	t.Square(&t)
	for i := 0; i < 9; i++ {
		t.Square(&t)
	}
	z2_50_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_50_0)
	for i := 0; i < 49; i++ {
		t.Square(&t)
	}
	z2_100_0.Multiply(&t, &z2_50_0)

	t.Square(&z2_100_0)
	for i := 0; i < 99; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_100_0)

	t.Square(&t)
	for i := 0; i < 49; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_50_0)

	t.Square(&t)
	t.Square(&t)
	t.Square(&t)
	t.Square(&t)
	t.Square(&t)

	return v.Multiply(&t, &z11)
}

// PowP58 sets v = z^((p-5)/8) and returns v. This is the exponent used to
// recover a square root candidate during point decompression.
func (v *Element) PowP58(z *Element) *Element {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)
	t.Square(&z2)
	t.Square(&t)
	z9.Multiply(&t, z)
	z11.Multiply(&z9, &z2)
	t.Square(&z11)
	z2_5_0.Multiply(&t, &z9)

	t.Square(&z2_5_0)
	for i := 0; i < 4; i++ {
		t.Square(&t)
	}
	z2_10_0.Multiply(&t, &z2_5_0)

	t.Square(&z2_10_0)
	for i := 0; i < 9; i++ {
		t.Square(&t)
	}
	z2_20_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_20_0)
	for i := 0; i < 19; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_20_0)

	t.Square(&t)
	for i := 0; i < 9; i++ {
		t.Square(&t)
	}
	z2_50_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_50_0)
	for i := 0; i < 49; i++ {
		t.Square(&t)
	}
	z2_100_0.Multiply(&t, &z2_50_0)

	t.Square(&z2_100_0)
	for i := 0; i < 99; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_100_0)

	t.Square(&t)
	for i := 0; i < 49; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_50_0)

	// t = z^(2^250-1); two more squarings give z^(2^252-4), and one more
	// multiplication by z gives z^(2^252-3) = z^((p-5)/8).
	t.Square(&t)
	t.Square(&t)
	return v.Multiply(&t, z)
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to x, which must be a 32-byte little-endian encoding.
//
// Consistent with RFC 7748, the most significant bit (the high bit of the
// last byte) is masked off and ignored, and non-canonical encodings
// (2^255-19 through 2^255-1) are accepted without error; use
// IsCanonical to reject them where malleability matters.
func (v *Element) SetBytes(x []byte) *Element {
	if len(x) != 32 {
		panic("field: invalid element input size")
	}

	v.l0 = binary.LittleEndian.Uint64(x[0:8]) & maskLow51Bits
	v.l1 = (binary.LittleEndian.Uint64(x[6:14]) >> 3) & maskLow51Bits
	v.l2 = (binary.LittleEndian.Uint64(x[12:20]) >> 6) & maskLow51Bits
	v.l3 = (binary.LittleEndian.Uint64(x[19:27]) >> 1) & maskLow51Bits
	v.l4 = (binary.LittleEndian.Uint64(x[24:32]) >> 12) & maskLow51Bits

	return v
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var out [32]byte
	return v.putBytes(&out)
}

func (v *Element) putBytes(b *[32]byte) []byte {
	t := *v
	t.reduce()

	var buf [8]byte
	for i, l := range [5]uint64{t.l0, t.l1, t.l2, t.l3, t.l4} {
		bitsOffset := i * 51
		binary.LittleEndian.PutUint64(buf[:], l<<uint(bitsOffset%8))
		for j, bb := range buf {
			off := bitsOffset/8 + j
			if off >= len(b) {
				break
			}
			b[off] |= bb
		}
	}

	return b[:]
}

// IsCanonical returns true if x, interpreted little-endian, is a canonical
// encoding strictly less than p = 2^255-19. The high bit of byte 31 (the
// encoded sign/parity bit in Edwards point encodings) is excluded from the
// comparison, matching the convention used by point decompression.
func IsCanonical(x []byte) bool {
	if len(x) != 32 {
		return false
	}
	var reduced [32]byte
	copy(reduced[:], x)
	reduced[31] &= 0x7f

	// p in little-endian bytes.
	p := [32]byte{
		0xed, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
	}
	for i := 31; i >= 0; i-- {
		if reduced[i] != p[i] {
			return reduced[i] < p[i]
		}
	}
	return false // equal to p, not canonical
}

// Equal returns 1 if v == u, and 0 otherwise, in constant time.
func (v *Element) Equal(u *Element) int {
	sa, sv := make([]byte, 32), make([]byte, 32)
	u.putBytes((*[32]byte)(sa))
	v.putBytes((*[32]byte)(sv))
	return subtle.ConstantTimeCompare(sa, sv)
}

const mask64Bits uint64 = (1 << 64) - 1

// Select sets v to a if cond == 1, or to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := uint64(cond) * mask64Bits
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	v.l4 = (m & a.l4) | (^m & b.l4)
	return v
}

// CondSwap swaps v and u in constant time if cond == 1, and leaves them
// unchanged if cond == 0.
func CondSwap(v, u *Element, cond int) {
	m := uint64(cond) * mask64Bits
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
	t = m & (v.l4 ^ u.l4)
	v.l4 ^= t
	u.l4 ^= t
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(zero)
}

// IsNegative returns the least-significant bit of the canonical encoding of
// v, used as the Edwards x-coordinate sign bit.
func (v *Element) IsNegative() int {
	b := v.Bytes()
	return int(b[0] & 1)
}

// Multiply sets v = x * y and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	feMul(v, x, y)
	return v
}

// Square sets v = x * x and returns v.
func (v *Element) Square(x *Element) *Element {
	feSquare(v, x)
	return v
}

// SquareAndDouble sets v = 2 * x^2 and returns v.
func (v *Element) SquareAndDouble(x *Element) *Element {
	feSquare(v, x)
	return v.Add(v, v)
}

// Mult32 sets v = x * y, where y is a small constant, and returns v. Used by
// the Montgomery ladder to multiply by the curve constant 121666.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	x0lo, x0hi := mul51(x.l0, y)
	x1lo, x1hi := mul51(x.l1, y)
	x2lo, x2hi := mul51(x.l2, y)
	x3lo, x3hi := mul51(x.l3, y)
	x4lo, x4hi := mul51(x.l4, y)
	v.l0 = x0lo + 19*x4hi
	v.l1 = x1lo + x0hi
	v.l2 = x2lo + x1hi
	v.l3 = x3lo + x2hi
	v.l4 = x4lo + x3hi
	return v
}

func mul51(a uint64, b uint32) (lo uint64, hi uint64) {
	mh, ml := bits.Mul64(a, uint64(b))
	lo = ml & maskLow51Bits
	hi = (mh << 13) | (ml >> 51)
	return
}

// feMul sets v = a * b using schoolbook multiplication of the five 51-bit
// limbs, with each cross term reduced mod 2^255-19 as it is accumulated
// (using that 2^255 = 19 mod p), widening through uint128-style (hi, lo)
// pairs via math/bits.Mul64/Add64.
func feMul(v, a, b *Element) {
	// Limbs of a, b are < 2^51, so products are < 2^102; we accumulate the
	// low-order coefficients of the schoolbook product, folding in the
	// contributions that wrap around modulo p (those get multiplied by 19).
	a0, a1, a2, a3, a4 := a.l0, a.l1, a.l2, a.l3, a.l4
	b0, b1, b2, b3, b4 := b.l0, b.l1, b.l2, b.l3, b.l4

	b1_19 := b1 * 19
	b2_19 := b2 * 19
	b3_19 := b3 * 19
	b4_19 := b4 * 19

	var c0, c1, c2, c3, c4 uint128

	c0 = mul64(a0, b0)
	c0 = addMul128(c0, a1, b4_19)
	c0 = addMul128(c0, a2, b3_19)
	c0 = addMul128(c0, a3, b2_19)
	c0 = addMul128(c0, a4, b1_19)

	c1 = mul64(a0, b1)
	c1 = addMul128(c1, a1, b0)
	c1 = addMul128(c1, a2, b4_19)
	c1 = addMul128(c1, a3, b3_19)
	c1 = addMul128(c1, a4, b2_19)

	c2 = mul64(a0, b2)
	c2 = addMul128(c2, a1, b1)
	c2 = addMul128(c2, a2, b0)
	c2 = addMul128(c2, a3, b4_19)
	c2 = addMul128(c2, a4, b3_19)

	c3 = mul64(a0, b3)
	c3 = addMul128(c3, a1, b2)
	c3 = addMul128(c3, a2, b1)
	c3 = addMul128(c3, a3, b0)
	c3 = addMul128(c3, a4, b4_19)

	c4 = mul64(a0, b4)
	c4 = addMul128(c4, a1, b3)
	c4 = addMul128(c4, a2, b2)
	c4 = addMul128(c4, a3, b1)
	c4 = addMul128(c4, a4, b0)

	v.l0, v.l1, v.l2, v.l3, v.l4 = weakReduce(c0, c1, c2, c3, c4)
	v.carryPropagate1().carryPropagate2()
}

func feSquare(v, a *Element) {
	// Squaring is multiplication with the symmetric cross terms doubled;
	// delegate to the general product for clarity.
	feMul(v, a, a)
}

// uint128 is a minimal 128-bit accumulator built from two uint64s, used to
// hold the widened products in feMul before the final carry-propagating
// reduction.
type uint128 struct {
	hi, lo uint64
}

func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{hi, lo}
}

func addMul128(acc uint128, a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	nlo, carry := bits.Add64(acc.lo, lo, 0)
	nhi, _ := bits.Add64(acc.hi, hi, carry)
	return uint128{nhi, nlo}
}

// weakReduce takes five 102-bit-range uint128 coefficients (a schoolbook
// product of 51-bit limbs, pre-folded mod p) and carries them down into
// five limbs: l1..l4 below 2^51, while l0 also receives the top carry
// times 19 and can exceed 2^51 by several bits. feMul passes the result
// through carryPropagate1/carryPropagate2.
func weakReduce(c0, c1, c2, c3, c4 uint128) (l0, l1, l2, l3, l4 uint64) {
	// Each ci occupies up to 128 bits (hi:lo). Shift right by 51 to carry
	// into the next coefficient, keeping the low 51 bits.
	shiftDown := func(c uint128) (low uint64, carry uint128) {
		low = (c.lo & maskLow51Bits)
		// carry = c >> 51
		rem := c.lo >> 51
		rem |= c.hi << 13
		carry = uint128{c.hi >> 51, rem}
		return
	}

	l0v, carry0 := shiftDown(c0)
	c1 = addU128(c1, carry0)
	l1v, carry1 := shiftDown(c1)
	c2 = addU128(c2, carry1)
	l2v, carry2 := shiftDown(c2)
	c3 = addU128(c3, carry2)
	l3v, carry3 := shiftDown(c3)
	c4 = addU128(c4, carry3)
	l4v, carry4 := shiftDown(c4)

	// carry4 may still be nonzero (up to a small multiple of 2^51); fold it
	// back into l0 multiplied by 19, then let the caller's carry propagation
	// finish cleaning up.
	wrap := carry4.lo*19 + carry4.hi*19<<51 // carry4.hi is expected to be 0
	l0v += wrap

	return l0v, l1v, l2v, l3v, l4v
}

func addU128(a, b uint128) uint128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return uint128{hi, lo}
}
