// Package montgomery implements the X25519 Montgomery-ladder scalar
// multiplication over the Curve25519 u-line, following RFC 7748 section 5.
package montgomery

import (
	"github.com/zoobc/curve25519x/internal/field"
)

// LadderBits multiplies the Montgomery u-coordinate uBytes by the scalar
// encoded in sBytes (little-endian), processing exactly bits digits of the
// scalar starting from bit (bits-1) down to 0. It returns the resulting
// u-coordinate and true, or false if the result is the identity (u=0),
// which callers must treat as a weak/low-order key rejection.
//
// This is the textbook differential addition-and-doubling ladder, built
// from the same five field operations (A, B pack; AA, BB square; swap) as
// every reference X25519 implementation; constant time in the scalar bits
// via CondSwap.
func LadderBits(uBytes []byte, sBytes []byte, bits int) (out [32]byte, ok bool) {
	var x1 field.Element
	x1.SetBytes(uBytes)

	var x2, z2, x3, z3 field.Element
	x2.One()
	z2.Zero()
	x3.Set(&x1)
	z3.One()

	var swap int
	for pos := bits - 1; pos >= 0; pos-- {
		bit := int((sBytes[pos>>3] >> uint(pos&7)) & 1)
		swap ^= bit
		field.CondSwap(&x2, &x3, swap)
		field.CondSwap(&z2, &z3, swap)
		swap = bit

		var a, b, aa, bb, e, da, cb, t0, t1 field.Element
		a.Add(&x2, &z2)
		b.Subtract(&x2, &z2)
		aa.Square(&a)
		bb.Square(&b)
		x2.Multiply(&aa, &bb)
		e.Subtract(&aa, &bb)

		t0.Subtract(&x3, &z3)
		da.Multiply(&t0, &a)
		t1.Add(&x3, &z3)
		cb.Multiply(&t1, &b)

		var sum, diff field.Element
		sum.Add(&da, &cb)
		x3.Square(&sum)
		diff.Subtract(&da, &cb)
		diff.Square(&diff)
		z3.Multiply(&x1, &diff)

		var mul121666 field.Element
		mul121666.Mult32(&e, 121666)
		mul121666.Add(&mul121666, &bb)
		z2.Multiply(&e, &mul121666)
	}

	field.CondSwap(&x2, &x3, swap)
	field.CondSwap(&z2, &z3, swap)

	var zInv field.Element
	zInv.Invert(&z2)
	var result field.Element
	result.Multiply(&x2, &zInv)

	out32 := result.Bytes()
	var arr [32]byte
	copy(arr[:], out32)
	return arr, result.IsZero() == 0
}
