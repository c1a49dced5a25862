// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package edwards25519

import (
	"errors"

	"github.com/zoobc/curve25519x/internal/field"
)

// Point is a point on the twisted Edwards curve
//   -x^2 + y^2 = 1 + d*x^2*y^2  (mod 2^255-19)
// that is birationally equivalent to Curve25519, held in extended
// projective (X:Y:Z:T) coordinates with x=X/Z, y=Y/Z, x*y=T/Z.
type Point struct {
	x, y, z, t field.Element
}

// projP2 is a point in projective (P2) coordinates: x=X/Z, y=Y/Z.
type projP2 struct {
	X, Y, Z field.Element
}

// projP1xP1 is the output of dedicated add/double formulas, deferred in
// completed (P1xP1) form: x=X/Z, y=Y/T.
type projP1xP1 struct {
	X, Y, Z, T field.Element
}

// projCached holds the terms used by the 2008-hwcd-3 addition formula that
// depend only on the addend, so it can be precomputed once and reused.
type projCached struct {
	YplusX, YminusX, Z, T2d field.Element
}

// affineCached is projCached with Z fixed to 1. The scalar-multiplication
// routines in this file do not use it; their tables hold projCached
// entries.
type affineCached struct {
	YplusX, YminusX, T2d field.Element
}

var (
	d      = new(field.Element).SetBytes(dBytes[:])
	d2     = new(field.Element).Add(d, d)
	sqrtM1 = new(field.Element).SetBytes(sqrtM1Bytes[:])
)

// dBytes encodes the curve constant d = -121665/121666, and sqrtM1Bytes the
// square root of -1 mod p, both in the canonical little-endian wire format
// used throughout this package; these match the constants used by every
// Ed25519/X25519 implementation (e.g. ref10, FiloSottile/edwards25519).
var dBytes = [32]byte{
	0xa3, 0x78, 0x59, 0x13, 0xca, 0x4d, 0xeb, 0x75,
	0xab, 0xd8, 0x41, 0x41, 0x4d, 0x0a, 0x70, 0x00,
	0x98, 0xe8, 0x79, 0x77, 0x79, 0x40, 0xc7, 0x8c,
	0x73, 0xfe, 0x6f, 0x2b, 0xee, 0x6c, 0x03, 0x52,
}

var sqrtM1Bytes = [32]byte{
	0xb0, 0xa0, 0x0e, 0x4a, 0x27, 0x1b, 0xee, 0xc4,
	0x78, 0xe4, 0x2f, 0xad, 0x06, 0x18, 0x43, 0x2f,
	0xa7, 0xd7, 0xfb, 0x3d, 0x99, 0x00, 0x4d, 0x2b,
	0x0b, 0xdf, 0xc1, 0x4f, 0x80, 0x24, 0x83, 0x2b,
}

// NewIdentityPoint returns the identity point (0, 1).
func NewIdentityPoint() *Point {
	p := &Point{}
	p.x.Zero()
	p.y.One()
	p.z.One()
	p.t.Zero()
	return p
}

// NewGeneratorPoint returns the canonical edwards25519 base point.
func NewGeneratorPoint() *Point {
	p := &Point{}
	p.x.SetBytes(basePointXBytes[:])
	p.y.SetBytes(basePointYBytes[:])
	p.z.One()
	p.t.Multiply(&p.x, &p.y)
	return p
}

var basePointYBytes = [32]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
}

// basePointXBytes is computed from y via the curve equation and the known
// sign bit (0); embedded directly to avoid needing decompression at init.
var basePointXBytes = [32]byte{
	0x1a, 0xd5, 0x25, 0x8f, 0x60, 0x2d, 0x56, 0xc9,
	0xb2, 0xa7, 0x25, 0x95, 0x60, 0xc7, 0x2c, 0x69,
	0x5c, 0xdc, 0xd6, 0xfd, 0x31, 0xe2, 0xa4, 0xc0,
	0xfe, 0x53, 0x6e, 0xcd, 0xd3, 0x36, 0x69, 0x21,
}

var errInvalidEncoding = errors.New("edwards25519: invalid point encoding")

// SetBytes decompresses a 32-byte little-endian point encoding, recovering
// x from y and the sign bit, and returns an error if the encoding does not
// correspond to a valid curve point. Non-canonical y encodings are rejected
// to avoid signature malleability.
func (p *Point) SetBytes(x []byte) (*Point, error) {
	if len(x) != 32 {
		return nil, errInvalidEncoding
	}
	if !field.IsCanonical(x) {
		return nil, errInvalidEncoding
	}

	signBit := x[31] >> 7

	var y field.Element
	y.SetBytes(x)

	var yy, u, v, v3, x2, check field.Element
	yy.Square(&y)
	u.Subtract(&yy, fieldOne())          // u = y^2-1
	v.Multiply(&yy, d)
	v.Add(&v, fieldOne())                // v = d*y^2+1

	v3.Square(&v)
	v3.Multiply(&v3, &v) // v3 = v^3
	x2.Square(&v3)
	x2.Multiply(&x2, &v)
	x2.Multiply(&x2, &u) // x2 = uv^7

	var xCandidate field.Element
	xCandidate.PowP58(&x2)
	xCandidate.Multiply(&xCandidate, &v3)
	xCandidate.Multiply(&xCandidate, &u) // candidate = uv^3 (uv^7)^((p-5)/8)

	check.Square(&xCandidate)
	check.Multiply(&check, &v)

	var uNeg field.Element
	uNeg.Negate(&u)
	if check.Equal(&u) == 0 {
		if check.Equal(&uNeg) == 1 {
			xCandidate.Multiply(&xCandidate, sqrtM1)
		} else {
			return nil, errInvalidEncoding
		}
	}

	if xCandidate.IsZero() == 1 && signBit == 1 {
		return nil, errInvalidEncoding
	}

	if xCandidate.IsNegative() != int(signBit) {
		xCandidate.Negate(&xCandidate)
	}

	p.x.Set(&xCandidate)
	p.y.Set(&y)
	p.z.One()
	p.t.Multiply(&p.x, &p.y)
	return p, nil
}

func fieldOne() *field.Element { return new(field.Element).One() }

// Bytes returns the canonical 32-byte little-endian encoding of p.
func (p *Point) Bytes() []byte {
	var zInv, x, y field.Element
	zInv.Invert(&p.z)
	x.Multiply(&p.x, &zInv)
	y.Multiply(&p.y, &zInv)

	out := y.Bytes()
	if x.IsNegative() == 1 {
		out[31] |= 0x80
	}
	return out
}

// YCoordinate returns the normalized affine y = Y/Z coordinate of p, used
// by the Ed25519-to-X25519 birational map.
func (p *Point) YCoordinate() *field.Element {
	var zInv, y field.Element
	zInv.Invert(&p.z)
	y.Multiply(&p.y, &zInv)
	return &y
}

// Equal returns 1 if p == q, 0 otherwise, in constant time.
func (p *Point) Equal(q *Point) int {
	var x1z2, x2z1, y1z2, y2z1 field.Element
	x1z2.Multiply(&p.x, &q.z)
	x2z1.Multiply(&q.x, &p.z)
	y1z2.Multiply(&p.y, &q.z)
	y2z1.Multiply(&q.y, &p.z)
	return x1z2.Equal(&x2z1) & y1z2.Equal(&y2z1)
}

// IsSmallOrder reports whether p is in the 8-element torsion subgroup, used
// by verification to reject cofactor-sensitive malleable signatures and by
// Ed25519 public key decompression to reject small-order keys.
func (p *Point) IsSmallOrder() bool {
	var check Point
	check.scalarMultVartimeGeneric(cofactorScalarBytes[:], p, 4)
	return check.Equal(NewIdentityPoint()) == 1
}

var cofactorScalarBytes = [32]byte{8}

func (p *Point) toP2() projP2 {
	return projP2{X: p.x, Y: p.y, Z: p.z}
}

func (p *Point) toCached() projCached {
	var c projCached
	c.YplusX.Add(&p.y, &p.x)
	c.YminusX.Subtract(&p.y, &p.x)
	c.Z.Set(&p.z)
	c.T2d.Multiply(&p.t, d2)
	return c
}

func (v *Point) fromP1xP1(p *projP1xP1) *Point {
	v.x.Multiply(&p.X, &p.T)
	v.y.Multiply(&p.Y, &p.Z)
	v.z.Multiply(&p.Z, &p.T)
	v.t.Multiply(&p.X, &p.Y)
	return v
}

func (v *Point) fromP2(p *projP2) *Point {
	v.x.Multiply(&p.X, &p.Z)
	v.y.Multiply(&p.Y, &p.Z)
	v.z.Square(&p.Z)
	v.t.Multiply(&p.X, &p.Y)
	return v
}

// double implements the HWCD dedicated doubling formula.
func double(p *projP2) projP1xP1 {
	var r projP1xP1
	var t0 field.Element
	r.X.Square(&p.X)
	r.Z.Square(&p.Y)
	r.T.SquareAndDouble(&p.Z)
	t0.Add(&p.X, &p.Y)
	t0.Square(&t0)
	r.Y.Add(&r.Z, &r.X)      // YY + XX
	r.Z.Subtract(&r.Z, &r.X) // YY - XX
	r.X.Subtract(&t0, &r.Y)  // 2XY
	r.T.Subtract(&r.T, &r.Z) // 2ZZ - (YY - XX)
	return r
}

// add implements the add-2008-hwcd-3 addition formula, p + q, where q has
// been precomputed into cached form.
func add(p *Point, q *projCached) projP1xP1 {
	var r projP1xP1
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 field.Element

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.t, &q.T2d)
	ZZ2.Multiply(&p.z, &q.Z)
	ZZ2.Add(&ZZ2, &ZZ2)

	r.X.Subtract(&PP, &MM)
	r.Y.Add(&PP, &MM)
	r.Z.Add(&ZZ2, &TT2d)
	r.T.Subtract(&ZZ2, &TT2d)
	return r
}

func sub(p *Point, q *projCached) projP1xP1 {
	var nq projCached
	nq.YplusX = q.YminusX
	nq.YminusX = q.YplusX
	nq.Z = q.Z
	nq.T2d.Negate(&q.T2d)
	return add(p, &nq)
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	bc := b.toCached()
	r := add(a, &bc)
	return p.fromP1xP1(&r)
}

// Subtract sets p = a - b and returns p.
func (p *Point) Subtract(a, b *Point) *Point {
	bc := b.toCached()
	r := sub(a, &bc)
	return p.fromP1xP1(&r)
}

// Negate sets p = -a and returns p.
func (p *Point) Negate(a *Point) *Point {
	p.x.Negate(&a.x)
	p.y.Set(&a.y)
	p.z.Set(&a.z)
	p.t.Negate(&a.t)
	return p
}

// Double sets p = 2*a and returns p.
func (p *Point) Double(a *Point) *Point {
	ap2 := a.toP2()
	r := double(&ap2)
	return p.fromP1xP1(&r)
}

// scalarMultVartimeGeneric is a simple double-and-add used internally for
// small, public exponents (cofactor clearing, small-order checks) where
// constant time is not required.
func (p *Point) scalarMultVartimeGeneric(s []byte, a *Point, bits int) *Point {
	res := NewIdentityPoint()
	acc := *a
	for i := 0; i < bits; i++ {
		byteIdx := i / 8
		bitIdx := uint(i % 8)
		if byteIdx < len(s) && (s[byteIdx]>>bitIdx)&1 == 1 {
			res.Add(res, &acc)
		}
		acc.Double(&acc)
	}
	*p = *res
	return p
}

// ScalarMult sets p = s*a in constant time using a fixed-iteration 4-bit
// windowed ladder over the 256 bits of s, and returns p. s must be the
// 32-byte little-endian encoding of a scalar (not necessarily reduced mod
// l, e.g. a clamped X25519-style exponent or a reduced RFC 8032 scalar).
func (p *Point) ScalarMult(s *Scalar, a *Point) *Point {
	// Precompute [0]a, [1]a, ..., [15]a as cached points; every entry is
	// always computed regardless of the scalar's digits, keeping the table
	// build itself constant time.
	var table [16]projCached
	cur := NewIdentityPoint()
	for i := 0; i < 16; i++ {
		table[i] = cur.toCached()
		cur.Add(cur, a)
	}

	digits := toRadix16(s.s[:])

	result := NewIdentityPoint()
	for i := 63; i >= 0; i-- {
		for j := 0; j < 4; j++ {
			result.Double(result)
		}
		d := digits[i]
		var selected projCached
		selectCached(&selected, &table, d)
		r := add(result, &selected)
		result.fromP1xP1(&r)
	}

	*p = *result
	return p
}

// toRadix16 decomposes a 32-byte little-endian scalar into 64 signed
// base-16 digits, the first 63 in [-8, 8) and the top one in [0, 8],
// matching the balanced representation used for constant-time table
// lookups.
func toRadix16(a []byte) [64]int8 {
	var e [64]int8
	for i := 0; i < 32; i++ {
		e[2*i] = int8(a[i] & 15)
		e[2*i+1] = int8((a[i] >> 4) & 15)
	}
	var carry int8
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}
	e[63] += carry
	return e
}

// selectCached performs a constant-time table lookup of table[|d|], negated
// if d is negative, matching the signed radix-16 digit convention.
func selectCached(out *projCached, table *[16]projCached, d int8) {
	sign := int(d) >> 7 // -1 if d<0, 0 otherwise
	absD := (int(d) ^ sign) - sign

	*out = table[0]
	for i := 1; i < 16; i++ {
		cond := boolToByte(absD == i)
		selectProjCached(out, &table[i], int(cond))
	}
	negated := *out
	negated.YplusX, negated.YminusX = out.YminusX, out.YplusX
	negated.T2d.Negate(&out.T2d)
	condSwapCachedValue(out, &negated, sign&1)
}

func selectProjCached(out, in *projCached, cond int) {
	out.YplusX.Select(&in.YplusX, &out.YplusX, cond)
	out.YminusX.Select(&in.YminusX, &out.YminusX, cond)
	out.Z.Select(&in.Z, &out.Z, cond)
	out.T2d.Select(&in.T2d, &out.T2d, cond)
}

func condSwapCachedValue(out, alt *projCached, cond int) {
	out.YplusX.Select(&alt.YplusX, &out.YplusX, cond)
	out.YminusX.Select(&alt.YminusX, &out.YminusX, cond)
	out.T2d.Select(&alt.T2d, &out.T2d, cond)
}

// ScalarBaseMult sets p = s*G, where G is the canonical generator, in
// constant time, and returns p.
func (p *Point) ScalarBaseMult(s *Scalar) *Point {
	return p.ScalarMult(s, NewGeneratorPoint())
}

// VarTimeDoubleScalarBaseMult sets p = a*A + b*G in variable time, for use
// in signature verification where both scalars and A are public. It uses
// the simple double-and-add Straus method rather than wNAF, trading some
// performance for implementation simplicity.
func (p *Point) VarTimeDoubleScalarBaseMult(a *Scalar, A *Point, b *Scalar) *Point {
	G := NewGeneratorPoint()
	aBytes := a.Bytes()
	bBytes := b.Bytes()

	Acached := A.toCached()
	Gcached := G.toCached()

	result := NewIdentityPoint()
	for i := 255; i >= 0; i-- {
		result.Double(result)
		byteIdx := i / 8
		bitIdx := uint(i % 8)
		if (aBytes[byteIdx]>>bitIdx)&1 == 1 {
			r := add(result, &Acached)
			result.fromP1xP1(&r)
		}
		if (bBytes[byteIdx]>>bitIdx)&1 == 1 {
			r := add(result, &Gcached)
			result.fromP1xP1(&r)
		}
	}
	*p = *result
	return p
}

// BlindMult performs a windowed constant-time scalar multiplication
// identical to ScalarMult; exposed under a distinct name for use by the
// key-blinding extension, where the scalar being multiplied is itself a
// blinding factor rather than a long-term private key.
func (p *Point) BlindMult(s *Scalar, a *Point) *Point {
	return p.ScalarMult(s, a)
}
