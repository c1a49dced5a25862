package edwards25519

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarZeroOneEncodings(t *testing.T) {
	z := ScalarZero()
	require.True(t, z.IsZero())

	o := ScalarOne()
	require.False(t, o.IsZero())
	require.Equal(t, byte(1), o.Bytes()[0])
}

func TestScalarSetCanonicalBytesRejectsUnreduced(t *testing.T) {
	var s Scalar
	_, ok := s.SetCanonicalBytes(scMinusOneBytes[:])
	require.True(t, ok)

	tooBig := scMinusOneBytes
	tooBig[0]++
	_, ok = s.SetCanonicalBytes(tooBig[:])
	require.False(t, ok)
}

func TestScalarAddSubtractRoundTrip(t *testing.T) {
	a := ScalarOne()
	var two, three, back Scalar
	two.Add(a, a)
	three.Add(&two, a)

	var negTwo Scalar
	negTwo.Negate(&two)
	back.Add(&three, &negTwo)
	require.Equal(t, 1, back.Equal(a))
}

func TestScalarMultiplyAddMatchesAddWhenBIsOne(t *testing.T) {
	var a, c Scalar
	a.Add(ScalarOne(), ScalarOne())
	c.Add(ScalarOne(), ScalarOne())
	c.Add(&c, ScalarOne())

	var viaMulAdd, viaAdd Scalar
	viaMulAdd.MultiplyAdd(&a, ScalarOne(), &c)
	viaAdd.Add(&a, &c)

	require.Equal(t, 1, viaMulAdd.Equal(&viaAdd))
}

func TestScalarInvertRoundTrip(t *testing.T) {
	var five Scalar
	five.Add(ScalarOne(), ScalarOne())
	five.Add(&five, &five)
	five.Add(&five, ScalarOne())

	var inv, product Scalar
	inv.Invert(&five)
	product.Multiply(&five, &inv)

	require.Equal(t, 1, product.Equal(ScalarOne()))
}

func TestScalarSetUniformBytesReducesModL(t *testing.T) {
	wide := make([]byte, 64)
	for i := range wide {
		wide[i] = 0xff
	}
	var s Scalar
	s.SetUniformBytes(wide)
	require.True(t, isReduced(s.Bytes()))
}

func TestScalarSetBytesWithClampingSetsFixedBits(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = 0xff
	}
	var s Scalar
	s.SetBytesWithClamping(seed)
	out := s.Bytes()
	require.Equal(t, byte(0xf8), out[0])
	require.Equal(t, byte(0x7f), out[31])
}
