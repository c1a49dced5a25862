package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroOneRoundTrip(t *testing.T) {
	z := new(Element).Zero()
	require.Equal(t, 1, z.IsZero())

	o := new(Element).One()
	require.Equal(t, 0, o.IsZero())
}

func TestAddSubInverse(t *testing.T) {
	a := new(Element).SetBytes(make([]byte, 32))
	a.l0 = 12345

	b := new(Element).SetBytes(make([]byte, 32))
	b.l0 = 6789

	var sum, diff Element
	sum.Add(a, b)
	diff.Subtract(&sum, b)
	require.Equal(t, 1, diff.Equal(a))
}

func TestInvertRoundTrip(t *testing.T) {
	a := new(Element).One()
	a.l0 = 5

	var inv, product Element
	inv.Invert(a)
	product.Multiply(a, &inv)

	require.Equal(t, 1, product.Equal(new(Element).One()))
}

func TestSelectAndCondSwap(t *testing.T) {
	a := new(Element).One()
	b := new(Element).Zero()

	var sel Element
	sel.Select(a, b, 1)
	require.Equal(t, 1, sel.Equal(a))
	sel.Select(a, b, 0)
	require.Equal(t, 1, sel.Equal(b))

	x, y := *a, *b
	CondSwap(&x, &y, 1)
	require.Equal(t, 1, x.Equal(b))
	require.Equal(t, 1, y.Equal(a))
}

func TestIsCanonicalRejectsPAndAbove(t *testing.T) {
	p := [32]byte{
		0xed, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
	}
	require.False(t, IsCanonical(p[:]))

	zero := make([]byte, 32)
	require.True(t, IsCanonical(zero))
}
