package edwards25519

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityEncodingRoundTrip(t *testing.T) {
	id := NewIdentityPoint()
	encoded := id.Bytes()

	decoded, err := new(Point).SetBytes(encoded)
	require.NoError(t, err)
	require.Equal(t, 1, decoded.Equal(id))
}

func TestGeneratorEncodingRoundTrip(t *testing.T) {
	g := NewGeneratorPoint()
	encoded := g.Bytes()

	decoded, err := new(Point).SetBytes(encoded)
	require.NoError(t, err)
	require.Equal(t, 1, decoded.Equal(g))
}

func TestScalarMultByOneReturnsSamePoint(t *testing.T) {
	g := NewGeneratorPoint()
	one := ScalarOne()

	var result Point
	result.ScalarMult(one, g)
	require.Equal(t, 1, result.Equal(g))
}

func TestScalarMultByZeroIsIdentity(t *testing.T) {
	g := NewGeneratorPoint()
	zero := ScalarZero()

	var result Point
	result.ScalarMult(zero, g)
	require.Equal(t, 1, result.Equal(NewIdentityPoint()))
}

func TestAddDoubleConsistency(t *testing.T) {
	g := NewGeneratorPoint()

	var doubled, added Point
	doubled.Double(g)
	added.Add(g, g)

	require.Equal(t, 1, doubled.Equal(&added))
}

func TestVarTimeDoubleScalarBaseMultAgainstScalarMult(t *testing.T) {
	g := NewGeneratorPoint()

	var two Scalar
	two.Add(ScalarOne(), ScalarOne())

	var viaScalarMult Point
	viaScalarMult.ScalarMult(&two, g)

	var viaDouble Point
	viaDouble.VarTimeDoubleScalarBaseMult(ScalarZero(), g, &two)

	require.Equal(t, 1, viaScalarMult.Equal(&viaDouble))
}

func TestGeneratorIsNotSmallOrder(t *testing.T) {
	require.False(t, NewGeneratorPoint().IsSmallOrder())
}

func TestIdentityIsSmallOrder(t *testing.T) {
	require.True(t, NewIdentityPoint().IsSmallOrder())
}
