package x25519

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnclampedMulBasePointSelfMap(t *testing.T) {
	var sk SecretKey
	sk[0] = 1

	out, err := UnclampedMul(BasePoint(), sk)
	require.NoError(t, err)

	var pk PublicKey
	copy(pk[:], out[:])
	require.Equal(t, BasePoint(), pk)
}

func TestDHCommutative(t *testing.T) {
	a, err := GenerateKeyPair(nil)
	require.NoError(t, err)
	b, err := GenerateKeyPair(nil)
	require.NoError(t, err)

	sharedA, err := DH(b.PublicKey, a.SecretKey)
	require.NoError(t, err)
	sharedB, err := DH(a.PublicKey, b.SecretKey)
	require.NoError(t, err)

	require.Equal(t, sharedA, sharedB)
}

func TestValidatePublicKey(t *testing.T) {
	kp1, err := GenerateKeyPair(nil)
	require.NoError(t, err)
	kp2, err := GenerateKeyPair(nil)
	require.NoError(t, err)

	require.NoError(t, ValidatePublicKey(kp1.SecretKey, kp1.PublicKey))
	require.Error(t, ValidatePublicKey(kp1.SecretKey, kp2.PublicKey))
}

func TestClearCofactorRejectsSmallOrderPoints(t *testing.T) {
	// The all-zero u-coordinate is the point (0, 0) of the Montgomery
	// curve, which has order 2, a divisor of the cofactor.
	var zero PublicKey
	_, err := ClearCofactor(zero)
	require.Error(t, err)
}
