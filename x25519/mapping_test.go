package x25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoobc/curve25519x/ed25519"
)

func TestEd25519MappingDHCommutative(t *testing.T) {
	var seedA, seedB ed25519.Seed
	seedA[0], seedB[0] = 1, 2

	edA := ed25519.NewKeyPairFromSeed(seedA)
	edB := ed25519.NewKeyPairFromSeed(seedB)

	skA := SecretKeyFromEd25519(edA.SecretKey)
	skB := SecretKeyFromEd25519(edB.SecretKey)

	pkA, err := PublicKeyFromEd25519(edA.PublicKey)
	require.NoError(t, err)
	pkB, err := PublicKeyFromEd25519(edB.PublicKey)
	require.NoError(t, err)

	sharedA, err := DH(pkB, skA)
	require.NoError(t, err)
	sharedB, err := DH(pkA, skB)
	require.NoError(t, err)

	require.Equal(t, sharedA, sharedB)
}
