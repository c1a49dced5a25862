package x25519

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

// TestBaseScalarMultMatchesReferenceImplementation cross-checks this
// package's ladder against golang.org/x/crypto/curve25519 as an
// independent oracle. The reference implementation is used only here, in
// tests; production code always runs this module's own ladder.
func TestBaseScalarMultMatchesReferenceImplementation(t *testing.T) {
	kp, err := GenerateKeyPair(nil)
	require.NoError(t, err)

	want, err := curve25519.X25519(kp.SecretKey[:], curve25519.Basepoint)
	require.NoError(t, err)

	got, err := kp.SecretKey.PublicKey()
	require.NoError(t, err)

	require.Equal(t, want, got[:])
}

func TestDHMatchesReferenceImplementation(t *testing.T) {
	a, err := GenerateKeyPair(nil)
	require.NoError(t, err)
	b, err := GenerateKeyPair(nil)
	require.NoError(t, err)

	want, err := curve25519.X25519(a.SecretKey[:], b.PublicKey[:])
	require.NoError(t, err)

	got, err := DH(b.PublicKey, a.SecretKey)
	require.NoError(t, err)

	require.Equal(t, want, got[:])
}
