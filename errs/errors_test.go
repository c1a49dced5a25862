package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsIsMatchesKind(t *testing.T) {
	err := New(ErrWeakPublicKey, "x25519: recovered public key is weak")

	require.True(t, errors.Is(err, ErrWeakPublicKey))
	require.False(t, errors.Is(err, ErrInvalidPublicKey))
}

func TestErrorMessageIsDescription(t *testing.T) {
	err := New(ErrInvalidSeed, "ed25519: seed must be 32 bytes")
	require.Equal(t, "ed25519: seed must be 32 bytes", err.Error())
}

func TestUnwrapExposesKind(t *testing.T) {
	err := New(ErrNonCanonical, "scalar encoding was not reduced")

	var kind ErrorKind
	require.True(t, errors.As(err, &kind))
	require.Equal(t, ErrNonCanonical, kind)
}

func TestAllKindsAreDistinct(t *testing.T) {
	kinds := []ErrorKind{
		ErrSignatureMismatch,
		ErrWeakPublicKey,
		ErrInvalidPublicKey,
		ErrInvalidSecretKey,
		ErrInvalidSignature,
		ErrInvalidSeed,
		ErrInvalidNoise,
		ErrInvalidBlind,
		ErrNonCanonical,
		ErrParse,
	}
	seen := make(map[ErrorKind]bool, len(kinds))
	for _, k := range kinds {
		require.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
	}
}
