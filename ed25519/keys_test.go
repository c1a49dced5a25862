package ed25519

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSignVectorSeed2A(t *testing.T) {
	var seed Seed
	for i := range seed {
		seed[i] = 0x2A
	}

	kp := NewKeyPairFromSeed(seed)
	sig, err := Sign(kp.SecretKey, []byte("Hello, World!"), nil)
	require.NoError(t, err)

	r := "c4b6010fb6b6e7a6e33ef35531aea909a2c462681e511626b888fd800aa08069"
	s := "7f828aa439565ea0d855998b5164267cebd21a5fe75a49ce21d8ab0fbcb58807"
	wantSig := mustHex(t, r+s)
	require.Len(t, wantSig, 64)
	require.Equal(t, wantSig, sig[:])

	require.NoError(t, Verify(kp.PublicKey, []byte("Hello, World!"), sig))
}

func TestVerifyRejectsNonCanonicalS(t *testing.T) {
	var seed Seed
	for i := range seed {
		seed[i] = 0x2A
	}
	kp := NewKeyPairFromSeed(seed)
	sig, err := Sign(kp.SecretKey, []byte("Hello, World!"), nil)
	require.NoError(t, err)

	sig[63] = 0xFF
	err = Verify(kp.PublicKey, []byte("Hello, World!"), sig)
	require.Error(t, err)
}

func TestVerifyRejectsAllZeroPublicKey(t *testing.T) {
	var seed Seed
	for i := range seed {
		seed[i] = 0x2A
	}
	kp := NewKeyPairFromSeed(seed)
	sig, err := Sign(kp.SecretKey, []byte("Hello, World!"), nil)
	require.NoError(t, err)

	var zeroPK PublicKey
	err = Verify(zeroPK, []byte("Hello, World!"), sig)
	require.Error(t, err)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	var seed Seed
	for i := range seed {
		seed[i] = 0x2A
	}
	kp := NewKeyPairFromSeed(seed)
	msg := []byte("Hello, World!")
	sig, err := Sign(kp.SecretKey, msg, nil)
	require.NoError(t, err)

	tampered := append([]byte{}, msg...)
	tampered[0] ^= 0xFF
	err = Verify(kp.PublicKey, tampered, sig)
	require.Error(t, err)
}

func TestRoundTripDeterministicWithoutNoise(t *testing.T) {
	var seed Seed
	for i := range seed {
		seed[i] = 7
	}
	kp := NewKeyPairFromSeed(seed)
	msg := []byte("same message twice")

	sig1, err := Sign(kp.SecretKey, msg, nil)
	require.NoError(t, err)
	sig2, err := Sign(kp.SecretKey, msg, nil)
	require.NoError(t, err)
	require.Equal(t, sig1, sig2)
}

func TestAllZeroSeedPanics(t *testing.T) {
	var seed Seed
	require.Panics(t, func() {
		NewKeyPairFromSeed(seed)
	})
}
