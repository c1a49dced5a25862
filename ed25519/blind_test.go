package ed25519

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyDerivationVector(t *testing.T) {
	seedBytes := mustHex(t, "875532ab039b0a154161c284e19c74afa28d5bf5454e99284bbcffaa71eebf45")
	require.Len(t, seedBytes, 32)

	var seed Seed
	copy(seed[:], seedBytes)

	kp := NewKeyPairFromSeed(seed)

	want := mustHex(t, "3b5983605b277cd44918410eb246bb52d83adfc806ccaa91a60b5b2011bc5973")
	require.Equal(t, want, kp.PublicKey[:])
}

func TestBlindKeyAndSignVector(t *testing.T) {
	seedBytes := mustHex(t, "875532ab039b0a154161c284e19c74afa28d5bf5454e99284bbcffaa71eebf45")
	var seed Seed
	copy(seed[:], seedBytes)
	kp := NewKeyPairFromSeed(seed)

	blindBytes := mustHex(t, "c461e8595f0ac41d374f878613206704978115a226f60470ffd566e9e6ae73bf")
	var blind Blind
	copy(blind[:], blindBytes)

	bpk, bsk, err := BlindKeyPair(kp, blind, []byte("ctx"))
	require.NoError(t, err)

	wantBPK := mustHex(t, "246dcd43930b81d5e4d770db934a9fcd985b75fd014bc2a98b0aea02311c1836")
	require.Equal(t, wantBPK, bpk[:])

	sig, err := BlindSign(bsk, mustHex(t, "68656c6c6f20776f726c64"), nil)
	require.NoError(t, err)

	wantSig := mustHex(t, "947bacfabc63448f8955dc20630e069e58f37b72bb433ae17f2fa904ea860b4"+
		"4deb761705a3cc2168a6673ee0b41ff7765c7a4896941eec6833c1689315acb0b")
	require.Equal(t, wantSig, sig[:])

	require.NoError(t, VerifyBlind(bpk, mustHex(t, "68656c6c6f20776f726c64"), sig))

	recovered, err := UnblindPublicKey(bpk, blind, []byte("ctx"))
	require.NoError(t, err)
	require.Equal(t, kp.PublicKey, recovered)

	require.Error(t, Verify(kp.PublicKey, mustHex(t, "68656c6c6f20776f726c64"), sig))
}
