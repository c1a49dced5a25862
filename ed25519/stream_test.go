package ed25519

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamingSignVerifiesAgainstStreamingVerify(t *testing.T) {
	var seed Seed
	seed[0] = 9

	kp := NewKeyPairFromSeed(seed)

	st, err := StartSigning(kp.SecretKey, nil)
	require.NoError(t, err)
	st.Absorb([]byte("hello "))
	st.Absorb([]byte("streaming "))
	st.Absorb([]byte("world"))
	sig, err := st.Sign()
	require.NoError(t, err)

	vst, err := StartVerifying(kp.PublicKey, sig)
	require.NoError(t, err)
	vst.Absorb([]byte("hello streaming world"))
	require.NoError(t, vst.Verify())
}

func TestStreamingVerifyRejectsWrongMessage(t *testing.T) {
	var seed Seed
	seed[0] = 9
	kp := NewKeyPairFromSeed(seed)

	st, err := StartSigning(kp.SecretKey, nil)
	require.NoError(t, err)
	st.Absorb([]byte("original message"))
	sig, err := st.Sign()
	require.NoError(t, err)

	vst, err := StartVerifying(kp.PublicKey, sig)
	require.NoError(t, err)
	vst.Absorb([]byte("different message"))
	require.Error(t, vst.Verify())
}

func TestStreamingSignMatchesSingleShotVerify(t *testing.T) {
	var seed Seed
	seed[0] = 42
	kp := NewKeyPairFromSeed(seed)

	st, err := StartSigning(kp.SecretKey, nil)
	require.NoError(t, err)
	st.Absorb([]byte("entire message in one chunk"))
	sig, err := st.Sign()
	require.NoError(t, err)

	require.NoError(t, Verify(kp.PublicKey, []byte("entire message in one chunk"), sig))
}
