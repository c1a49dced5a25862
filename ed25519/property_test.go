package ed25519

import (
	"testing"

	"pgregory.net/rapid"
)

func seedGen(t *rapid.T) Seed {
	var seed Seed
	b := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "seed")
	copy(seed[:], b)
	allZero := true
	for _, x := range seed {
		if x != 0 {
			allZero = false
		}
	}
	if allZero {
		seed[0] = 1
	}
	return seed
}

func TestPropertySignThenVerify(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := seedGen(t)
		message := rapid.SliceOfN(rapid.Byte(), 0, 128).Draw(t, "message")

		kp := NewKeyPairFromSeed(seed)
		sig, err := Sign(kp.SecretKey, message, nil)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		if err := Verify(kp.PublicKey, message, sig); err != nil {
			t.Fatalf("verify failed: %v", err)
		}
	})
}

func TestPropertyTamperedMessageFailsVerify(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := seedGen(t)
		message := rapid.SliceOfN(rapid.Byte(), 1, 64).Draw(t, "message")
		idx := rapid.IntRange(0, len(message)-1).Draw(t, "idx")

		kp := NewKeyPairFromSeed(seed)
		sig, err := Sign(kp.SecretKey, message, nil)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}

		tampered := append([]byte{}, message...)
		tampered[idx] ^= 0xFF

		if err := Verify(kp.PublicKey, tampered, sig); err == nil {
			t.Fatalf("verify unexpectedly succeeded on tampered message")
		}
	})
}

func TestPropertyDeterministicWithoutNoise(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := seedGen(t)
		message := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "message")

		kp := NewKeyPairFromSeed(seed)
		sig1, err := Sign(kp.SecretKey, message, nil)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		sig2, err := Sign(kp.SecretKey, message, nil)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		if sig1 != sig2 {
			t.Fatalf("deterministic signing produced different signatures")
		}
	})
}

func TestPropertyNoiseVariantsBothVerify(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := seedGen(t)
		message := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "message")
		n1b := rapid.SliceOfN(rapid.Byte(), NoiseSize, NoiseSize).Draw(t, "n1")
		n2b := rapid.SliceOfN(rapid.Byte(), NoiseSize, NoiseSize).Draw(t, "n2")

		var n1, n2 Noise
		copy(n1[:], n1b)
		copy(n2[:], n2b)

		kp := NewKeyPairFromSeed(seed)

		sig1, err := Sign(kp.SecretKey, message, &n1)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		sig2, err := Sign(kp.SecretKey, message, &n2)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}

		if err := Verify(kp.PublicKey, message, sig1); err != nil {
			t.Fatalf("verify failed for n1: %v", err)
		}
		if err := Verify(kp.PublicKey, message, sig2); err != nil {
			t.Fatalf("verify failed for n2: %v", err)
		}
	})
}

func TestPropertyRoundTripPointEncoding(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := seedGen(t)
		kp := NewKeyPairFromSeed(seed)

		A, err := decompressPublicKey(kp.PublicKey)
		if err != nil {
			t.Fatalf("decompress failed: %v", err)
		}
		reencoded := A.Bytes()
		for i := range reencoded {
			if reencoded[i] != kp.PublicKey[i] {
				t.Fatalf("round trip mismatch at byte %d", i)
			}
		}
	})
}
