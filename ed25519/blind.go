package ed25519

import (
	"github.com/zoobc/curve25519x/errs"
	"github.com/zoobc/curve25519x/internal/edwards25519"
	"github.com/zoobc/curve25519x/internal/memzero"
	"github.com/zoobc/curve25519x/internal/sha512ext"
)

const (
	// BlindSize is the length in bytes of a blinding factor.
	BlindSize = 32
	// BlindPublicKeySize is the length in bytes of a blinded public key.
	BlindPublicKeySize = 32
	// BlindSecretKeySize is the length in bytes of a blinded secret key:
	// 64-byte nonce prefix || 32-byte blind scalar || 32-byte blind public
	// key.
	BlindSecretKeySize = 128
)

// Blind is a secret blinding value used by the key-blinding extension.
type Blind [BlindSize]byte

// Wipe zeroizes the blinding value in place.
func (b *Blind) Wipe() { memzero.Wipe32((*[32]byte)(b)) }

// BlindPublicKey is the public half of a blinded key pair: the same
// 32-byte compressed Edwards point encoding as PublicKey, under a
// distinct name so the two are not interchangeable by accident.
type BlindPublicKey [BlindPublicKeySize]byte

// BlindSecretKey is the secret half of a blinded key pair.
type BlindSecretKey [BlindSecretKeySize]byte

// Wipe zeroizes the blind secret key in place.
func (s *BlindSecretKey) Wipe() { memzero.Wipe(s[:]) }

func (s *BlindSecretKey) prefix() []byte      { return s[0:64] }
func (s *BlindSecretKey) blindScalarBytes() []byte { return s[64:96] }
func (s *BlindSecretKey) blindPublicKeyBytes() []byte { return s[96:128] }

// deriveBlindFactor computes blind_factor and blind_prefix from a blinding
// value and domain-separation context, per §4.7: with digest =
// SHA-512(b || 0x00 || context), blind_factor is digest[0:32] reduced mod l
// and blind_prefix is digest[32:64].
func deriveBlindFactor(b Blind, context []byte) (factor edwards25519.Scalar, prefix [32]byte) {
	digest := sha512ext.Hash(b[:], []byte{0x00}, context)
	var wide [64]byte
	copy(wide[:32], digest[:32])
	factor.SetUniformBytes(wide[:])
	copy(prefix[:], digest[32:64])
	return
}

// BlindKeyPair derives a blinded key pair from an existing Ed25519 key
// pair, a blinding value, and a domain-separation context.
func BlindKeyPair(kp KeyPair, b Blind, context []byte) (BlindPublicKey, BlindSecretKey, error) {
	seed := kp.SecretKey.Seed()
	defer seed.Wipe()

	az := expand(seed)
	defer memzero.Wipe64(&az)

	var azScalar edwards25519.Scalar
	azScalar.SetBytesWithClamping(az[:32])

	blindFactor, blindPrefix := deriveBlindFactor(b, context)
	if blindFactor.IsZero() {
		return BlindPublicKey{}, BlindSecretKey{}, errs.New(errs.ErrInvalidBlind, "ed25519: blinding factor reduced to zero")
	}

	var blindScalar edwards25519.Scalar
	blindScalar.Multiply(&azScalar, &blindFactor)

	var blindPoint edwards25519.Point
	blindPoint.BlindMult(&blindScalar, edwards25519.NewGeneratorPoint())

	var bpk BlindPublicKey
	copy(bpk[:], blindPoint.Bytes())

	var bsk BlindSecretKey
	copy(bsk[0:32], az[32:64])
	copy(bsk[32:64], blindPrefix[:])
	copy(bsk[64:96], blindScalar.Bytes())
	copy(bsk[96:128], bpk[:])

	return bpk, bsk, nil
}

// UnblindPublicKey recovers the original public key from a blinded public
// key, the blinding value, and the domain-separation context used to
// create it.
func UnblindPublicKey(bpk BlindPublicKey, b Blind, context []byte) (PublicKey, error) {
	blindFactor, _ := deriveBlindFactor(b, context)
	if blindFactor.IsZero() {
		return PublicKey{}, errs.New(errs.ErrInvalidBlind, "ed25519: blinding factor reduced to zero")
	}

	var inv edwards25519.Scalar
	inv.Invert(&blindFactor)

	point, err := new(edwards25519.Point).SetBytes(bpk[:])
	if err != nil {
		return PublicKey{}, errs.New(errs.ErrInvalidPublicKey, "ed25519: blinded public key does not decode to a curve point")
	}

	var original edwards25519.Point
	original.BlindMult(&inv, point)

	var pk PublicKey
	copy(pk[:], original.Bytes())
	return pk, nil
}

// BlindSign produces a signature under a blinded secret key, following the
// §4.5 construction with the blind scalar and blend prefix in place of the
// ordinary clamped scalar and nonce prefix.
func BlindSign(bsk BlindSecretKey, message []byte, noise *Noise) (Signature, error) {
	var blindScalar edwards25519.Scalar
	if _, ok := blindScalar.SetCanonicalBytes(bsk.blindScalarBytes()); !ok {
		return Signature{}, errs.New(errs.ErrInvalidSecretKey, "ed25519: blind secret key carries a non-canonical scalar")
	}

	var nonceDigest [64]byte
	if noise != nil {
		nonceDigest = sha512ext.Hash(noise[:], bsk.prefix(), message)
	} else {
		nonceDigest = sha512ext.Hash(bsk.prefix(), message)
	}
	defer memzero.Wipe64(&nonceDigest)

	var nonceScalar edwards25519.Scalar
	nonceScalar.SetUniformBytes(nonceDigest[:])

	var R edwards25519.Point
	R.ScalarBaseMult(&nonceScalar)
	rBytes := R.Bytes()

	kDigest := sha512ext.Hash(rBytes, bsk.blindPublicKeyBytes(), message)
	var kScalar edwards25519.Scalar
	kScalar.SetUniformBytes(kDigest[:])

	var sScalar edwards25519.Scalar
	sScalar.MultiplyAdd(&kScalar, &blindScalar, &nonceScalar)

	var sig Signature
	copy(sig[:32], rBytes)
	copy(sig[32:], sScalar.Bytes())
	return sig, nil
}

// VerifyBlind verifies sig against message under a blinded public key. It
// is identical to Verify save for operating on the BlindPublicKey type.
func VerifyBlind(bpk BlindPublicKey, message []byte, sig Signature) error {
	var pk PublicKey
	copy(pk[:], bpk[:])
	return Verify(pk, message, sig)
}
