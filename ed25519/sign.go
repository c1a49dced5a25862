package ed25519

import (
	"github.com/zoobc/curve25519x/errs"
	"github.com/zoobc/curve25519x/internal/edwards25519"
	"github.com/zoobc/curve25519x/internal/memzero"
	"github.com/zoobc/curve25519x/internal/sha512ext"
)

// SelfVerify controls whether Sign re-verifies every signature it produces
// before returning it (§4.5 "self-verify hardening"). It defaults to off;
// set it to true process-wide to harden against fault injection during
// scalar multiplication, at roughly double the signing cost.
var SelfVerify = false

// Sign produces a deterministic-plus-noise Ed25519 signature over message
// under sk. When noise is nil the signature is fully deterministic (RFC
// 8032 classic EdDSA); when non-nil, noise is domain-separating randomness
// folded into the nonce derivation and MUST NOT repeat across signatures
// under the same key.
func Sign(sk SecretKey, message []byte, noise *Noise) (Signature, error) {
	seed := sk.Seed()
	defer seed.Wipe()

	az := expand(seed)
	defer memzero.Wipe64(&az)

	var azScalar edwards25519.Scalar
	azScalar.SetBytesWithClamping(az[:32])

	var nonceDigest [64]byte
	if noise != nil {
		nonceDigest = sha512ext.Hash(noise[:], az[:64], message)
	} else {
		nonceDigest = sha512ext.Hash(az[32:64], message)
	}
	defer memzero.Wipe64(&nonceDigest)

	var nonceScalar edwards25519.Scalar
	nonceScalar.SetUniformBytes(nonceDigest[:])

	var R edwards25519.Point
	R.ScalarBaseMult(&nonceScalar)
	rBytes := R.Bytes()

	pk := sk.PublicKey()

	kDigest := sha512ext.Hash(rBytes, pk[:], message)
	var kScalar edwards25519.Scalar
	kScalar.SetUniformBytes(kDigest[:])

	var sScalar edwards25519.Scalar
	sScalar.MultiplyAdd(&kScalar, &azScalar, &nonceScalar)

	var sig Signature
	copy(sig[:32], rBytes)
	copy(sig[32:], sScalar.Bytes())

	if SelfVerify {
		if err := Verify(pk, message, sig); err != nil {
			panic("ed25519: self-verify failed after signing: " + err.Error())
		}
	}

	return sig, nil
}

// Verify checks sig against message and pk, following the cofactored
// acceptance test mandated for this implementation: it decompresses R,
// computes R' = S*G + k*(-A), and accepts iff R - R' has small order
// (rather than requiring R and R' to be byte-identical). This tolerates R
// points that share a torsion coset with R', matching RFC 8032's verifier.
func Verify(pk PublicKey, message []byte, sig Signature) error {
	sBytes := sig[32:64]
	var sScalar edwards25519.Scalar
	if _, ok := sScalar.SetCanonicalBytes(sBytes); !ok {
		return errs.New(errs.ErrInvalidSignature, "ed25519: signature S component is not canonical")
	}

	negA, err := decompressPublicKey(pk)
	if err != nil {
		return err
	}
	negA.Negate(negA)

	kDigest := sha512ext.Hash(sig[:32], pk[:], message)
	var kScalar edwards25519.Scalar
	kScalar.SetUniformBytes(kDigest[:])

	var Rprime edwards25519.Point
	Rprime.VarTimeDoubleScalarBaseMult(&kScalar, negA, &sScalar)

	R, err := new(edwards25519.Point).SetBytes(sig[:32])
	if err != nil {
		return errs.New(errs.ErrInvalidSignature, "ed25519: R component does not decode to a curve point")
	}

	var diff edwards25519.Point
	diff.Subtract(R, &Rprime)
	if !diff.IsSmallOrder() {
		return errs.New(errs.ErrSignatureMismatch, "ed25519: signature does not verify")
	}
	return nil
}
