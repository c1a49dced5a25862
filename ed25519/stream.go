package ed25519

import (
	"crypto/rand"

	"github.com/zoobc/curve25519x/errs"
	"github.com/zoobc/curve25519x/internal/edwards25519"
	"github.com/zoobc/curve25519x/internal/memzero"
	"github.com/zoobc/curve25519x/internal/sha512ext"
)

// SigningState is the incremental counterpart to Sign, for callers that
// want to absorb a message in chunks rather than hold it entirely in
// memory. Its nonce derivation necessarily differs from the single-shot
// path (§4.5, §9): because the message is not yet available when the
// nonce must be chosen, SigningState draws additional entropy from
// crypto/rand alongside any caller-supplied noise, so StartSigning
// followed by Absorb/Sign is NOT guaranteed to reproduce the output of
// Sign given the same noise and message, even though both are valid,
// non-repeating nonces.
type SigningState struct {
	azScalar edwards25519.Scalar
	hasher   *sha512ext.Digest
	pk       PublicKey
	az       [64]byte
	done     bool
}

// StartSigning begins an incremental signature over sk. noise, if
// non-nil, is folded into the nonce derivation alongside freshly drawn
// entropy.
func StartSigning(sk SecretKey, noise *Noise) (*SigningState, error) {
	seed := sk.Seed()
	defer seed.Wipe()

	az := expand(seed)

	var azScalar edwards25519.Scalar
	azScalar.SetBytesWithClamping(az[:32])

	var entropy [32]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		return nil, errs.New(errs.ErrInvalidNoise, "ed25519: failed to draw entropy for streaming nonce: "+err.Error())
	}
	defer memzero.Wipe32(&entropy)

	nonceHasher := sha512ext.New()
	if noise != nil {
		nonceHasher.Update(noise[:])
	}
	nonceHasher.Update(entropy[:])
	nonceHasher.Update(az[:64])
	nonceDigest := nonceHasher.Finalize()
	defer memzero.Wipe64(&nonceDigest)

	var nonceScalar edwards25519.Scalar
	nonceScalar.SetUniformBytes(nonceDigest[:])

	var R edwards25519.Point
	R.ScalarBaseMult(&nonceScalar)
	rBytes := R.Bytes()

	pk := sk.PublicKey()

	hasher := sha512ext.New()
	hasher.Update(rBytes)
	hasher.Update(pk[:])

	st := &SigningState{
		azScalar: azScalar,
		hasher:   hasher,
		pk:       pk,
	}
	// Stash r_bytes and the nonce scalar for Sign(); reuse az's storage to
	// avoid a second secret-bearing field.
	copy(st.az[:32], rBytes)
	st.nonceScalarBytes(&nonceScalar)
	return st, nil
}

// nonceScalarBytes stashes the nonce scalar encoding into the unused
// second half of az, since az itself is no longer needed after azScalar
// has been clamped and extracted.
func (s *SigningState) nonceScalarBytes(n *edwards25519.Scalar) {
	copy(s.az[32:64], n.Bytes())
}

func (s *SigningState) nonceScalar() edwards25519.Scalar {
	var n edwards25519.Scalar
	n.SetUniformBytes(append(append([]byte{}, s.az[32:64]...), make([]byte, 32)...))
	return n
}

// Absorb feeds more message bytes into the in-progress signature.
func (s *SigningState) Absorb(chunk []byte) {
	if s.done {
		panic("ed25519: Absorb called after Sign")
	}
	s.hasher.Update(chunk)
}

// Sign finalizes the incremental signature over everything absorbed so
// far. The SigningState must not be reused afterward.
func (s *SigningState) Sign() (Signature, error) {
	if s.done {
		panic("ed25519: Sign called twice")
	}
	s.done = true
	defer memzero.Wipe64(&s.az)

	kDigest := s.hasher.Finalize()
	var kScalar edwards25519.Scalar
	kScalar.SetUniformBytes(kDigest[:])

	nonceScalar := s.nonceScalar()

	var sScalar edwards25519.Scalar
	sScalar.MultiplyAdd(&kScalar, &s.azScalar, &nonceScalar)

	var sig Signature
	copy(sig[:32], s.az[:32])
	copy(sig[32:], sScalar.Bytes())

	// SelfVerify hardening is not applied here: the original message
	// bytes are never retained by SigningState, only their hash, so
	// re-verifying would require the caller to replay the same chunks
	// through a VerifyingState explicitly.
	return sig, nil
}

// VerifyingState is the incremental counterpart to Verify.
type VerifyingState struct {
	hasher *sha512ext.Digest
	R      *edwards25519.Point
	negA   *edwards25519.Point
	rBytes [32]byte
	sig    Signature
	done   bool
}

// StartVerifying performs the message-independent setup of Verify
// (decoding R and pk) and begins absorbing message bytes.
func StartVerifying(pk PublicKey, sig Signature) (*VerifyingState, error) {
	sBytes := sig[32:64]
	var sScalar edwards25519.Scalar
	if _, ok := sScalar.SetCanonicalBytes(sBytes); !ok {
		return nil, errs.New(errs.ErrInvalidSignature, "ed25519: signature S component is not canonical")
	}

	negA, err := decompressPublicKey(pk)
	if err != nil {
		return nil, err
	}
	negA.Negate(negA)

	R, err := new(edwards25519.Point).SetBytes(sig[:32])
	if err != nil {
		return nil, errs.New(errs.ErrInvalidSignature, "ed25519: R component does not decode to a curve point")
	}

	hasher := sha512ext.New()
	hasher.Update(sig[:32])
	hasher.Update(pk[:])

	st := &VerifyingState{
		hasher: hasher,
		R:      R,
		negA:   negA,
		sig:    sig,
	}
	copy(st.rBytes[:], sig[:32])
	return st, nil
}

// Absorb feeds more message bytes into the in-progress verification.
func (s *VerifyingState) Absorb(chunk []byte) {
	if s.done {
		panic("ed25519: Absorb called after Verify")
	}
	s.hasher.Update(chunk)
}

// Verify finalizes the incremental verification over everything absorbed
// so far.
func (s *VerifyingState) Verify() error {
	if s.done {
		panic("ed25519: Verify called twice")
	}
	s.done = true

	kDigest := s.hasher.Finalize()
	var kScalar edwards25519.Scalar
	kScalar.SetUniformBytes(kDigest[:])

	var sScalar edwards25519.Scalar
	sScalar.SetCanonicalBytes(s.sig[32:64])

	var Rprime edwards25519.Point
	Rprime.VarTimeDoubleScalarBaseMult(&kScalar, s.negA, &sScalar)

	var diff edwards25519.Point
	diff.Subtract(s.R, &Rprime)
	if !diff.IsSmallOrder() {
		return errs.New(errs.ErrSignatureMismatch, "ed25519: signature does not verify")
	}
	return nil
}
