// Package x25519 implements the X25519 Diffie-Hellman function (RFC 7748)
// over Curve25519, including cofactor clearing, weak-key rejection, and a
// mapping from Ed25519 keys.
package x25519

import (
	"crypto/rand"
	"io"

	"github.com/zoobc/curve25519x/errs"
	"github.com/zoobc/curve25519x/internal/field"
	"github.com/zoobc/curve25519x/internal/memzero"
	"github.com/zoobc/curve25519x/internal/montgomery"
)

const (
	// PublicKeySize is the length in bytes of an X25519 public key.
	PublicKeySize = 32
	// SecretKeySize is the length in bytes of an X25519 secret key.
	SecretKeySize = 32
	// DHOutputSize is the length in bytes of a raw Diffie-Hellman output.
	DHOutputSize = 32
)

// PublicKey is a canonical Montgomery u-coordinate.
type PublicKey [PublicKeySize]byte

// SecretKey is a raw 32-byte scalar, prior to clamping.
type SecretKey [SecretKeySize]byte

// Wipe zeroizes the secret key in place.
func (s *SecretKey) Wipe() { memzero.Wipe32((*[32]byte)(s)) }

// DHOutput is the raw, non-uniform output of a scalar multiplication.
// Callers MUST hash it before using it as a cipher key; it is a distinct
// type from PublicKey/SecretKey to prevent accidental misuse as either.
type DHOutput [DHOutputSize]byte

// Wipe zeroizes the DH output in place.
func (d *DHOutput) Wipe() { memzero.Wipe32((*[32]byte)(d)) }

// KeyPair is an X25519 key pair.
type KeyPair struct {
	PublicKey PublicKey
	SecretKey SecretKey
}

var basePoint = PublicKey{9}

// BasePoint returns the canonical Curve25519 generator.
func BasePoint() PublicKey { return basePoint }

func clamp(s []byte) (out [32]byte) {
	copy(out[:], s)
	out[0] &= 248
	out[31] &= 63
	out[31] |= 64
	return
}

// GenerateKeyPair derives a key pair from 32 bytes read from r (or
// crypto/rand if r is nil).
func GenerateKeyPair(r io.Reader) (KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}
	var sk SecretKey
	if _, err := io.ReadFull(r, sk[:]); err != nil {
		return KeyPair{}, errs.New(errs.ErrInvalidSecretKey, "x25519: failed to read random secret key: "+err.Error())
	}
	pk, err := sk.PublicKey()
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{PublicKey: pk, SecretKey: sk}, nil
}

// PublicKey recovers the public key corresponding to sk by applying the
// clamped ladder to the base point.
func (sk SecretKey) PublicKey() (PublicKey, error) {
	clamped := clamp(sk[:])
	defer memzero.Wipe32(&clamped)

	out, ok := montgomery.LadderBits(basePoint[:], clamped[:], 255)
	if !ok {
		return PublicKey{}, errs.New(errs.ErrWeakPublicKey, "x25519: recovered public key is weak")
	}
	var pk PublicKey
	copy(pk[:], out[:])
	return pk, nil
}

// DH computes the clamped Diffie-Hellman shared secret between pk and sk,
// rejecting the result if it is weak (the identity u=0).
func DH(pk PublicKey, sk SecretKey) (DHOutput, error) {
	if !field.IsCanonical(pk[:]) {
		return DHOutput{}, errs.New(errs.ErrInvalidPublicKey, "x25519: public key is not canonically encoded")
	}

	clamped := clamp(sk[:])
	defer memzero.Wipe32(&clamped)

	out, ok := montgomery.LadderBits(pk[:], clamped[:], 255)
	if !ok {
		return DHOutput{}, errs.New(errs.ErrWeakPublicKey, "x25519: shared secret is weak")
	}
	var dh DHOutput
	copy(dh[:], out[:])
	return dh, nil
}

// ClearCofactor multiplies pk by the cofactor 8, returning an error if the
// result is the identity (indicating pk had order dividing 8 and is a
// small-order / weak public key).
func ClearCofactor(pk PublicKey) (PublicKey, error) {
	var cofactor [32]byte
	cofactor[0] = 8
	out, ok := montgomery.LadderBits(pk[:], cofactor[:], 4)
	if !ok {
		return PublicKey{}, errs.New(errs.ErrWeakPublicKey, "x25519: public key has order dividing the cofactor")
	}
	var cleared PublicKey
	copy(cleared[:], out[:])
	return cleared, nil
}

// UnclampedMul multiplies pk by sk WITHOUT clamping sk first, for callers
// that need a raw scalar multiply rather than the RFC 7748 DH function. pk
// is first checked with ClearCofactor to reject small-order inputs; the
// multiplication itself uses pk as given.
func UnclampedMul(pk PublicKey, sk SecretKey) (DHOutput, error) {
	if _, err := ClearCofactor(pk); err != nil {
		return DHOutput{}, err
	}
	out, ok := montgomery.LadderBits(pk[:], sk[:], 256)
	if !ok {
		return DHOutput{}, errs.New(errs.ErrWeakPublicKey, "x25519: unclamped multiplication result is weak")
	}
	var dh DHOutput
	copy(dh[:], out[:])
	return dh, nil
}

// RecoverPublicKey is an alias for SecretKey.PublicKey provided for
// parity with the secret-key-centric naming used elsewhere in this
// module's design notes.
func RecoverPublicKey(sk SecretKey) (PublicKey, error) { return sk.PublicKey() }

// ValidatePublicKey reports whether pk is the public counterpart of sk.
func ValidatePublicKey(sk SecretKey, pk PublicKey) error {
	recovered, err := sk.PublicKey()
	if err != nil {
		return err
	}
	if recovered != pk {
		return errs.New(errs.ErrInvalidPublicKey, "x25519: public key does not match secret key")
	}
	return nil
}
