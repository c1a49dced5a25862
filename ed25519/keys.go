// Package ed25519 implements the Ed25519 signature scheme (RFC 8032) over
// edwards25519, including an incremental/streaming sign and verify path,
// optional self-verify hardening, and an optional key-blinding extension.
package ed25519

import (
	"crypto/rand"
	"io"

	"github.com/zoobc/curve25519x/errs"
	"github.com/zoobc/curve25519x/internal/edwards25519"
	"github.com/zoobc/curve25519x/internal/memzero"
	"github.com/zoobc/curve25519x/internal/sha512ext"
)

const (
	// SeedSize is the length in bytes of an Ed25519 seed.
	SeedSize = 32
	// PublicKeySize is the length in bytes of an Ed25519 public key.
	PublicKeySize = 32
	// SecretKeySize is the length in bytes of an Ed25519 secret key (seed
	// concatenated with its public key).
	SecretKeySize = 64
	// SignatureSize is the length in bytes of an Ed25519 signature.
	SignatureSize = 64
	// NoiseSize is the length in bytes of optional signing noise.
	NoiseSize = 16
)

// Seed is the sole secret input a key pair is deterministically derived
// from.
type Seed [SeedSize]byte

// Wipe zeroizes the seed in place.
func (s *Seed) Wipe() { memzero.Wipe32((*[32]byte)(s)) }

// PublicKey is a compressed Edwards point, 32 bytes.
type PublicKey [PublicKeySize]byte

// SecretKey is Seed || PublicKey, 64 bytes.
type SecretKey [SecretKeySize]byte

// Wipe zeroizes the secret key in place.
func (s *SecretKey) Wipe() { memzero.Wipe64((*[64]byte)(s)) }

// Seed returns the seed half of the secret key.
func (s *SecretKey) Seed() Seed {
	var seed Seed
	copy(seed[:], s[:32])
	return seed
}

// PublicKey returns the public-key half of the secret key.
func (s *SecretKey) PublicKey() PublicKey {
	var pk PublicKey
	copy(pk[:], s[32:])
	return pk
}

// Signature is R (32 bytes) || S (32 bytes).
type Signature [SignatureSize]byte

// Noise is optional domain-separating randomness mixed into nonce
// derivation.
type Noise [NoiseSize]byte

// Wipe zeroizes the noise in place.
func (n *Noise) Wipe() { memzero.Wipe(n[:]) }

// KeyPair is a derived Ed25519 key pair.
type KeyPair struct {
	PublicKey PublicKey
	SecretKey SecretKey
}

// expand computes az = SHA-512(seed), returning the clamped secret scalar
// material in az[0:32] and the nonce prefix in az[32:64], per RFC 8032
// section 5.1.5 step 1.
func expand(seed Seed) (az [64]byte) {
	az = sha512ext.Hash(seed[:])
	az[0] &= 248
	az[31] &= 63
	az[31] |= 64
	return
}

// NewKeyPairFromSeed deterministically derives a key pair from seed. An
// all-zero seed is a programmer error (it can never yield a meaningful
// key) and panics, matching the "fatal condition" failure model for key
// derivation.
func NewKeyPairFromSeed(seed Seed) KeyPair {
	allZero := true
	for _, b := range seed {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		panic("ed25519: all-zero seed")
	}

	az := expand(seed)
	defer memzero.Wipe64(&az)

	var scalar edwards25519.Scalar
	scalar.SetBytesWithClamping(az[:32])

	var A edwards25519.Point
	A.ScalarBaseMult(&scalar)

	var pk PublicKey
	copy(pk[:], A.Bytes())

	var sk SecretKey
	copy(sk[:32], seed[:])
	copy(sk[32:], pk[:])

	return KeyPair{PublicKey: pk, SecretKey: sk}
}

// GenerateKeyPair derives a key pair from 32 bytes read from a
// cryptographically secure random source. This is the OPTIONAL
// convenience path referenced by §6; callers needing to avoid blocking
// should supply their own seed via NewKeyPairFromSeed.
func GenerateKeyPair(r io.Reader) (KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}
	var seed Seed
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return KeyPair{}, errs.New(errs.ErrInvalidSeed, "ed25519: failed to read random seed: "+err.Error())
	}
	defer seed.Wipe()
	return NewKeyPairFromSeed(seed), nil
}

// decompressPublicKey validates and decompresses pk, rejecting the
// all-zero encoding and the identity element per §4.9's fatal-condition
// list.
func decompressPublicKey(pk PublicKey) (*edwards25519.Point, error) {
	allZero := true
	for _, b := range pk {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, errs.New(errs.ErrWeakPublicKey, "ed25519: all-zero public key")
	}

	A, err := new(edwards25519.Point).SetBytes(pk[:])
	if err != nil {
		return nil, errs.New(errs.ErrInvalidPublicKey, "ed25519: public key does not decode to a curve point")
	}
	if A.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, errs.New(errs.ErrWeakPublicKey, "ed25519: public key is the identity element")
	}
	if A.IsSmallOrder() {
		return nil, errs.New(errs.ErrWeakPublicKey, "ed25519: public key has small order")
	}
	return A, nil
}
