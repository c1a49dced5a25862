package x25519

import (
	"github.com/zoobc/curve25519x/ed25519"
	"github.com/zoobc/curve25519x/errs"
	"github.com/zoobc/curve25519x/internal/edwards25519"
	"github.com/zoobc/curve25519x/internal/field"
	"github.com/zoobc/curve25519x/internal/memzero"
	"github.com/zoobc/curve25519x/internal/sha512ext"
)

// SecretKeyFromEd25519 converts an Ed25519 secret key's seed into the
// corresponding X25519 secret key, per §4.8: clamp(SHA-512(seed)[0:32]).
func SecretKeyFromEd25519(sk ed25519.SecretKey) SecretKey {
	seed := sk.Seed()
	defer seed.Wipe()

	digest := sha512ext.Hash(seed[:])
	defer memzero.Wipe64(&digest)

	clamped := clamp(digest[:32])
	var out SecretKey
	copy(out[:], clamped[:])
	return out
}

// PublicKeyFromEd25519 converts an Ed25519 public key into the X25519
// public key that would be generated from the same private key, via the
// birational map u = (1+y)/(1-y) on the decompressed Edwards y-coordinate,
// rejecting inputs that do not decompress or whose cofactor-cleared image
// is the identity.
func PublicKeyFromEd25519(pk ed25519.PublicKey) (PublicKey, error) {
	A, err := new(edwards25519.Point).SetBytes(pk[:])
	if err != nil {
		return PublicKey{}, errs.New(errs.ErrInvalidPublicKey, "x25519: ed25519 public key does not decode to a curve point")
	}

	y := A.YCoordinate()

	var one, numerator, denominator field.Element
	one.One()
	numerator.Add(&one, y)
	denominator.Subtract(&one, y)

	var denomInv, u field.Element
	denomInv.Invert(&denominator)
	u.Multiply(&numerator, &denomInv)

	var out PublicKey
	copy(out[:], u.Bytes())

	if _, err := ClearCofactor(out); err != nil {
		return PublicKey{}, err
	}
	return out, nil
}
