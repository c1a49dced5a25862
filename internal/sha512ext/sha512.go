// Package sha512ext adapts the standard library's crypto/sha512 to the
// narrow New/Update/Finalize/Hash contract the signing and verification
// state machines are written against, so the streaming Ed25519 API can
// treat the hash function as a pluggable collaborator rather than a
// concrete stdlib type.
package sha512ext

import "crypto/sha512"

// Digest is an incremental SHA-512 hash state.
type Digest struct {
	h sha512ext
}

type sha512ext = interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
}

// New returns a fresh, empty SHA-512 digest.
func New() *Digest {
	return &Digest{h: sha512.New()}
}

// Update feeds more data into the digest.
func (d *Digest) Update(p []byte) {
	_, _ = d.h.Write(p)
}

// Finalize returns the 64-byte SHA-512 digest of all data written so far.
// The Digest must not be reused after Finalize.
func (d *Digest) Finalize() [64]byte {
	var out [64]byte
	copy(out[:], d.h.Sum(nil))
	return out
}

// Hash is a convenience one-shot SHA-512 over a set of byte slices,
// concatenated in order, used for the fixed-shape hashes in Sign/Verify
// (e.g. sha512(R || A || M)).
func Hash(parts ...[]byte) [64]byte {
	d := New()
	for _, p := range parts {
		d.Update(p)
	}
	return d.Finalize()
}
