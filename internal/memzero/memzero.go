// Package memzero provides best-effort secure erasure of secret-bearing
// byte buffers, the Go analogue of the volatile-write-plus-fence wipe used
// throughout the Rust implementation this package's callers are modeled on.
package memzero

import "runtime"

// Wipe overwrites b with zeros. Go has no volatile-write primitive, so this
// relies on the loop being a visible memory write followed by
// runtime.KeepAlive to prevent the compiler from proving the store dead and
// eliding it; it is not a defense against determined cold-boot or
// swap-file extraction, only against accidental retention on the Go heap.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Wipe32 is Wipe specialized for the common 32-byte secret size (seeds,
// clamped scalars, shared secrets).
func Wipe32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Wipe64 is Wipe specialized for 64-byte secrets (expanded secret keys,
// signatures-in-progress holding R||S).
func Wipe64(b *[64]byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
