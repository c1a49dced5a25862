// Package errs defines the typed error taxonomy returned by the ed25519
// and x25519 packages. Errors are identified by a comparable ErrorKind so
// callers can branch with errors.Is instead of string matching, following
// the same pattern used for signature errors in the broader secp256k1/ECC
// Go ecosystem.
package errs

// ErrorKind identifies a class of error without carrying any
// instance-specific detail, so it can be compared with ==  or errors.Is.
type ErrorKind string

const (
	// ErrSignatureMismatch means a signature did not verify against the
	// given public key and message.
	ErrSignatureMismatch = ErrorKind("ErrSignatureMismatch")

	// ErrWeakPublicKey means a public key lies in the small-order subgroup
	// (an Ed25519 key, including the all-zero encoding and the identity, or
	// an X25519 key, including an Ed25519 key mapped to X25519), or a
	// scalar multiplication otherwise produced the identity.
	ErrWeakPublicKey = ErrorKind("ErrWeakPublicKey")

	// ErrInvalidPublicKey means a public key had the wrong length, was not
	// canonically encoded, failed point decompression, or did not
	// correspond to the given secret key.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidSecretKey means a secret key had the wrong length or
	// internal structure, or random bytes for a new secret key could not
	// be read.
	ErrInvalidSecretKey = ErrorKind("ErrInvalidSecretKey")

	// ErrInvalidSignature means a signature had the wrong length, its S
	// component was not a canonical scalar, or its R component failed to
	// decompress.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrInvalidSeed means a seed had the wrong length or could not be read
	// from the random source. An all-zero seed is not reported with this
	// kind: NewKeyPairFromSeed panics on it.
	ErrInvalidSeed = ErrorKind("ErrInvalidSeed")

	// ErrInvalidNoise means caller-supplied signing noise had the wrong
	// length, or the extra entropy for a streaming signature could not be
	// drawn.
	ErrInvalidNoise = ErrorKind("ErrInvalidNoise")

	// ErrInvalidBlind means a key-blinding factor had the wrong length or
	// reduced to a degenerate (zero or non-invertible) scalar.
	ErrInvalidBlind = ErrorKind("ErrInvalidBlind")

	// ErrNonCanonical means a scalar or field element encoding was not the
	// unique canonical representative of its residue class.
	ErrNonCanonical = ErrorKind("ErrNonCanonical")

	// ErrParse means a PEM/DER or other structured encoding could not be
	// parsed.
	ErrParse = ErrorKind("ErrParse")
)

// Error returns the kind's string form, satisfying the error interface so
// an ErrorKind can be compared against an Error's wrapped kind with
// errors.Is.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error is the concrete error type returned by this module's packages: a
// classification (Err) that is stable across versions, plus a
// human-readable Description with call-specific detail.
type Error struct {
	Err         ErrorKind
	Description string
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying ErrorKind, allowing errors.Is(err,
// errs.ErrWeakPublicKey) to succeed against a wrapping Error value.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same ErrorKind as e.Err, supporting
// errors.Is without needing Unwrap to allocate.
func (e Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	if !ok {
		return false
	}
	return e.Err == kind
}

// New constructs an Error of the given kind with a description.
func New(kind ErrorKind, description string) Error {
	return Error{Err: kind, Description: description}
}
