package feed

import "errors"

// Sentinel errors surfaced to callers. Store failures are wrapped with %w
// and propagated unchanged; only these two are produced by this package.
var (
	// ErrUnauthenticated means a mutation was attempted without a
	// resolved current user.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrInvalidInput means a precondition on user-supplied fields
	// failed. The wrapping message names the field.
	ErrInvalidInput = errors.New("invalid input")
)
