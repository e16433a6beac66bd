package domain

import "errors"

// Sentinel errors for the outcome taxonomy. Handlers map these to
// HTTP status codes; services never translate them.
var (
	// ErrNotFound means the entity does not resolve, or resolves but
	// is hidden from the viewer (an unpublished category behaves as
	// nonexistent).
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied means the entity exists but the viewer lacks
	// rights to act on it.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnauthenticated means a write path was called without a
	// viewer identity.
	ErrUnauthenticated = errors.New("authentication required")
)
