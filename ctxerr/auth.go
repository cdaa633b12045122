package ctxerr

import "errors"

var (
	// ErrUnauthenticated is returned if we've sent a request to the store and received a response indicating that
	// we're unauthenticated i.e. an invalid access key or a bad signature.
	ErrUnauthenticated = errors.New("failed to authenticate, please check that valid credentials have been provided")

	// ErrUnauthorized is returned if we've successfully authenticated against the store, however, we've attempted an
	// operation where we don't have the valid permissions.
	ErrUnauthorized = errors.New("authenticated user does not have the permission to access this resource")
)
