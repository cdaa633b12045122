package ctxerr

import "errors"

// ErrEndpointResolutionFailed is returned if we've failed to resolve the store endpoint for some reason.
var ErrEndpointResolutionFailed = errors.New("store endpoint domain name resolution failed, " +
	"check region/endpoint are valid")
