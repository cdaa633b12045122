// Package naming exposes the bidirectional conventions which convert a spec into an ordered sequence of path
// segments, and back again. Conventions are pure; they never touch the network.
package naming

import (
	"github.com/seriate/ctxstore/ctxval"
)

// Convention converts between a spec and the ordered path segments used to address its backing object.
//
// Implementations must round-trip: for any spec accepted by 'SpecToPath', feeding the produced segments into
// 'PathToSpec' must yield an equal spec (up to the fields the convention models).
type Convention interface {
	// SpecToPath converts the given spec into an ordered sequence of path segments.
	//
	// NOTE: Segments must be non-empty, and must not contain the path separator.
	SpecToPath(spec ctxval.Spec) ([]string, error)

	// PathToSpec converts an ordered sequence of path segments back into a spec.
	PathToSpec(segments []string) (ctxval.Spec, error)
}
