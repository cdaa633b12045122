package naming

import (
	"fmt"
	"strings"

	"github.com/seriate/ctxstore/ctxerr"
	"github.com/seriate/ctxstore/ctxval"
)

const (
	// DefaultScheme is the scheme used by the path literal convention when one isn't provided.
	DefaultScheme = "store"

	// DefaultField is the name of the spec field the path literal convention reads/writes.
	DefaultField = "path"
)

// PathLiteral is the default convention; it recognizes/produces specs holding a single field containing a path of the
// literal form 'store://bucket/seg1/seg2/...'.
type PathLiteral struct {
	prefix string
	field  string
}

var _ Convention = (*PathLiteral)(nil)

// PathLiteralOptions encapsulates the options available when creating a new path literal convention.
type PathLiteralOptions struct {
	// Bucket is the bucket all accepted paths must address.
	//
	// NOTE: Required
	Bucket string

	// Scheme overrides the scheme accepted paths must carry, defaults to 'store'.
	Scheme string

	// Field overrides the name of the spec field the convention reads/writes, defaults to 'path'.
	Field string
}

// defaults fills any missing attributes to a sane default.
func (p *PathLiteralOptions) defaults() {
	if p.Scheme == "" {
		p.Scheme = DefaultScheme
	}

	if p.Field == "" {
		p.Field = DefaultField
	}
}

// NewPathLiteral returns a new path literal convention for the given bucket.
func NewPathLiteral(options PathLiteralOptions) *PathLiteral {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	return &PathLiteral{
		prefix: options.Scheme + "://" + options.Bucket + "/",
		field:  options.Field,
	}
}

func (p *PathLiteral) SpecToPath(spec ctxval.Spec) ([]string, error) {
	value, ok := spec.GetString(p.field)
	if !ok {
		return nil, fmt.Errorf("spec does not contain a '%s' field", p.field)
	}

	if !strings.HasPrefix(value, p.prefix) {
		return nil, &ctxerr.InvalidPathError{Expected: p.prefix, Path: value}
	}

	return strings.Split(strings.TrimPrefix(value, p.prefix), "/"), nil
}

func (p *PathLiteral) PathToSpec(segments []string) (ctxval.Spec, error) {
	return ctxval.NewSpec(ctxval.Field{Name: p.field, Value: p.prefix + strings.Join(segments, "/")}), nil
}
