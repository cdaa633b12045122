package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seriate/ctxstore/ctxval"
)

// ErrNoSegments is returned when creating a pattern convention without any segments.
var ErrNoSegments = errors.New("a pattern convention requires at least one segment")

// Segment is an ordered group of atoms which formats/parses a single path segment.
type Segment struct {
	atoms []Atom
}

// NewSegment returns a segment composed of the given atoms, applied in order.
func NewSegment(atoms ...Atom) Segment {
	return Segment{atoms: atoms}
}

// validate ensures the segment can be parsed unambiguously; captures must be delimited by literals.
func (s Segment) validate() error {
	if len(s.atoms) == 0 {
		return errors.New("segment contains no atoms")
	}

	var pending bool

	for _, atom := range s.atoms {
		_, ok := atom.(capture)
		if !ok {
			pending = false
			continue
		}

		if pending {
			return errors.New("segment contains adjacent captures with no literal delimiter")
		}

		pending = true
	}

	return nil
}

func (s Segment) format(spec ctxval.Spec) (string, error) {
	var builder strings.Builder

	for _, atom := range s.atoms {
		formatted, err := atom.format(spec)
		if err != nil {
			return "", err
		}

		builder.WriteString(formatted)
	}

	return builder.String(), nil
}

func (s Segment) parse(text string) ([]ctxval.Field, error) {
	var (
		fields  = make([]ctxval.Field, 0, len(s.atoms))
		pending capture
	)

	for _, atom := range s.atoms {
		literal, ok := atom.(literalAtom)
		if !ok {
			pending = atom.(capture)
			continue
		}

		idx := strings.Index(text, literal.text)
		if idx == -1 {
			return nil, fmt.Errorf("segment does not contain expected literal '%s'", literal.text)
		}

		if pending == nil && idx != 0 {
			return nil, fmt.Errorf("unexpected text '%s' before literal '%s'", text[:idx], literal.text)
		}

		if pending != nil {
			field, err := pending.parse(text[:idx])
			if err != nil {
				return nil, err
			}

			fields, pending = append(fields, field), nil
		}

		text = text[idx+len(literal.text):]
	}

	if pending == nil {
		if text != "" {
			return nil, fmt.Errorf("unexpected trailing text '%s'", text)
		}

		return fields, nil
	}

	field, err := pending.parse(text)
	if err != nil {
		return nil, err
	}

	return append(fields, field), nil
}

// Pattern is a convention composed from per-segment atom templates, with an optional suffix appended to the final
// segment; the composable counterpart to the 'PathLiteral' convention.
type Pattern struct {
	segments []Segment
	suffix   string
}

var _ Convention = (*Pattern)(nil)

// PatternOptions encapsulates the options available when creating a new pattern convention.
type PatternOptions struct {
	// Segments are the per-path-segment templates, applied in order.
	//
	// NOTE: Required
	Segments []Segment

	// Suffix is appended to the final segment when formatting e.g. '.log', and stripped when parsing.
	Suffix string
}

// NewPattern returns a new pattern convention using the given options.
func NewPattern(options PatternOptions) (*Pattern, error) {
	if len(options.Segments) == 0 {
		return nil, ErrNoSegments
	}

	for _, segment := range options.Segments {
		if err := segment.validate(); err != nil {
			return nil, err
		}
	}

	return &Pattern{segments: options.Segments, suffix: options.Suffix}, nil
}

func (p *Pattern) SpecToPath(spec ctxval.Spec) ([]string, error) {
	segments := make([]string, 0, len(p.segments))

	for _, segment := range p.segments {
		formatted, err := segment.format(spec)
		if err != nil {
			return nil, err
		}

		if formatted == "" {
			return nil, errors.New("convention produced an empty path segment")
		}

		segments = append(segments, formatted)
	}

	segments[len(segments)-1] += p.suffix

	return segments, nil
}

func (p *Pattern) PathToSpec(segments []string) (ctxval.Spec, error) {
	if len(segments) != len(p.segments) {
		return nil, fmt.Errorf("expected %d path segments, got %d", len(p.segments), len(segments))
	}

	last, ok := strings.CutSuffix(segments[len(segments)-1], p.suffix)
	if !ok {
		return nil, fmt.Errorf("segment '%s' does not end with expected suffix '%s'", segments[len(segments)-1],
			p.suffix)
	}

	trimmed := make([]string, len(segments))
	copy(trimmed, segments)
	trimmed[len(trimmed)-1] = last

	spec := make(ctxval.Spec, 0, len(trimmed))

	for idx, segment := range p.segments {
		fields, err := segment.parse(trimmed[idx])
		if err != nil {
			return nil, err
		}

		spec = append(spec, fields...)
	}

	return spec, nil
}
