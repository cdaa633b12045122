package naming

import (
	"fmt"
	"time"

	"github.com/seriate/ctxstore/ctxval"
)

// Atom is a single composable element of a 'Pattern' segment; either a capture (a field/timestamp extracted from the
// spec) or a fixed literal delimiting the captures around it.
type Atom interface {
	format(spec ctxval.Spec) (string, error)
}

// capture is the subset of atoms which consume a portion of a path segment, producing a spec field.
type capture interface {
	Atom
	parse(text string) (ctxval.Field, error)
}

type literalAtom struct {
	text string
}

// Literal returns an atom which always formats to the given fixed text; during parsing it acts as the delimiter
// between the captures either side of it.
func Literal(text string) Atom {
	return literalAtom{text: text}
}

func (l literalAtom) format(_ ctxval.Spec) (string, error) {
	return l.text, nil
}

type fieldAtom struct {
	name string
}

// Field returns an atom which extracts the named field from the spec, formatting it verbatim.
func Field(name string) Atom {
	return fieldAtom{name: name}
}

func (f fieldAtom) format(spec ctxval.Spec) (string, error) {
	value, ok := spec.Get(f.name)
	if !ok {
		return "", fmt.Errorf("spec does not contain a '%s' field", f.name)
	}

	return fmt.Sprintf("%v", value), nil
}

func (f fieldAtom) parse(text string) (ctxval.Field, error) {
	if text == "" {
		return ctxval.Field{}, fmt.Errorf("empty value for field '%s'", f.name)
	}

	return ctxval.Field{Name: f.name, Value: text}, nil
}

type timestampAtom struct {
	name   string
	layout string
}

// Timestamp returns an atom which extracts the named field from the spec, formatting it using the given reference
// layout. The field value may be a 'time.Time', or an epoch millisecond timestamp; parsed values are always epoch
// millisecond timestamps in UTC.
func Timestamp(name, layout string) Atom {
	return timestampAtom{name: name, layout: layout}
}

func (t timestampAtom) format(spec ctxval.Spec) (string, error) {
	value, ok := spec.Get(t.name)
	if !ok {
		return "", fmt.Errorf("spec does not contain a '%s' field", t.name)
	}

	switch converted := value.(type) {
	case time.Time:
		return converted.UTC().Format(t.layout), nil
	case int64:
		return time.UnixMilli(converted).UTC().Format(t.layout), nil
	case int:
		return time.UnixMilli(int64(converted)).UTC().Format(t.layout), nil
	}

	return "", fmt.Errorf("field '%s' is not a timestamp", t.name)
}

func (t timestampAtom) parse(text string) (ctxval.Field, error) {
	parsed, err := time.Parse(t.layout, text)
	if err != nil {
		return ctxval.Field{}, fmt.Errorf("failed to parse timestamp for field '%s': %w", t.name, err)
	}

	return ctxval.Field{Name: t.name, Value: parsed.UnixMilli()}, nil
}
