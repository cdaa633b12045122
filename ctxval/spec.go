// Package ctxval exposes the value types shared between the context adapters and the store clients.
package ctxval

// Field is a single named attribute of a 'Spec', for example a category, a display name or a timestamp.
type Field struct {
	// Name is the identifier for the field, unique within a spec.
	Name string

	// Value is the value for the field; conventions generally expect strings, or epoch millisecond timestamps
	// represented as an 'int64'.
	Value any
}

// Spec is an ordered mapping of named fields describing one logical stored item. Specs are produced/consumed by a
// 'naming.Convention' and should be treated as immutable; mutating functions return a copy.
type Spec []Field

// NewSpec returns a spec containing the given fields, in the order provided.
func NewSpec(fields ...Field) Spec {
	return Spec(fields)
}

// Get returns the value for the field with the given name, the boolean indicates whether the field existed.
func (s Spec) Get(name string) (any, bool) {
	for _, field := range s {
		if field.Name == name {
			return field.Value, true
		}
	}

	return nil, false
}

// GetString returns the value for the field with the given name as a string, the boolean indicates whether the field
// existed, and was a string.
func (s Spec) GetString(name string) (string, bool) {
	value, ok := s.Get(name)
	if !ok {
		return "", false
	}

	converted, ok := value.(string)

	return converted, ok
}

// With returns a copy of the spec with the given field appended, replacing any existing field with the same name in
// place.
func (s Spec) With(name string, value any) Spec {
	copied := make(Spec, len(s))
	copy(copied, s)

	for idx, field := range copied {
		if field.Name == name {
			copied[idx].Value = value
			return copied
		}
	}

	return append(copied, Field{Name: name, Value: value})
}
