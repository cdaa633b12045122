package objctx

import (
	"strings"

	"github.com/seriate/ctxstore/ctxerr"
	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/naming"
)

// EntryIterator lazily converts the objects beneath a context into entries, pairing each spec with the raw attributes
// of its backing object; see 'Context.Entries'. The usage pattern matches 'ObjectIterator'.
type EntryIterator struct {
	objects    *ObjectIterator
	convention naming.Convention
	root       string
	strict     bool

	entry *ctxval.Entry
	err   error
}

// Next advances the iterator to the next entry; it returns 'false' once the listing is exhausted, or an error has
// occurred.
func (e *EntryIterator) Next() bool {
	if e.err != nil {
		return false
	}

	for e.objects.Next() {
		attrs := e.objects.Object()

		// Zero length objects are directory placeholders, not items
		if attrs.Size == 0 {
			continue
		}

		spec, err := e.convert(attrs.Key)
		if err != nil {
			if !e.strict {
				continue
			}

			e.err = ctxerr.NewConversionError(attrs.Key, err)

			return false
		}

		copied := *attrs
		e.entry = &ctxval.Entry{Spec: spec, Attrs: &copied}

		return true
	}

	e.err = e.objects.Err()

	return false
}

// Entry returns the current entry; only valid after a call to 'Next' which returned 'true'.
func (e *EntryIterator) Entry() *ctxval.Entry {
	return e.entry
}

// Err returns the first error encountered whilst iterating, if any.
func (e *EntryIterator) Err() error {
	return e.err
}

// convert parses the given key back into a spec via the owning contexts naming convention.
func (e *EntryIterator) convert(key string) (ctxval.Spec, error) {
	trimmed := key
	if e.root != "" {
		trimmed = strings.TrimPrefix(trimmed, e.root+"/")
	}

	return e.convention.PathToSpec(strings.Split(trimmed, "/"))
}
