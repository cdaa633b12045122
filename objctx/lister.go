package objctx

import (
	"context"

	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/objcli"
)

// ObjectIterator lazily iterates over the objects beneath a prefix, transparently following continuation tokens; a
// new page is only fetched once the consumer has exhausted the previous one, so an early terminated iteration issues
// no further calls to the store.
//
// The usage pattern mirrors 'bufio.Scanner':
//
//	it := NewObjectIterator(ctx, ObjectIteratorOptions{Client: client, Bucket: "bucket", Prefix: "prefix"})
//
//	for it.Next() {
//	    _ = it.Object()
//	}
//
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// NOTE: Iterators are not safe for concurrent use, and iterate a live listing; objects created/deleted mid-iteration
// may or may not be observed.
type ObjectIterator struct {
	ctx     context.Context
	client  objcli.Client
	bucket  string
	prefix  string
	maxKeys int

	page      []*ctxval.ObjectAttrs
	idx       int
	token     string
	truncated bool
	started   bool

	object *ctxval.ObjectAttrs
	err    error
}

// ObjectIteratorOptions encapsulates the options available when creating a new object iterator.
type ObjectIteratorOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: Required
	Client objcli.Client

	// Bucket is the bucket being iterated.
	//
	// NOTE: Required
	Bucket string

	// Prefix limits iteration to keys beginning with the given prefix.
	Prefix string

	// MaxKeys limits the page size used for the underlying list calls, defaults to 'objcli.PageSize'.
	MaxKeys int
}

// NewObjectIterator returns a new object iterator; no list call is made until the first call to 'Next'.
func NewObjectIterator(ctx context.Context, options ObjectIteratorOptions) *ObjectIterator {
	return &ObjectIterator{
		ctx:     ctx,
		client:  options.Client,
		bucket:  options.Bucket,
		prefix:  options.Prefix,
		maxKeys: options.MaxKeys,
	}
}

// Next advances the iterator to the next object, fetching the next page from the store when required; it returns
// 'false' once the listing is exhausted, or an error has occurred.
func (o *ObjectIterator) Next() bool {
	if o.err != nil {
		return false
	}

	// Loop, rather than a single fetch, since the store is permitted to return empty pages mid-listing
	for o.idx >= len(o.page) {
		if o.started && !o.truncated {
			return false
		}

		if !o.fetch() {
			return false
		}
	}

	o.object = o.page[o.idx]
	o.idx++

	return true
}

// Object returns the attributes of the current object; only valid after a call to 'Next' which returned 'true'.
func (o *ObjectIterator) Object() *ctxval.ObjectAttrs {
	return o.object
}

// Err returns the first error encountered whilst iterating, if any.
func (o *ObjectIterator) Err() error {
	return o.err
}

// fetch pulls the next page from the store, the returned boolean indicates success.
func (o *ObjectIterator) fetch() bool {
	page, err := o.client.ListObjects(o.ctx, objcli.ListObjectsOptions{
		Bucket:            o.bucket,
		Prefix:            o.prefix,
		MaxKeys:           o.maxKeys,
		ContinuationToken: o.token,
	})
	if err != nil {
		o.err = err
		return false
	}

	o.started = true
	o.page, o.idx = page.Contents, 0
	o.token, o.truncated = page.NextContinuationToken, page.Truncated

	return true
}
