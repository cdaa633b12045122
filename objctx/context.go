// Package objctx adapts the logical context abstraction, a mapping between specs and flat storage locations, onto a
// remote key/object store: key naming, paginated listing, buffered upload streams, metadata lookup and guarded
// deletion.
package objctx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/seriate/ctxstore/ctxerr"
	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/naming"
	"github.com/seriate/ctxstore/objcli"
)

// Context is the object store backed context; a façade composing the naming convention, key joiner, object iterator
// and upload stream. A context is immutable once constructed and holds no mutable state, concurrent calls from
// multiple goroutines are independent.
type Context struct {
	client     objcli.Client
	convention naming.Convention
	bucket     string
	root       string
	endpoint   string
	logger     *slog.Logger
}

// ContextOptions encapsulates the options available when creating a new context.
type ContextOptions struct {
	// Client is the store client backing the context.
	//
	// NOTE: Required
	Client objcli.Client

	// Bucket is the bucket holding the contexts objects.
	//
	// NOTE: Required
	Bucket string

	// Convention converts between specs and path segments, defaults to the path literal convention for 'Bucket'.
	Convention naming.Convention

	// Root is an optional path prefix beneath which all the contexts objects live; empty or "." mean the whole
	// bucket.
	Root string

	// Endpoint is surfaced in resolved locations when provided; it is not used to perform requests.
	Endpoint string

	// Logger is the passed logger which implements a custom Log method
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (c *ContextOptions) defaults() {
	if c.Convention == nil {
		c.Convention = naming.NewPathLiteral(naming.PathLiteralOptions{Bucket: c.Bucket})
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// NewContext returns a new context using the given options.
func NewContext(options ContextOptions) *Context {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	root := strings.Trim(options.Root, "/")
	if root == "." {
		root = ""
	}

	ctx := Context{
		client:     options.Client,
		convention: options.Convention,
		bucket:     options.Bucket,
		root:       root,
		endpoint:   options.Endpoint,
		logger:     options.Logger,
	}

	return &ctx
}

// Key returns the derived key for the given spec; this is a local computation, no network calls take place.
func (c *Context) Key(spec ctxval.Spec) (string, error) {
	segments, err := c.convention.SpecToPath(spec)
	if err != nil {
		return "", err // Purposefully not wrapped
	}

	return JoinKey(c.root, segments...), nil
}

// Resolve returns the store-native address for the given spec; this is a local computation, no network calls take
// place.
func (c *Context) Resolve(spec ctxval.Spec) (*ctxval.Location, error) {
	key, err := c.Key(spec)
	if err != nil {
		return nil, err
	}

	return &ctxval.Location{Bucket: c.bucket, Key: key, Endpoint: c.endpoint}, nil
}

// Open returns a reader over the contents of the object backing the given spec.
//
// NOTE: The returned reader must be closed to avoid resource leaks.
func (c *Context) Open(ctx context.Context, spec ctxval.Spec) (io.ReadCloser, error) {
	key, err := c.Key(spec)
	if err != nil {
		return nil, err
	}

	object, err := c.client.GetObject(ctx, objcli.GetObjectOptions{Bucket: c.bucket, Key: key})
	if err != nil {
		return nil, err // Purposefully not wrapped
	}

	return object.Body, nil
}

// CreateOptions encapsulates the options available when using the 'Create' function.
type CreateOptions struct {
	// Append seeds the returned stream with the current remote content; see 'UploadStreamOptions.Append'.
	Append bool
}

// Create returns a single use write stream which uploads its contents to the object backing the given spec when
// closed.
func (c *Context) Create(ctx context.Context, spec ctxval.Spec, opts CreateOptions) (io.WriteCloser, error) {
	key, err := c.Key(spec)
	if err != nil {
		return nil, err
	}

	return NewUploadStream(ctx, UploadStreamOptions{
		Client: c.client,
		Bucket: c.bucket,
		Key:    key,
		Append: opts.Append,
	})
}

// Info returns the size/last modified time of the object backing the given spec. Absence is not an error; a spec with
// no backing object returns zero valued attributes.
//
// NOTE: Callers which have just listed the context already hold these attributes on the returned entries, and need
// not pay for another round trip here.
func (c *Context) Info(ctx context.Context, spec ctxval.Spec) (*ctxval.ObjectAttrs, error) {
	key, err := c.Key(spec)
	if err != nil {
		return nil, err
	}

	it := NewObjectIterator(ctx, ObjectIteratorOptions{Client: c.client, Bucket: c.bucket, Prefix: key})

	for it.Next() {
		if it.Object().Key != key {
			continue
		}

		attrs := *it.Object()

		return &attrs, nil
	}

	if err := it.Err(); err != nil {
		return nil, err // Purposefully not wrapped
	}

	return &ctxval.ObjectAttrs{Key: key}, nil
}

// ListOptions encapsulates the options available when listing a context.
type ListOptions struct {
	// Strict surfaces key to spec conversion failures as a 'ctxerr.ConversionError' instead of silently dropping the
	// offending objects.
	Strict bool
}

// Entries returns a lazy iterator over the specs stored in the context; objects of size zero are treated as directory
// placeholders, not items, and are skipped.
func (c *Context) Entries(ctx context.Context, opts ListOptions) *EntryIterator {
	return &EntryIterator{
		objects:    NewObjectIterator(ctx, ObjectIteratorOptions{Client: c.client, Bucket: c.bucket, Prefix: c.prefix()}),
		convention: c.convention,
		root:       c.root,
		strict:     opts.Strict,
	}
}

// List collects and returns all the entries in the context; see 'Entries' for the lazy equivalent.
func (c *Context) List(ctx context.Context, opts ListOptions) ([]ctxval.Entry, error) {
	entries := make([]ctxval.Entry, 0)

	it := c.Entries(ctx, opts)

	for it.Next() {
		entries = append(entries, *it.Entry())
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete removes the whole context from the store. Deletion is guarded: the context is first enumerated strictly, and
// deletion is refused both when the enumeration fails (the emptiness of the context could not be verified) and when
// the enumeration yields any item. Only directory placeholders may remain once the guard passes.
//
// NOTE: Deletion is not transactional; a failure mid-sweep leaves a partially deleted tree.
func (c *Context) Delete(ctx context.Context) error {
	entries, err := c.List(ctx, ListOptions{Strict: true})
	if err != nil {
		return ctxerr.NewVerificationFailedError(err)
	}

	if len(entries) > 0 {
		keys := make([]string, 0, len(entries))

		for _, entry := range entries {
			keys = append(keys, entry.Attrs.Key)
		}

		return &ctxerr.NotEmptyError{Keys: keys}
	}

	c.logger.Debug("deleting context", "bucket", c.bucket, "prefix", c.prefix())

	// Sweep the raw listing without the spec conversion filter, to also catch the directory placeholders
	it := NewObjectIterator(ctx, ObjectIteratorOptions{Client: c.client, Bucket: c.bucket, Prefix: c.prefix()})

	for it.Next() {
		err := c.client.DeleteObject(ctx, objcli.DeleteObjectOptions{Bucket: c.bucket, Key: it.Object().Key})
		if err != nil {
			return fmt.Errorf("failed to delete object '%s': %w", it.Object().Key, err)
		}
	}

	return it.Err()
}

// DeleteSpec removes exactly the object backing the given spec; deleting a spec with no backing object is a no-op,
// matching the semantics of the underlying stores.
func (c *Context) DeleteSpec(ctx context.Context, spec ctxval.Spec) error {
	key, err := c.Key(spec)
	if err != nil {
		return err
	}

	return c.client.DeleteObject(ctx, objcli.DeleteObjectOptions{Bucket: c.bucket, Key: key})
}

// prefix returns the listing prefix for the context; the trailing separator ensures a root of 't' does not match
// objects beneath 'toys/'.
func (c *Context) prefix() string {
	if c.root == "" {
		return ""
	}

	return c.root + "/"
}
