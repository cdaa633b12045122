// Package objcli exposes a unified 'Client' interface for accessing/managing objects stored in a remote key/object
// store; dedicated bindings for each supported store live in the sub-packages.
package objcli

import (
	"context"
	"io"

	"github.com/seriate/ctxstore/ctxval"
)

// PageSize is the default page size used when listing objects.
const PageSize = 1000

//go:generate mockery --name Client --case underscore --inpackage

// GetObjectOptions encapsulates the options available when using the 'GetObject' function.
type GetObjectOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string
}

// GetObjectAttrsOptions encapsulates the options available when using the 'GetObjectAttrs' function.
type GetObjectAttrsOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string
}

// PutObjectOptions encapsulates the options available when using the 'PutObject' function.
type PutObjectOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string

	// Body is the data that will be uploaded.
	//
	// NOTE: Required to be a 'ReadSeeker' to support content length/checksum calculation.
	Body io.ReadSeeker
}

// DeleteObjectOptions encapsulates the options available when using the 'DeleteObject' function.
type DeleteObjectOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object being operated on.
	Key string
}

// ListObjectsOptions encapsulates the options available when using the 'ListObjects' function.
type ListObjectsOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Prefix limits the listing to keys beginning with the given prefix.
	Prefix string

	// MaxKeys limits the number of objects returned in a single page, defaults to 'PageSize'.
	MaxKeys int

	// ContinuationToken is the opaque token returned by a previous page; empty for the first page.
	ContinuationToken string
}

// Client is a unified interface for accessing/managing objects stored in a remote key/object store.
//
// NOTE: Listing is exposed a page at a time; 'objctx.ObjectIterator' lazily follows continuation tokens on behalf of
// consumers which want a whole listing.
type Client interface {
	// Provider returns the storage provider this client is interfacing with.
	Provider() ctxval.Provider

	// GetObject retrieves an object from the store.
	//
	// NOTE: The returned objects body must be closed to avoid resource leaks.
	GetObject(ctx context.Context, opts GetObjectOptions) (*ctxval.Object, error)

	// GetObjectAttrs returns general metadata about the object with the given key.
	GetObjectAttrs(ctx context.Context, opts GetObjectAttrsOptions) (*ctxval.ObjectAttrs, error)

	// PutObject creates an object in the store with the given key; the upload is a single request, the object is
	// either fully the previous version or fully the new version, never a mix.
	PutObject(ctx context.Context, opts PutObjectOptions) error

	// DeleteObject deletes the object with the given key; deleting a key which does not exist is a no-op.
	DeleteObject(ctx context.Context, opts DeleteObjectOptions) error

	// ListObjects returns a single page of object attributes, in store-provided order, along with the continuation
	// token required to fetch the next page.
	ListObjects(ctx context.Context, opts ListObjectsOptions) (*ctxval.ObjectPage, error)
}
