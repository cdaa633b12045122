package ctxval

import (
	"io"
	"path"
	"time"
)

// ObjectAttrs represents the attributes usually attached to an object in the remote store.
type ObjectAttrs struct {
	// Key is the identifier for the object; a unique path.
	Key string

	// ETag is the HTTP entity tag for the object, each provider uses this differently.
	//
	// NOTE: Not populated during object iteration.
	ETag string

	// Size is the size or content length of the object in bytes.
	Size int64

	// LastModified is the time the object was last updated (or created).
	//
	// NOTE: A zero value paired with a zero 'Size' indicates the object does not exist; see 'Context.Info'.
	LastModified time.Time
}

// BaseName returns the final path segment of the objects key.
func (o *ObjectAttrs) BaseName() string {
	return path.Base(o.Key)
}

// Object represents an object stored in the remote store, simply the attributes and it's body.
type Object struct {
	ObjectAttrs

	// This body will generally be a HTTP response body; it should be read once, and closed to avoid resource leaks.
	Body io.ReadCloser
}

// ObjectPage is a single page of object attributes returned by a paginated list operation.
type ObjectPage struct {
	// Contents are the objects in this page, in store-provided order.
	Contents []*ObjectAttrs

	// NextContinuationToken is the opaque token which should be supplied to fetch the next page.
	NextContinuationToken string

	// Truncated indicates whether more pages exist; when 'false' the listing is complete.
	Truncated bool
}

// Entry pairs a spec produced by a listing with the raw attributes of its backing object. The attributes are an
// explicit side channel; callers holding an entry may consult them without another round trip to the store.
type Entry struct {
	Spec  Spec
	Attrs *ObjectAttrs
}

// TestBuckets represents a number of buckets, and is only used by the 'TestClient' to store state in memory.
type TestBuckets map[string]TestBucket

// TestBucket represents a bucket and is only used by the 'TestClient' to store objects in memory.
type TestBucket map[string]*TestObject

// TestObject represents an object and is only used by the 'TestClient'.
type TestObject struct {
	ObjectAttrs
	Body []byte
}
