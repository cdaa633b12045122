package objcli

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/seriate/ctxstore/ctxerr"
	"github.com/seriate/ctxstore/ctxval"
)

// TestClient implementation of the 'Client' interface which stores state in memory, and can be used to avoid having to
// manually mock a client during unit testing.
type TestClient struct {
	t        *testing.T
	lock     sync.RWMutex
	provider ctxval.Provider

	// Buckets is the in memory state maintained by the client. Internally, access is guarded by a mutex, however, it's
	// not safe/recommended to access this attribute whilst a test is running; it should only be used to inspect state
	// (to perform assertions) once testing is complete.
	Buckets ctxval.TestBuckets
}

var _ Client = (*TestClient)(nil)

// NewTestClient returns a new test client, which has no buckets/objects.
func NewTestClient(t *testing.T, provider ctxval.Provider) *TestClient {
	return &TestClient{
		t:        t,
		provider: provider,
		Buckets:  make(ctxval.TestBuckets),
	}
}

func (t *TestClient) Provider() ctxval.Provider {
	return t.provider
}

func (t *TestClient) GetObject(_ context.Context, opts GetObjectOptions) (*ctxval.Object, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	object, err := t.getObjectRLocked(opts.Bucket, opts.Key)
	if err != nil {
		return nil, err
	}

	return &ctxval.Object{
		ObjectAttrs: object.ObjectAttrs,
		Body:        io.NopCloser(strings.NewReader(string(object.Body))),
	}, nil
}

func (t *TestClient) GetObjectAttrs(_ context.Context, opts GetObjectAttrsOptions) (*ctxval.ObjectAttrs, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	object, err := t.getObjectRLocked(opts.Bucket, opts.Key)
	if err != nil {
		return nil, err
	}

	attrs := object.ObjectAttrs

	return &attrs, nil
}

func (t *TestClient) PutObject(_ context.Context, opts PutObjectOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.putObjectLocked(opts.Bucket, opts.Key, opts.Body)

	return nil
}

func (t *TestClient) DeleteObject(_ context.Context, opts DeleteObjectOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	delete(t.getBucketLocked(opts.Bucket), opts.Key)

	return nil
}

func (t *TestClient) ListObjects(_ context.Context, opts ListObjectsOptions) (*ctxval.ObjectPage, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	maxKeys := opts.MaxKeys
	if maxKeys <= 0 {
		maxKeys = PageSize
	}

	var (
		bucket = t.Buckets[opts.Bucket]
		keys   = maps.Keys(bucket)
	)

	slices.Sort(keys)

	remaining := make([]string, 0, len(keys))

	for _, key := range keys {
		if strings.HasPrefix(key, opts.Prefix) && key > opts.ContinuationToken {
			remaining = append(remaining, key)
		}
	}

	page := &ctxval.ObjectPage{Contents: make([]*ctxval.ObjectAttrs, 0, maxKeys)}

	for _, key := range remaining[:min(maxKeys, len(remaining))] {
		attrs := bucket[key].ObjectAttrs
		page.Contents = append(page.Contents, &attrs)
	}

	if len(remaining) > maxKeys {
		page.NextContinuationToken = page.Contents[len(page.Contents)-1].Key
		page.Truncated = true
	}

	return page, nil
}

func (t *TestClient) getBucketLocked(bucket string) ctxval.TestBucket {
	_, ok := t.Buckets[bucket]
	if !ok {
		t.Buckets[bucket] = make(ctxval.TestBucket)
	}

	return t.Buckets[bucket]
}

// NOTE: Buckets are automatically created by the test client when they're required, so this function returns an object
// not found error if either the bucket/object don't exist.
func (t *TestClient) getObjectRLocked(bucket, key string) (*ctxval.TestObject, error) {
	b, ok := t.Buckets[bucket]
	if !ok {
		return nil, &ctxerr.NotFoundError{Type: "object", Name: key}
	}

	o, ok := b[key]
	if !ok {
		return nil, &ctxerr.NotFoundError{Type: "object", Name: key}
	}

	return o, nil
}

func (t *TestClient) putObjectLocked(bucket, key string, body io.ReadSeeker) {
	data, err := io.ReadAll(body)
	require.NoError(t.t, err)

	attrs := ctxval.ObjectAttrs{
		Key:          key,
		ETag:         strings.ReplaceAll(uuid.NewString(), "-", ""),
		Size:         int64(len(data)),
		LastModified: time.Now(),
	}

	t.getBucketLocked(bucket)[key] = &ctxval.TestObject{
		ObjectAttrs: attrs,
		Body:        data,
	}
}
