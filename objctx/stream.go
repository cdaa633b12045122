package objctx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/seriate/ctxstore/ctxerr"
	"github.com/seriate/ctxstore/objcli"
)

// ErrStreamClosed is returned when writing to, or closing, an upload stream which has already been closed.
var ErrStreamClosed = errors.New("upload stream has already been closed")

// UploadStream is a single use byte sink bound to one destination key; bytes accumulate in memory and exactly one
// upload takes place on close. The remote object is therefore always either fully the previous version or fully the
// new version, never a byte-level mix.
//
// NOTE: Whole objects are buffered in memory by contract, bounding object size to the available process memory; this
// is a deliberate simplicity/memory tradeoff.
//
// NOTE: An upload stream is not safe for concurrent use by multiple goroutines.
type UploadStream struct {
	ctx    context.Context
	client objcli.Client
	bucket string
	key    string

	buffer bytes.Buffer
	closed bool
}

var _ io.WriteCloser = (*UploadStream)(nil)

// UploadStreamOptions encapsulates the options available when creating a new upload stream.
type UploadStreamOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: Required
	Client objcli.Client

	// Bucket is the destination bucket.
	//
	// NOTE: Required
	Bucket string

	// Key is the destination key.
	//
	// NOTE: Required
	Key string

	// Append seeds the stream with the current remote content, so that written bytes land after the existing ones;
	// when the object does not exist, append behaves as a normal create.
	Append bool
}

// NewUploadStream returns a new upload stream using the given options; when appending, the current remote content is
// read eagerly, and a failure to do so (for any reason other than the object not existing) aborts construction, no
// upload will take place on close.
func NewUploadStream(ctx context.Context, options UploadStreamOptions) (*UploadStream, error) {
	stream := &UploadStream{
		ctx:    ctx,
		client: options.Client,
		bucket: options.Bucket,
		key:    options.Key,
	}

	if !options.Append {
		return stream, nil
	}

	object, err := options.Client.GetObject(ctx, objcli.GetObjectOptions{Bucket: options.Bucket, Key: options.Key})
	if ctxerr.IsNotFoundError(err) {
		return stream, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read existing object: %w", err)
	}
	defer object.Body.Close()

	_, err = io.Copy(&stream.buffer, object.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to buffer existing object: %w", err)
	}

	return stream, nil
}

// Write accumulates the given bytes in memory; nothing is flushed to the store until 'Close'.
func (u *UploadStream) Write(p []byte) (int, error) {
	if u.closed {
		return 0, ErrStreamClosed
	}

	return u.buffer.Write(p)
}

// Close uploads the accumulated bytes as the object body; this is the only network write the stream ever performs,
// and the stream may not be reused afterwards.
func (u *UploadStream) Close() error {
	if u.closed {
		return ErrStreamClosed
	}

	u.closed = true

	err := u.client.PutObject(u.ctx, objcli.PutObjectOptions{
		Bucket: u.bucket,
		Key:    u.key,
		Body:   bytes.NewReader(u.buffer.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}

	return nil
}
