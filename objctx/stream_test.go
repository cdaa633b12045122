package objctx

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/objcli"
)

func TestUploadStream(t *testing.T) {
	var (
		client   = objcli.NewTestClient(t, ctxval.ProviderNone)
		counting = &countingClient{Client: client}
	)

	stream, err := NewUploadStream(context.Background(), UploadStreamOptions{
		Client: counting,
		Bucket: "bucket",
		Key:    "key",
	})
	require.NoError(t, err)

	_, err = stream.Write([]byte("Hello, "))
	require.NoError(t, err)

	_, err = stream.Write([]byte("World!"))
	require.NoError(t, err)

	// Nothing is uploaded until close
	require.Zero(t, counting.putObject)

	require.NoError(t, stream.Close())
	require.Equal(t, 1, counting.putObject)

	require.Equal(t, []byte("Hello, World!"), client.Buckets["bucket"]["key"].Body)
}

func TestUploadStreamEmptyObject(t *testing.T) {
	client := objcli.NewTestClient(t, ctxval.ProviderNone)

	stream, err := NewUploadStream(context.Background(), UploadStreamOptions{
		Client: client,
		Bucket: "bucket",
		Key:    "key",
	})
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	// Closing without writing still creates the (empty) object
	require.Empty(t, client.Buckets["bucket"]["key"].Body)
}

func TestUploadStreamAppend(t *testing.T) {
	client := objcli.NewTestClient(t, ctxval.ProviderNone)

	require.NoError(t, client.PutObject(context.Background(), objcli.PutObjectOptions{
		Bucket: "bucket",
		Key:    "key",
		Body:   strings.NewReader("Hello"),
	}))

	stream, err := NewUploadStream(context.Background(), UploadStreamOptions{
		Client: client,
		Bucket: "bucket",
		Key:    "key",
		Append: true,
	})
	require.NoError(t, err)

	_, err = stream.Write([]byte(", World!"))
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	require.Equal(t, []byte("Hello, World!"), client.Buckets["bucket"]["key"].Body)
}

func TestUploadStreamAppendObjectMissing(t *testing.T) {
	client := objcli.NewTestClient(t, ctxval.ProviderNone)

	stream, err := NewUploadStream(context.Background(), UploadStreamOptions{
		Client: client,
		Bucket: "bucket",
		Key:    "key",
		Append: true,
	})
	require.NoError(t, err)

	_, err = stream.Write([]byte("Hello, World!"))
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	require.Equal(t, []byte("Hello, World!"), client.Buckets["bucket"]["key"].Body)
}

func TestUploadStreamAppendSeedFailure(t *testing.T) {
	counting := &countingClient{Client: &errorClient{err: assert.AnError}}

	_, err := NewUploadStream(context.Background(), UploadStreamOptions{
		Client: counting,
		Bucket: "bucket",
		Key:    "key",
		Append: true,
	})
	require.ErrorIs(t, err, assert.AnError)
	require.Zero(t, counting.putObject)
}

func TestUploadStreamSingleUse(t *testing.T) {
	var (
		client   = objcli.NewTestClient(t, ctxval.ProviderNone)
		counting = &countingClient{Client: client}
	)

	stream, err := NewUploadStream(context.Background(), UploadStreamOptions{
		Client: counting,
		Bucket: "bucket",
		Key:    "key",
	})
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	_, err = stream.Write([]byte("too late"))
	require.ErrorIs(t, err, ErrStreamClosed)

	require.ErrorIs(t, stream.Close(), ErrStreamClosed)

	// Only the first close uploads
	require.Equal(t, 1, counting.putObject)
	require.Empty(t, client.Buckets["bucket"]["key"].Body)
}
