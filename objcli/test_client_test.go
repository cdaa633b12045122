package objcli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seriate/ctxstore/ctxerr"
	"github.com/seriate/ctxstore/ctxval"
)

func TestTestClientGetObject(t *testing.T) {
	client := NewTestClient(t, ctxval.ProviderNone)

	require.NoError(t, client.PutObject(context.Background(), PutObjectOptions{
		Bucket: "bucket",
		Key:    "key",
		Body:   strings.NewReader("body"),
	}))

	object, err := client.GetObject(context.Background(), GetObjectOptions{Bucket: "bucket", Key: "key"})
	require.NoError(t, err)
	require.Equal(t, "key", object.Key)
	require.EqualValues(t, 4, object.Size)
	require.NotEmpty(t, object.ETag)

	_, err = client.GetObject(context.Background(), GetObjectOptions{Bucket: "bucket", Key: "missing"})
	require.True(t, ctxerr.IsNotFoundError(err))
}

func TestTestClientGetObjectAttrs(t *testing.T) {
	client := NewTestClient(t, ctxval.ProviderNone)

	require.NoError(t, client.PutObject(context.Background(), PutObjectOptions{
		Bucket: "bucket",
		Key:    "key",
		Body:   strings.NewReader("body"),
	}))

	attrs, err := client.GetObjectAttrs(context.Background(), GetObjectAttrsOptions{Bucket: "bucket", Key: "key"})
	require.NoError(t, err)
	require.Equal(t, "key", attrs.Key)
	require.EqualValues(t, 4, attrs.Size)
}

func TestTestClientDeleteObject(t *testing.T) {
	client := NewTestClient(t, ctxval.ProviderNone)

	require.NoError(t, client.PutObject(context.Background(), PutObjectOptions{
		Bucket: "bucket",
		Key:    "key",
		Body:   strings.NewReader("body"),
	}))

	require.NoError(t, client.DeleteObject(context.Background(), DeleteObjectOptions{Bucket: "bucket", Key: "key"}))
	require.NotContains(t, client.Buckets["bucket"], "key")

	// Deleting a missing key is not an error
	require.NoError(t, client.DeleteObject(context.Background(), DeleteObjectOptions{Bucket: "bucket", Key: "key"}))
}

func TestTestClientListObjects(t *testing.T) {
	client := NewTestClient(t, ctxval.ProviderNone)

	for i := 0; i < 5; i++ {
		require.NoError(t, client.PutObject(context.Background(), PutObjectOptions{
			Bucket: "bucket",
			Key:    fmt.Sprintf("prefix/%d", i),
			Body:   strings.NewReader("body"),
		}))
	}

	require.NoError(t, client.PutObject(context.Background(), PutObjectOptions{
		Bucket: "bucket",
		Key:    "other/0",
		Body:   strings.NewReader("body"),
	}))

	page, err := client.ListObjects(context.Background(), ListObjectsOptions{Bucket: "bucket", Prefix: "prefix/"})
	require.NoError(t, err)
	require.Len(t, page.Contents, 5)
	require.False(t, page.Truncated)
	require.Empty(t, page.NextContinuationToken)
}

func TestTestClientListObjectsPagination(t *testing.T) {
	client := NewTestClient(t, ctxval.ProviderNone)

	for i := 0; i < 5; i++ {
		require.NoError(t, client.PutObject(context.Background(), PutObjectOptions{
			Bucket: "bucket",
			Key:    fmt.Sprintf("key-%d", i),
			Body:   strings.NewReader("body"),
		}))
	}

	var (
		keys  []string
		token string
	)

	for {
		page, err := client.ListObjects(context.Background(), ListObjectsOptions{
			Bucket:            "bucket",
			MaxKeys:           2,
			ContinuationToken: token,
		})
		require.NoError(t, err)
		require.LessOrEqual(t, len(page.Contents), 2)

		for _, attrs := range page.Contents {
			keys = append(keys, attrs.Key)
		}

		if !page.Truncated {
			break
		}

		token = page.NextContinuationToken
	}

	require.Equal(t, []string{"key-0", "key-1", "key-2", "key-3", "key-4"}, keys)
}

func TestTestClientListObjectsMissingBucket(t *testing.T) {
	client := NewTestClient(t, ctxval.ProviderNone)

	page, err := client.ListObjects(context.Background(), ListObjectsOptions{Bucket: "bucket"})
	require.NoError(t, err)
	require.Empty(t, page.Contents)
	require.False(t, page.Truncated)
}
