package objminio

import (
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
)

//go:generate mockery --all --case underscore --inpackage

// coreAPI is the minimal subset of functions that we use from the MinIO 'Core' API, this allows for a greatly reduce
// surface area for mock generation.
//
// NOTE: The 'Core' API is used over the higher level client because it exposes raw 'ListObjectsV2' continuation
// tokens, which pagination is built on.
//
//nolint:lll
type coreAPI interface {
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, minio.ObjectInfo, http.Header, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PutObject(ctx context.Context, bucket, object string, data io.Reader, size int64, md5Base64, sha256Hex string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	ListObjectsV2(bucketName, objectPrefix, startAfter, continuationToken, delimiter string, maxkeys int) (minio.ListBucketV2Result, error)
}
