package objminio

import (
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// mockCoreAPI is a hand maintained 'testify' mock for the 'coreAPI' interface.
type mockCoreAPI struct {
	mock.Mock
}

var _ coreAPI = (*mockCoreAPI)(nil)

func (m *mockCoreAPI) GetObject(
	ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions,
) (io.ReadCloser, minio.ObjectInfo, http.Header, error) {
	args := m.Called(ctx, bucketName, objectName, opts)

	body, _ := args.Get(0).(io.ReadCloser)
	info, _ := args.Get(1).(minio.ObjectInfo)
	header, _ := args.Get(2).(http.Header)

	return body, info, header, args.Error(3)
}

func (m *mockCoreAPI) StatObject(
	ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions,
) (minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName, opts)

	info, _ := args.Get(0).(minio.ObjectInfo)

	return info, args.Error(1)
}

func (m *mockCoreAPI) PutObject(
	ctx context.Context, bucket, object string, data io.Reader, size int64, md5Base64, sha256Hex string,
	opts minio.PutObjectOptions,
) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucket, object, data, size, md5Base64, sha256Hex, opts)

	info, _ := args.Get(0).(minio.UploadInfo)

	return info, args.Error(1)
}

func (m *mockCoreAPI) RemoveObject(
	ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions,
) error {
	args := m.Called(ctx, bucketName, objectName, opts)

	return args.Error(0)
}

func (m *mockCoreAPI) ListObjectsV2(
	bucketName, objectPrefix, startAfter, continuationToken, delimiter string, maxkeys int,
) (minio.ListBucketV2Result, error) {
	args := m.Called(bucketName, objectPrefix, startAfter, continuationToken, delimiter, maxkeys)

	result, _ := args.Get(0).(minio.ListBucketV2Result)

	return result, args.Error(1)
}
