package objaws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// mockServiceAPI is a hand maintained 'testify' mock for the 'serviceAPI' interface.
type mockServiceAPI struct {
	mock.Mock
}

var _ serviceAPI = (*mockServiceAPI)(nil)

func (m *mockServiceAPI) GetObject(
	ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options),
) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)

	output, _ := args.Get(0).(*s3.GetObjectOutput)

	return output, args.Error(1)
}

func (m *mockServiceAPI) HeadObject(
	ctx context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options),
) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)

	output, _ := args.Get(0).(*s3.HeadObjectOutput)

	return output, args.Error(1)
}

func (m *mockServiceAPI) PutObject(
	ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)

	output, _ := args.Get(0).(*s3.PutObjectOutput)

	return output, args.Error(1)
}

func (m *mockServiceAPI) DeleteObject(
	ctx context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options),
) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)

	output, _ := args.Get(0).(*s3.DeleteObjectOutput)

	return output, args.Error(1)
}

func (m *mockServiceAPI) ListObjectsV2(
	ctx context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options),
) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params)

	output, _ := args.Get(0).(*s3.ListObjectsV2Output)

	return output, args.Error(1)
}
