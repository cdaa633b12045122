package objctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/naming"
	"github.com/seriate/ctxstore/objcli"
)

// tickerConvention returns the convention used by tests; a category segment followed by a name/date segment with a
// '.log' suffix.
func tickerConvention(t *testing.T) naming.Convention {
	convention, err := naming.NewPattern(naming.PatternOptions{
		Segments: []naming.Segment{
			naming.NewSegment(naming.Field("type")),
			naming.NewSegment(naming.Field("name"), naming.Literal("_"), naming.Timestamp("ts", "2006-01-02")),
		},
		Suffix: ".log",
	})
	require.NoError(t, err)

	return convention
}

// tickerSpec returns the spec mapping to 'ticker/X_2019-04-21.log' under the test convention.
func tickerSpec() ctxval.Spec {
	return ctxval.NewSpec(
		ctxval.Field{Name: "type", Value: "ticker"},
		ctxval.Field{Name: "name", Value: "X"},
		ctxval.Field{Name: "ts", Value: int64(1555804800000)},
	)
}

// countingClient wraps a client counting the number of calls made to each operation.
type countingClient struct {
	objcli.Client

	getObject    int
	putObject    int
	deleteObject int
	listObjects  int
}

func (c *countingClient) GetObject(ctx context.Context, opts objcli.GetObjectOptions) (*ctxval.Object, error) {
	c.getObject++
	return c.Client.GetObject(ctx, opts)
}

func (c *countingClient) PutObject(ctx context.Context, opts objcli.PutObjectOptions) error {
	c.putObject++
	return c.Client.PutObject(ctx, opts)
}

func (c *countingClient) DeleteObject(ctx context.Context, opts objcli.DeleteObjectOptions) error {
	c.deleteObject++
	return c.Client.DeleteObject(ctx, opts)
}

func (c *countingClient) ListObjects(ctx context.Context, opts objcli.ListObjectsOptions) (*ctxval.ObjectPage, error) {
	c.listObjects++
	return c.Client.ListObjects(ctx, opts)
}

// errorClient fails every operation with the configured error.
type errorClient struct {
	err error
}

var _ objcli.Client = (*errorClient)(nil)

func (e *errorClient) Provider() ctxval.Provider {
	return ctxval.ProviderNone
}

func (e *errorClient) GetObject(context.Context, objcli.GetObjectOptions) (*ctxval.Object, error) {
	return nil, e.err
}

func (e *errorClient) GetObjectAttrs(context.Context, objcli.GetObjectAttrsOptions) (*ctxval.ObjectAttrs, error) {
	return nil, e.err
}

func (e *errorClient) PutObject(context.Context, objcli.PutObjectOptions) error {
	return e.err
}

func (e *errorClient) DeleteObject(context.Context, objcli.DeleteObjectOptions) error {
	return e.err
}

func (e *errorClient) ListObjects(context.Context, objcli.ListObjectsOptions) (*ctxval.ObjectPage, error) {
	return nil, e.err
}
