// Package objminio provides an implementation of 'objcli.Client' for use with MinIO, or any S3 compatible store
// reachable over a custom endpoint.
package objminio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/objcli"
)

// Client implements the 'objcli.Client' interface allowing the creation/management of objects stored in MinIO.
type Client struct {
	coreAPI coreAPI
	logger  *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new MinIO Client.
type ClientOptions struct {
	// CoreAPI is the minimal subset of functions that we use from the MinIO SDK.
	//
	// NOTE: Required
	CoreAPI coreAPI

	// Logger is the passed logger which implements a custom Log method
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (c *ClientOptions) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// NewClient returns a new client which uses the given 'coreAPI', in general this should be the one created using the
// 'NewCoreAPI' function.
func NewClient(options ClientOptions) *Client {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	client := Client{
		coreAPI: options.CoreAPI,
		logger:  options.Logger,
	}

	return &client
}

// NewCoreAPI returns a core client constructed from the given config; static credentials are used when provided,
// otherwise credential resolution is delegated to the SDKs environment based providers.
func NewCoreAPI(config objcli.ClientConfig) (*minio.Core, error) {
	opts := &minio.Options{
		Region: config.Region,
		Secure: !config.DisableTLS,
	}

	if config.Static() {
		opts.Creds = credentials.NewStaticV4(config.AccessKey, config.SecretKey, "")
	} else {
		opts.Creds = credentials.NewEnvMinio()
	}

	core, err := minio.NewCore(config.Endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create core client: %w", err)
	}

	return core, nil
}

func (c *Client) Provider() ctxval.Provider {
	return ctxval.ProviderMinIO
}

func (c *Client) GetObject(ctx context.Context, opts objcli.GetObjectOptions) (*ctxval.Object, error) {
	body, info, _, err := c.coreAPI.GetObject(ctx, opts.Bucket, opts.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, handleError(opts.Bucket, opts.Key, err)
	}

	object := &ctxval.Object{
		ObjectAttrs: ctxval.ObjectAttrs{
			Key:          opts.Key,
			ETag:         info.ETag,
			Size:         info.Size,
			LastModified: info.LastModified,
		},
		Body: body,
	}

	return object, nil
}

func (c *Client) GetObjectAttrs(ctx context.Context, opts objcli.GetObjectAttrsOptions) (*ctxval.ObjectAttrs, error) {
	info, err := c.coreAPI.StatObject(ctx, opts.Bucket, opts.Key, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleError(opts.Bucket, opts.Key, err)
	}

	attrs := &ctxval.ObjectAttrs{
		Key:          opts.Key,
		ETag:         info.ETag,
		Size:         info.Size,
		LastModified: info.LastModified,
	}

	return attrs, nil
}

func (c *Client) PutObject(ctx context.Context, opts objcli.PutObjectOptions) error {
	size, err := seekerLength(opts.Body)
	if err != nil {
		return fmt.Errorf("failed to determine body length: %w", err)
	}

	_, err = c.coreAPI.PutObject(ctx, opts.Bucket, opts.Key, opts.Body, size, "", "", minio.PutObjectOptions{})

	return handleError(opts.Bucket, opts.Key, err)
}

func (c *Client) DeleteObject(ctx context.Context, opts objcli.DeleteObjectOptions) error {
	err := c.coreAPI.RemoveObject(ctx, opts.Bucket, opts.Key, minio.RemoveObjectOptions{})
	if err == nil {
		return nil
	}

	if !isKeyNotFound(err) {
		return handleError(opts.Bucket, opts.Key, err)
	}

	c.logger.Debug("object being deleted did not exist", "bucket", opts.Bucket, "key", opts.Key)

	return nil
}

func (c *Client) ListObjects(ctx context.Context, opts objcli.ListObjectsOptions) (*ctxval.ObjectPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maxKeys := opts.MaxKeys
	if maxKeys <= 0 {
		maxKeys = objcli.PageSize
	}

	resp, err := c.coreAPI.ListObjectsV2(opts.Bucket, opts.Prefix, "", opts.ContinuationToken, "", maxKeys)
	if err != nil {
		return nil, handleError(opts.Bucket, "", err)
	}

	page := &ctxval.ObjectPage{
		Contents:              make([]*ctxval.ObjectAttrs, 0, len(resp.Contents)),
		NextContinuationToken: resp.NextContinuationToken,
		Truncated:             resp.IsTruncated,
	}

	for _, object := range resp.Contents {
		page.Contents = append(page.Contents, &ctxval.ObjectAttrs{
			Key:          object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}

	return page, nil
}
