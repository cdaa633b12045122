// Package objaws provides an implementation of 'objcli.Client' for use with AWS S3.
package objaws

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/objcli"
)

// Client implements the 'objcli.Client' interface allowing the creation/management of objects stored in AWS S3.
type Client struct {
	serviceAPI serviceAPI
	logger     *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new AWS Client.
type ClientOptions struct {
	// ServiceAPI is the is the minimal subset of functions that we use from the AWS SDK, this allows for a greatly
	// reduce surface area for mock generation.
	//
	// NOTE: Required
	ServiceAPI serviceAPI

	// Logger is the passed logger which implements a custom Log method
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (c *ClientOptions) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// NewClient returns a new client which uses the given 'serviceAPI', in general this should be the one created using
// the 'NewServiceAPI' function or the 's3.NewFromConfig' function exposed by the SDK.
func NewClient(options ClientOptions) *Client {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	client := Client{
		serviceAPI: options.ServiceAPI,
		logger:     options.Logger,
	}

	return &client
}

// NewServiceAPI returns a service client constructed from the given config; static credentials are used when
// provided, otherwise credential resolution is delegated to the SDKs default chain.
func NewServiceAPI(ctx context.Context, config objcli.ClientConfig) (*s3.Client, error) {
	loadOpts := make([]func(*awsconfig.LoadOptions) error, 0)

	if config.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(config.Region))
	}

	if config.Static() {
		provider := credentials.NewStaticCredentialsProvider(config.AccessKey, config.SecretKey, "")
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(provider))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, handleError(nil, nil, err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.Endpoint == "" {
			return
		}

		// Custom endpoints are generally S3 compatible stores which won't support virtual hosted bucket addressing
		o.BaseEndpoint = aws.String(config.Endpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

func (c *Client) Provider() ctxval.Provider {
	return ctxval.ProviderAWS
}

func (c *Client) GetObject(ctx context.Context, opts objcli.GetObjectOptions) (*ctxval.Object, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(opts.Bucket),
		Key:    aws.String(opts.Key),
	}

	resp, err := c.serviceAPI.GetObject(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := ctxval.ObjectAttrs{
		Key:          opts.Key,
		ETag:         aws.ToString(resp.ETag),
		Size:         aws.ToInt64(resp.ContentLength),
		LastModified: aws.ToTime(resp.LastModified),
	}

	object := &ctxval.Object{
		ObjectAttrs: attrs,
		Body:        resp.Body,
	}

	return object, nil
}

func (c *Client) GetObjectAttrs(ctx context.Context, opts objcli.GetObjectAttrsOptions) (*ctxval.ObjectAttrs, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(opts.Bucket),
		Key:    aws.String(opts.Key),
	}

	resp, err := c.serviceAPI.HeadObject(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := &ctxval.ObjectAttrs{
		Key:          opts.Key,
		ETag:         aws.ToString(resp.ETag),
		Size:         aws.ToInt64(resp.ContentLength),
		LastModified: aws.ToTime(resp.LastModified),
	}

	return attrs, nil
}

func (c *Client) PutObject(ctx context.Context, opts objcli.PutObjectOptions) error {
	input := &s3.PutObjectInput{
		Body:   opts.Body,
		Bucket: aws.String(opts.Bucket),
		Key:    aws.String(opts.Key),
	}

	_, err := c.serviceAPI.PutObject(ctx, input)

	return handleError(input.Bucket, input.Key, err)
}

func (c *Client) DeleteObject(ctx context.Context, opts objcli.DeleteObjectOptions) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(opts.Bucket),
		Key:    aws.String(opts.Key),
	}

	_, err := c.serviceAPI.DeleteObject(ctx, input)
	if err == nil {
		return nil
	}

	if !isKeyNotFound(err) {
		return handleError(input.Bucket, input.Key, err)
	}

	c.logger.Debug("object being deleted did not exist", "bucket", opts.Bucket, "key", opts.Key)

	return nil
}

func (c *Client) ListObjects(ctx context.Context, opts objcli.ListObjectsOptions) (*ctxval.ObjectPage, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(opts.Bucket),
		Prefix: aws.String(opts.Prefix),
	}

	if opts.MaxKeys > 0 {
		input.MaxKeys = aws.Int32(int32(opts.MaxKeys))
	}

	if opts.ContinuationToken != "" {
		input.ContinuationToken = aws.String(opts.ContinuationToken)
	}

	resp, err := c.serviceAPI.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, nil, err)
	}

	page := &ctxval.ObjectPage{
		Contents:              make([]*ctxval.ObjectAttrs, 0, len(resp.Contents)),
		NextContinuationToken: aws.ToString(resp.NextContinuationToken),
		Truncated:             aws.ToBool(resp.IsTruncated),
	}

	for _, object := range resp.Contents {
		page.Contents = append(page.Contents, &ctxval.ObjectAttrs{
			Key:          aws.ToString(object.Key),
			Size:         aws.ToInt64(object.Size),
			LastModified: aws.ToTime(object.LastModified),
		})
	}

	return page, nil
}
