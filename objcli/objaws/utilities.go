package objaws

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"

	"github.com/seriate/ctxstore/ctxerr"
)

// handleError converts an error relating accessing an object via its key into a user friendly error where possible.
func handleError(bucket, key *string, err error) error {
	var apiErr smithy.APIError
	if err == nil || !errors.As(err, &apiErr) {
		return ctxerr.HandleError(err)
	}

	switch apiErr.ErrorCode() {
	case "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return ctxerr.ErrUnauthenticated
	case "AccessDenied":
		return ctxerr.ErrUnauthorized
	case "NoSuchKey", "NotFound":
		if key == nil {
			key = aws.String("<empty key name>")
		}

		return &ctxerr.NotFoundError{Type: "key", Name: *key}
	case "NoSuchBucket":
		if bucket == nil {
			bucket = aws.String("<empty bucket name>")
		}

		return &ctxerr.NotFoundError{Type: "bucket", Name: *bucket}
	}

	// The smithy error type doesn't always wrap the transport failure in a way we can dispatch on, check it here
	if handled := ctxerr.TryHandleError(err); handled != nil {
		return handled
	}

	// This isn't a status code we plan to handle manually, return the complete error
	return err
}

// isKeyNotFound returns a boolean indicating whether the given error is a 'NoSuchKey' error. We also accept 'NotFound'
// because S3 compatible stores (e.g. localstack) return the wrong error string.
func isKeyNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound")
}
