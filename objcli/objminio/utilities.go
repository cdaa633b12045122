package objminio

import (
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/seriate/ctxstore/ctxerr"
)

// handleError converts an error relating accessing an object via its key into a user friendly error where possible.
func handleError(bucket, key string, err error) error {
	if err == nil {
		return nil
	}

	resp := minio.ToErrorResponse(err)

	switch resp.Code {
	case "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return ctxerr.ErrUnauthenticated
	case "AccessDenied":
		return ctxerr.ErrUnauthorized
	case "NoSuchKey", "NotFound":
		if key == "" {
			key = "<empty key name>"
		}

		return &ctxerr.NotFoundError{Type: "key", Name: key}
	case "NoSuchBucket":
		if bucket == "" {
			bucket = "<empty bucket name>"
		}

		return &ctxerr.NotFoundError{Type: "bucket", Name: bucket}
	}

	return ctxerr.HandleError(err)
}

// isKeyNotFound returns a boolean indicating whether the given error is a 'NoSuchKey' error.
func isKeyNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

// seekerLength returns the number of bytes remaining in the given seeker, leaving the read offset where it found it.
func seekerLength(seeker io.Seeker) (int64, error) {
	current, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	end, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	_, err = seeker.Seek(current, io.SeekStart)
	if err != nil {
		return 0, err
	}

	return end - current, nil
}
