package objctx

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/objcli"
)

// Source is the read side of the context contract required when copying between backends.
type Source interface {
	Open(ctx context.Context, spec ctxval.Spec) (io.ReadCloser, error)
}

// Destination is the write side of the context contract required when copying between backends.
type Destination interface {
	Create(ctx context.Context, spec ctxval.Spec, opts CreateOptions) (io.WriteCloser, error)
}

// FileSource is the capability a file backed context may expose to allow copies into an object store context to hand
// the store an open file handle directly, bypassing the in-memory upload stream.
type FileSource interface {
	OpenFile(spec ctxval.Spec) (*os.File, error)
}

// CopyOptions encapsulates the options available when using the 'Copy' function.
type CopyOptions struct {
	// Source is the context being copied from.
	//
	// NOTE: Required
	Source Source

	// Destination is the context being copied to.
	//
	// NOTE: Required
	Destination Destination

	// Spec is the logical item being copied; both contexts conventions must accept it.
	Spec ctxval.Spec
}

// Copy copies a single spec between two contexts. When the source exposes a local file handle and the destination is
// an object store context, the copy is a single upload using the file handle as the body; any other pairing streams
// the bytes through the generic read/write path with identical semantics.
func Copy(ctx context.Context, opts CopyOptions) error {
	source, ok := opts.Source.(FileSource)
	if !ok {
		return copyGeneric(ctx, opts)
	}

	destination, ok := opts.Destination.(*Context)
	if !ok {
		return copyGeneric(ctx, opts)
	}

	return copyFromFile(ctx, source, destination, opts.Spec)
}

// copyFromFile uploads the source file in a single request using the open handle as the request body.
func copyFromFile(ctx context.Context, source FileSource, destination *Context, spec ctxval.Spec) error {
	file, err := source.OpenFile(spec)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	key, err := destination.Key(spec)
	if err != nil {
		return err
	}

	err = destination.client.PutObject(ctx, objcli.PutObjectOptions{
		Bucket: destination.bucket,
		Key:    key,
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload source file: %w", err)
	}

	return nil
}

// copyGeneric streams the source into the destination; the destination stream is only closed (and therefore only
// uploaded) once the source has been fully consumed.
func copyGeneric(ctx context.Context, opts CopyOptions) error {
	reader, err := opts.Source.Open(ctx, opts.Spec)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer reader.Close()

	writer, err := opts.Destination.Create(ctx, opts.Spec, CreateOptions{})
	if err != nil {
		return fmt.Errorf("failed to open destination: %w", err)
	}

	if _, err := io.Copy(writer, reader); err != nil {
		return fmt.Errorf("failed to copy between contexts: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close destination: %w", err)
	}

	return nil
}
