// Package fsctx implements the context contract on top of a local filesystem directory; its primary role is acting
// as the source/target when copying contexts across backends.
package fsctx

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/seriate/ctxstore/ctxerr"
	"github.com/seriate/ctxstore/ctxval"
	"github.com/seriate/ctxstore/naming"
	"github.com/seriate/ctxstore/objctx"
)

// DefaultDirMode is the mode used when creating intermediate directories.
const DefaultDirMode = 0o777

// Context is the local filesystem backed context; files live beneath a base directory at the relative paths produced
// by the naming convention.
type Context struct {
	convention naming.Convention
	base       string
}

var (
	_ objctx.Source      = (*Context)(nil)
	_ objctx.Destination = (*Context)(nil)
	_ objctx.FileSource  = (*Context)(nil)
)

// ContextOptions encapsulates the options available when creating a new context.
type ContextOptions struct {
	// Base is the directory beneath which all the contexts files live.
	//
	// NOTE: Required
	Base string

	// Convention converts between specs and path segments.
	//
	// NOTE: Required
	Convention naming.Convention
}

// NewContext returns a new context using the given options.
func NewContext(options ContextOptions) *Context {
	return &Context{convention: options.Convention, base: filepath.Clean(options.Base)}
}

// Path returns the native path for the given spec; this is a local computation, the file may not exist.
func (c *Context) Path(spec ctxval.Spec) (string, error) {
	segments, err := c.convention.SpecToPath(spec)
	if err != nil {
		return "", err // Purposefully not wrapped
	}

	return filepath.Join(c.base, filepath.FromSlash(objctx.JoinKey("", segments...))), nil
}

// Open returns a reader over the contents of the file backing the given spec.
func (c *Context) Open(_ context.Context, spec ctxval.Spec) (io.ReadCloser, error) {
	return c.OpenFile(spec)
}

// OpenFile returns the open file backing the given spec; this is the capability 'objctx.Copy' uses to upload local
// files without streaming them through memory.
func (c *Context) OpenFile(spec ctxval.Spec) (*os.File, error) {
	path, err := c.Path(spec)
	if err != nil {
		return nil, err
	}

	return os.Open(path)
}

// Create returns a write stream backed by the file for the given spec, creating any missing parent directories.
func (c *Context) Create(_ context.Context, spec ctxval.Spec, opts objctx.CreateOptions) (io.WriteCloser, error) {
	path, err := c.Path(spec)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirMode); err != nil {
		return nil, err
	}

	flags := os.O_CREATE | os.O_WRONLY
	if opts.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	return os.OpenFile(path, flags, 0o666)
}

// Info returns the size/last modified time of the file backing the given spec; a spec with no backing file returns
// zero valued attributes, not an error.
func (c *Context) Info(_ context.Context, spec ctxval.Spec) (*ctxval.ObjectAttrs, error) {
	path, err := c.Path(spec)
	if err != nil {
		return nil, err
	}

	key, err := c.key(path)
	if err != nil {
		return nil, err
	}

	stats, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ctxval.ObjectAttrs{Key: key}, nil
	}

	if err != nil {
		return nil, err
	}

	return &ctxval.ObjectAttrs{Key: key, Size: stats.Size(), LastModified: stats.ModTime()}, nil
}

// List collects and returns all the entries in the context; empty files are treated as placeholders and skipped,
// matching the object store behavior.
func (c *Context) List(_ context.Context, opts objctx.ListOptions) ([]ctxval.Entry, error) {
	entries := make([]ctxval.Entry, 0)

	walk := func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		if info.Size() == 0 {
			return nil
		}

		key, err := c.key(path)
		if err != nil {
			return err
		}

		spec, err := c.convention.PathToSpec(strings.Split(key, "/"))
		if err != nil {
			if !opts.Strict {
				return nil
			}

			return ctxerr.NewConversionError(key, err)
		}

		attrs := &ctxval.ObjectAttrs{Key: key, Size: info.Size(), LastModified: info.ModTime()}
		entries = append(entries, ctxval.Entry{Spec: spec, Attrs: attrs})

		return nil
	}

	err := filepath.WalkDir(c.base, walk)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete removes the whole context from the filesystem, guarded by the same verification as the object store context:
// deletion is refused when enumeration fails, or yields any item.
func (c *Context) Delete(ctx context.Context) error {
	entries, err := c.List(ctx, objctx.ListOptions{Strict: true})
	if err != nil {
		return ctxerr.NewVerificationFailedError(err)
	}

	if len(entries) > 0 {
		keys := make([]string, 0, len(entries))

		for _, entry := range entries {
			keys = append(keys, entry.Attrs.Key)
		}

		return &ctxerr.NotEmptyError{Keys: keys}
	}

	return os.RemoveAll(c.base)
}

// DeleteSpec removes exactly the file backing the given spec; deleting a spec with no backing file is a no-op.
func (c *Context) DeleteSpec(_ context.Context, spec ctxval.Spec) error {
	path, err := c.Path(spec)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// key converts the given native path into the slash delimited key relative to the contexts base directory.
func (c *Context) key(path string) (string, error) {
	rel, err := filepath.Rel(c.base, path)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}
