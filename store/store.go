// Package store defines the object-store contract consumed by the
// embedded query engine. The contract is specified as safe for
// concurrent use by multiple goroutines: engine code is free to share
// one store across tasks. How an implementation satisfies that in a
// single-threaded host is its own concern (see the unsync package).
package store

import (
	"context"
	"io"

	"github.com/mwantia/querystore/data"
)

// ObjectStore is the capability surface the query engine programs
// against. Implementations must return the typed errors of data/errors;
// in particular NotSupported for operations they deliberately do not
// provide, never silent partial behavior.
type ObjectStore interface {
	// Put stores a payload under location. Implementations that cannot
	// stream multi-chunk payloads must reject them with NotSupported.
	Put(ctx context.Context, location string, payload data.Payload) (*data.PutResult, error)

	// PutOpts stores a payload under location honoring the given options.
	PutOpts(ctx context.Context, location string, payload data.Payload, opts PutOptions) (*data.PutResult, error)

	// PutMultipartOpts starts a multipart upload for location.
	PutMultipartOpts(ctx context.Context, location string, opts PutMultipartOptions) (MultipartUpload, error)

	// Get returns the metadata and full content of the object at
	// location. The body is lazy, forward-only and single pass.
	Get(ctx context.Context, location string) (*GetResult, error)

	// GetOpts returns object content honoring the given options.
	GetOpts(ctx context.Context, location string, opts GetOptions) (*GetResult, error)

	// Head returns the metadata of the object at location without
	// touching its payload.
	Head(ctx context.Context, location string) (*data.ObjectMeta, error)

	// Delete removes the object at location.
	Delete(ctx context.Context, location string) error

	// List streams the metadata of every object under prefix,
	// recursively, in the backend's enumeration order.
	List(ctx context.Context, prefix string) MetaStream

	// ListWithOffset behaves like List but skips every entry whose
	// location sorts at or before offset.
	ListWithOffset(ctx context.Context, prefix, offset string) MetaStream

	// ListWithDelimiter enumerates one level under prefix, eagerly,
	// partitioning entries into objects and common prefixes.
	ListWithDelimiter(ctx context.Context, prefix string) (*data.ListResult, error)

	// Copy copies the object at from to to.
	Copy(ctx context.Context, from, to string) error

	// Rename moves the object at from to to.
	Rename(ctx context.Context, from, to string) error

	// CopyIfNotExists copies from to to, failing with AlreadyExists
	// when to is already present.
	CopyIfNotExists(ctx context.Context, from, to string) error
}

// GetResult carries the outcome of a successful Get.
type GetResult struct {
	// Meta of the object at read time.
	Meta data.ObjectMeta

	// Body is the object content. Single pass; the caller owns closing it.
	Body io.ReadCloser

	// Range of the body within the object, [Start, End).
	Range Range
}

// Range is a half-open byte interval.
type Range struct {
	Start int64
	End   int64
}

// GetOptions narrows a GetOpts call.
type GetOptions struct {
	// Range restricts the returned bytes, [Start, End).
	Range *Range

	// IfMatch makes the read conditional on the object's current etag.
	IfMatch string
}

// PutOptions extends a PutOpts call.
type PutOptions struct {
	// Attributes to attach to the stored object.
	Attributes map[string]string
}

// PutMultipartOptions extends a PutMultipartOpts call.
type PutMultipartOptions struct {
	Attributes map[string]string
}

// MultipartUpload is the handle of an in-flight multipart upload.
type MultipartUpload interface {
	// Write uploads one part.
	Write(ctx context.Context, part []byte) error

	// Complete finalizes the upload.
	Complete(ctx context.Context) (*data.PutResult, error)

	// Abort cancels the upload and discards uploaded parts.
	Abort(ctx context.Context) error
}
