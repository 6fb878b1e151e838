// Package adapter implements the store contract on top of one backend
// operator. The adapter owns no state beyond the operator reference: it
// calls the operator, passes results through the unsync boundary exactly
// once, and maps metadata and errors through the translator.
package adapter

import (
	"context"
	"io"
	"strings"

	"github.com/mwantia/querystore/data"
	"github.com/mwantia/querystore/data/errors"
	"github.com/mwantia/querystore/log"
	"github.com/mwantia/querystore/operator"
	"github.com/mwantia/querystore/store"
	"github.com/mwantia/querystore/unsync"
)

// OperatorStore satisfies store.ObjectStore for one resolved operator.
// It provides the minimal read/write/list/delete surface the host query
// engine needs; everything else fails with NotSupported by design.
type OperatorStore struct {
	op  operator.Operator
	log *log.Logger
}

type Option func(*OperatorStore)

// WithLogger attaches a logger; without it the adapter stays silent.
func WithLogger(logger *log.Logger) Option {
	return func(ops *OperatorStore) {
		ops.log = logger
	}
}

func NewOperatorStore(op operator.Operator, opts ...Option) *OperatorStore {
	ops := &OperatorStore{
		op:  op,
		log: log.Discard(),
	}
	for _, opt := range opts {
		opt(ops)
	}

	return ops
}

// Put writes the payload under location. Multi-chunk payloads are
// rejected instead of truncated; callers must combine parts first.
// The result never carries an etag or version through this path.
func (ops *OperatorStore) Put(ctx context.Context, location string, payload data.Payload) (*data.PutResult, error) {
	if len(payload.Chunks) > 1 {
		ops.log.Error("Put: rejected multi-chunk payload (%d chunks) for %s", len(payload.Chunks), location)
		return nil, errors.StoreNotSupported(nil, "put with multi-chunk payload")
	}

	ops.log.Debug("Put: writing %d bytes to %s (operator=%s)", payload.Size(), location, ops.op.Info().ID)
	if err := ops.op.Write(ctx, location, payload.First()); err != nil {
		return nil, TranslateError(err, location)
	}

	return &data.PutResult{}, nil
}

// PutOpts is deliberately unimplemented.
func (ops *OperatorStore) PutOpts(ctx context.Context, location string, payload data.Payload, opts store.PutOptions) (*data.PutResult, error) {
	return nil, errors.StoreNotSupported(nil, "put_opts")
}

// PutMultipartOpts is deliberately unimplemented.
func (ops *OperatorStore) PutMultipartOpts(ctx context.Context, location string, opts store.PutMultipartOptions) (store.MultipartUpload, error) {
	return nil, errors.StoreNotSupported(nil, "put_multipart_opts")
}

// Get stats the object first, then opens a single-pass range read over
// its full extent.
func (ops *OperatorStore) Get(ctx context.Context, location string) (*store.GetResult, error) {
	meta, err := ops.op.Stat(ctx, location)
	if err != nil {
		return nil, TranslateError(err, location)
	}

	objectMeta := ToObjectMeta(location, meta)
	ops.log.Debug("Get: reading [0, %d) from %s", objectMeta.Size, location)

	body, err := ops.op.Read(ctx, location, 0, objectMeta.Size)
	if err != nil {
		return nil, TranslateError(err, location)
	}

	return &store.GetResult{
		Meta:  *objectMeta,
		Body:  unsync.WrapReader(&payloadReader{inner: body}),
		Range: store.Range{Start: 0, End: objectMeta.Size},
	}, nil
}

// GetOpts is deliberately unimplemented.
func (ops *OperatorStore) GetOpts(ctx context.Context, location string, opts store.GetOptions) (*store.GetResult, error) {
	return nil, errors.StoreNotSupported(nil, "get_opts")
}

func (ops *OperatorStore) Head(ctx context.Context, location string) (*data.ObjectMeta, error) {
	meta, err := ops.op.Stat(ctx, location)
	if err != nil {
		return nil, TranslateError(err, location)
	}

	return ToObjectMeta(location, meta), nil
}

func (ops *OperatorStore) Delete(ctx context.Context, location string) error {
	ops.log.Debug("Delete: removing %s", location)
	if err := ops.op.Delete(ctx, location); err != nil {
		return TranslateError(err, location)
	}

	return nil
}

// List streams every object under prefix recursively, in the backend's
// enumeration order. The stream is produced lazily and consumed once.
func (ops *OperatorStore) List(ctx context.Context, prefix string) store.MetaStream {
	return ops.list(ctx, prefix, "")
}

// ListWithOffset behaves like List but skips everything at or before
// offset. When the operator can resume natively the offset is delegated;
// otherwise entries are filtered client-side. Both strategies produce
// the same logical result.
func (ops *OperatorStore) ListWithOffset(ctx context.Context, prefix, offset string) store.MetaStream {
	return ops.list(ctx, prefix, offset)
}

func (ops *OperatorStore) list(ctx context.Context, prefix, offset string) store.MetaStream {
	path := normalizePrefix(prefix)
	opts := operator.ListOptions{Recursive: true}

	var filter func(*operator.Entry) bool
	if offset != "" {
		if ops.op.Info().Capabilities.Contains(operator.CapabilityListStartAfter) {
			ops.log.Debug("List: native offset resume after %s under %s", offset, path)
			opts.StartAfter = offset
		} else {
			ops.log.Debug("List: client-side offset filter after %s under %s", offset, path)
			filter = func(entry *operator.Entry) bool {
				return entry.Key > offset
			}
		}
	}

	lister, err := ops.op.List(ctx, path, opts)
	if err != nil {
		return &store.ErrorStream{Err: TranslateError(err, path)}
	}

	return unsync.WrapStream(newListerStream(lister, filter))
}

// ListWithDelimiter enumerates one level under prefix. Unlike the two
// streaming listings this operation is eager and buffers the full page.
func (ops *OperatorStore) ListWithDelimiter(ctx context.Context, prefix string) (*data.ListResult, error) {
	path := normalizePrefix(prefix)

	lister, err := ops.op.List(ctx, path, operator.ListOptions{Recursive: false})
	if err != nil {
		return nil, TranslateError(err, path)
	}

	result := &data.ListResult{}
	for {
		entry, err := lister.Next(ctx)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, TranslateError(err, path)
		}

		if entry.Meta != nil && entry.Meta.IsDir {
			result.CommonPrefixes = append(result.CommonPrefixes, entry.Key)
		} else {
			result.Objects = append(result.Objects, ToObjectMeta(entry.Key, entry.Meta))
		}
	}

	return result, nil
}

// Copy is deliberately unimplemented.
func (ops *OperatorStore) Copy(ctx context.Context, from, to string) error {
	return errors.StoreNotSupported(nil, "copy")
}

// Rename is deliberately unimplemented.
func (ops *OperatorStore) Rename(ctx context.Context, from, to string) error {
	return errors.StoreNotSupported(nil, "rename")
}

// CopyIfNotExists is deliberately unimplemented.
func (ops *OperatorStore) CopyIfNotExists(ctx context.Context, from, to string) error {
	return errors.StoreNotSupported(nil, "copy_if_not_exists")
}

// normalizePrefix appends the directory separator unless the prefix is
// empty or already carries one.
func normalizePrefix(prefix string) string {
	if prefix == "" || strings.HasSuffix(prefix, "/") {
		return prefix
	}
	return prefix + "/"
}
