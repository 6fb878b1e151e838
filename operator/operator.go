// Package operator defines the backend operator abstraction the store
// adapter is built on. An operator is a constructed handle to one storage
// service, bound to one scheme and one configuration snapshot. Operators
// are ephemeral: they are built per resolution and dropped afterwards.
package operator

import (
	"context"
	"io"
)

// Operator is the primitive surface a storage backend has to provide.
// Implementations are not required to be safe for concurrent use; the
// adapter layer above decides how to satisfy stricter contracts.
type Operator interface {
	// Info returns static information about this operator instance,
	// including its capability set.
	Info() *Info

	// Stat returns the metadata of the object stored under key.
	// Returns an Error of kind KindNotFound if no such object exists.
	Stat(ctx context.Context, key string) (*Metadata, error)

	// Read opens a forward-only byte range read of [offset, offset+length)
	// for the object stored under key. The returned reader is single-pass
	// and must be closed by the caller.
	Read(ctx context.Context, key string, offset, length int64) (io.ReadCloser, error)

	// Write stores buffer as the full content of the object under key,
	// replacing any previous content.
	Write(ctx context.Context, key string, buffer []byte) error

	// Delete removes the object stored under key.
	// Returns an Error of kind KindNotFound if no such object exists.
	Delete(ctx context.Context, key string) error

	// List starts a paginated enumeration of the objects under prefix.
	// Entries are produced in the backend's natural order, typically
	// lexicographic by key.
	List(ctx context.Context, prefix string, opts ListOptions) (Lister, error)
}

// ListOptions controls a single List call.
type ListOptions struct {
	// Recursive enumerates all descendants when true. When false the
	// enumeration stops at one level, reporting deeper keys as
	// directory-like entries.
	Recursive bool

	// StartAfter skips every entry whose key sorts at or before this
	// value. Only honored by operators whose capability set contains
	// CapabilityListStartAfter; others ignore it.
	StartAfter string
}

// Info describes one operator instance.
type Info struct {
	// Scheme identifies the backend type, e.g. "s3" or "http".
	Scheme string

	// ID uniquely identifies this instance, mostly for log correlation.
	ID string

	// Capabilities lists what this operator supports.
	Capabilities *Capabilities
}
