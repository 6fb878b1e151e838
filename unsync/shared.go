// Package unsync erases the gap between the store contract, which is
// specified as safe for concurrent use, and backend operator values,
// which are not.
//
// The wrappers in this package add ZERO synchronization. They forward
// every call transparently and exist only to mark, in one auditable
// place, the assertion that a value produced by a single-threaded
// backend may be treated as shareable.
//
// That assertion is safe ONLY because the embedding host runtime is
// provably single-threaded and cooperatively scheduled: no two
// goroutines ever execute in parallel, so the races these wrappers wave
// through cannot occur. This is an environmental invariant, not
// something the type system enforces. Reusing this package in a
// genuinely multi-threaded host is a correctness violation.
//
// Every value that crosses the store contract boundary MUST pass
// through exactly one wrapper, applied at the outermost layer of the
// adapter, and MUST NOT be wrapped again further down.
package unsync

import (
	"context"
	"io"

	"github.com/mwantia/querystore/data"
	"github.com/mwantia/querystore/store"
)

// SharedStream asserts that a single-threaded metadata stream satisfies
// the shareable stream shape of the store contract. Next forwards
// without locking; see the package comment for why that is sound.
type SharedStream struct {
	inner store.MetaStream
}

// WrapStream wraps a stream produced by a single-threaded backend.
// MUST only be applied once, at the adapter boundary.
func WrapStream(inner store.MetaStream) *SharedStream {
	return &SharedStream{inner: inner}
}

func (ss *SharedStream) Next(ctx context.Context) (*data.ObjectMeta, error) {
	return ss.inner.Next(ctx)
}

// SharedReader asserts that a single-threaded byte reader satisfies the
// shareable body shape of the store contract. Read and Close forward
// without locking; see the package comment for why that is sound.
type SharedReader struct {
	inner io.ReadCloser
}

// WrapReader wraps a reader produced by a single-threaded backend.
// MUST only be applied once, at the adapter boundary.
func WrapReader(inner io.ReadCloser) *SharedReader {
	return &SharedReader{inner: inner}
}

func (sr *SharedReader) Read(p []byte) (int, error) {
	return sr.inner.Read(p)
}

func (sr *SharedReader) Close() error {
	return sr.inner.Close()
}
