package operator

import (
	"context"
	"io"
)

// Lister iterates over the entries of one List call. Next returns io.EOF
// once the enumeration is exhausted. Listers are forward-only, single
// pass, and not safe for concurrent use.
type Lister interface {
	Next(ctx context.Context) (*Entry, error)
}

// SliceLister serves a fixed set of entries, mostly useful for backends
// that buffer a page up front and for tests.
type SliceLister struct {
	entries []*Entry
	index   int
}

func NewSliceLister(entries []*Entry) *SliceLister {
	return &SliceLister{entries: entries}
}

func (sl *SliceLister) Next(ctx context.Context) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if sl.index >= len(sl.entries) {
		return nil, io.EOF
	}

	entry := sl.entries[sl.index]
	sl.index++
	return entry, nil
}
