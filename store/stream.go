package store

import (
	"context"
	"errors"
	"io"

	"github.com/mwantia/querystore/data"
)

// MetaStream is the streaming listing shape of the store contract.
// Next returns io.EOF once the stream is exhausted. A stream that
// produced an error never produces further items.
type MetaStream interface {
	Next(ctx context.Context) (*data.ObjectMeta, error)
}

// ErrorStream satisfies MetaStream with a stream that fails immediately.
// Used when a listing cannot even be started.
type ErrorStream struct {
	Err error
}

func (es *ErrorStream) Next(ctx context.Context) (*data.ObjectMeta, error) {
	return nil, es.Err
}

// Collect drains a stream into a slice. Intended for callers that want
// the eager shape anyway, and for tests.
func Collect(ctx context.Context, stream MetaStream) ([]*data.ObjectMeta, error) {
	var metas []*data.ObjectMeta
	for {
		meta, err := stream.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return metas, nil
			}
			return metas, err
		}

		metas = append(metas, meta)
	}
}
