package adapter

import (
	"context"
	"io"

	"github.com/mwantia/querystore/data"
	"github.com/mwantia/querystore/data/errors"
	"github.com/mwantia/querystore/operator"
)

// listerStream adapts a backend lister to the store contract's metadata
// stream. Each entry is translated on the way through; an error
// terminates the stream for good, so a consumer never sees items behind
// a failure.
type listerStream struct {
	lister operator.Lister
	filter func(*operator.Entry) bool
	err    error
}

func newListerStream(lister operator.Lister, filter func(*operator.Entry) bool) *listerStream {
	return &listerStream{lister: lister, filter: filter}
}

func (ls *listerStream) Next(ctx context.Context) (*data.ObjectMeta, error) {
	if ls.err != nil {
		return nil, ls.err
	}

	for {
		entry, err := ls.lister.Next(ctx)
		if err != nil {
			if err == io.EOF {
				ls.err = io.EOF
				return nil, io.EOF
			}

			ls.err = TranslateError(err, "")
			return nil, ls.err
		}

		if ls.filter != nil && !ls.filter(entry) {
			continue
		}

		return ToObjectMeta(entry.Key, entry.Meta), nil
	}
}

// payloadReader surfaces backend read failures through the store
// contract: every error except EOF comes out as a Generic io failure.
type payloadReader struct {
	inner io.ReadCloser
}

func (pr *payloadReader) Read(p []byte) (int, error) {
	n, err := pr.inner.Read(p)
	if err != nil && err != io.EOF {
		return n, errors.StoreGeneric(err, "io")
	}
	return n, err
}

func (pr *payloadReader) Close() error {
	if err := pr.inner.Close(); err != nil {
		return errors.StoreGeneric(err, "io")
	}
	return nil
}
