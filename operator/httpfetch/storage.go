package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/mwantia/querystore/operator"
)

func (hb *HTTPBackend) Stat(ctx context.Context, key string) (*operator.Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, hb.keyURL(key), nil)
	if err != nil {
		return nil, operator.NewError(operator.KindUnexpected, "stat", key, err)
	}

	resp, err := hb.client.Do(req)
	if err != nil {
		return nil, operator.NewError(operator.KindUnexpected, "stat", key, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp, "stat", key); err != nil {
		return nil, err
	}

	meta := &operator.Metadata{
		// Stays -1 when the server does not report a length
		ContentLength: resp.ContentLength,
		ETag:          resp.Header.Get("ETag"),
	}
	if modified, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
		meta.LastModified = &modified
	}

	return meta, nil
}

func (hb *HTTPBackend) Read(ctx context.Context, key string, offset, length int64) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, hb.keyURL(key), nil)
	if err != nil {
		return nil, operator.NewError(operator.KindUnexpected, "read", key, err)
	}

	if length > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", offset, offset+length-1))
	} else if offset > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", offset))
	}

	resp, err := hb.client.Do(req)
	if err != nil {
		return nil, operator.NewError(operator.KindUnexpected, "read", key, err)
	}

	if err := statusError(resp, "read", key); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp.Body, nil
}

// Write is not provided by the pass-through operator.
func (hb *HTTPBackend) Write(ctx context.Context, key string, buffer []byte) error {
	return operator.NewError(operator.KindUnsupported, "write", key, nil)
}

// Delete is not provided by the pass-through operator.
func (hb *HTTPBackend) Delete(ctx context.Context, key string) error {
	return operator.NewError(operator.KindUnsupported, "delete", key, nil)
}

// List is not provided by the pass-through operator; plain HTTP has no
// enumeration primitive.
func (hb *HTTPBackend) List(ctx context.Context, prefix string, opts operator.ListOptions) (operator.Lister, error) {
	return nil, operator.NewError(operator.KindUnsupported, "list", prefix, nil)
}

func statusError(resp *http.Response, op, key string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return operator.NewError(operator.KindNotFound, op, key, fmt.Errorf("status %s", resp.Status))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return operator.NewError(operator.KindPermissionDenied, op, key, fmt.Errorf("status %s", resp.Status))
	case resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented:
		return operator.NewError(operator.KindUnsupported, op, key, fmt.Errorf("status %s", resp.Status))
	}

	return operator.NewError(operator.KindUnexpected, op, key, fmt.Errorf("status %s", resp.Status))
}
