package httpfetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mwantia/querystore/operator"
)

func newTestServer(t *testing.T, content string) (*httptest.Server, *[]string) {
	t.Helper()

	var missingHeader []string
	modified := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(CrossOriginHeader) != CrossOriginHeaderValue {
			missingHeader = append(missingHeader, r.Method+" "+r.URL.Path)
		}

		if r.URL.Path != "/data/file" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("ETag", `"abc123"`)
		http.ServeContent(w, r, "file", modified, strings.NewReader(content))
	}))
	t.Cleanup(server.Close)

	return server, &missingHeader
}

func TestHTTPBackend_Stat(t *testing.T) {
	ctx := context.Background()
	server, missing := newTestServer(t, "hello remote world")
	backend := NewHTTPBackend(server.URL)

	meta, err := backend.Stat(ctx, "data/file")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if meta.ContentLength != int64(len("hello remote world")) {
		t.Errorf("expected length %d, got %d", len("hello remote world"), meta.ContentLength)
	}

	if meta.LastModified == nil {
		t.Error("expected Last-Modified to be parsed")
	}

	if meta.ETag != `"abc123"` {
		t.Errorf("expected etag to be carried over, got %q", meta.ETag)
	}

	if len(*missing) > 0 {
		t.Errorf("requests without cross-origin header: %v", *missing)
	}
}

func TestHTTPBackend_Read(t *testing.T) {
	ctx := context.Background()
	content := "hello remote world"
	server, missing := newTestServer(t, content)
	backend := NewHTTPBackend(server.URL)

	reader, err := backend.Read(ctx, "data/file", 6, 6)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	defer reader.Close()

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading failed: %v", err)
	}

	if string(got) != "remote" {
		t.Errorf("expected 'remote', got %q", got)
	}

	if len(*missing) > 0 {
		t.Errorf("requests without cross-origin header: %v", *missing)
	}
}

func TestHTTPBackend_NotFound(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t, "x")
	backend := NewHTTPBackend(server.URL)

	_, err := backend.Stat(ctx, "missing")
	opErr, ok := err.(*operator.Error)
	if !ok || opErr.Kind != operator.KindNotFound {
		t.Errorf("Stat: expected not_found, got %v", err)
	}

	_, err = backend.Read(ctx, "missing", 0, 1)
	opErr, ok = err.(*operator.Error)
	if !ok || opErr.Kind != operator.KindNotFound {
		t.Errorf("Read: expected not_found, got %v", err)
	}
}

func TestHTTPBackend_UnsupportedSurface(t *testing.T) {
	ctx := context.Background()
	backend := NewHTTPBackend("http://example.com:80")

	if err := backend.Write(ctx, "k", nil); !isUnsupported(err) {
		t.Errorf("Write: expected unsupported, got %v", err)
	}

	if err := backend.Delete(ctx, "k"); !isUnsupported(err) {
		t.Errorf("Delete: expected unsupported, got %v", err)
	}

	if _, err := backend.List(ctx, "k", operator.ListOptions{}); !isUnsupported(err) {
		t.Errorf("List: expected unsupported, got %v", err)
	}
}

func TestHTTPBackend_Capabilities(t *testing.T) {
	backend := NewHTTPBackend("http://example.com:80")
	caps := backend.Info().Capabilities

	if !caps.Contains(operator.CapabilityStat) || !caps.Contains(operator.CapabilityRead) {
		t.Error("expected stat and read capabilities")
	}

	if caps.Contains(operator.CapabilityWrite) || caps.Contains(operator.CapabilityList) {
		t.Error("pass-through operator must not claim write or list")
	}
}

func isUnsupported(err error) bool {
	opErr, ok := err.(*operator.Error)
	return ok && opErr.Kind == operator.KindUnsupported
}
