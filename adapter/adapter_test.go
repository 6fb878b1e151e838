package adapter_test

import (
	"context"
	"io"
	"testing"

	"github.com/mwantia/querystore/adapter"
	"github.com/mwantia/querystore/data"
	"github.com/mwantia/querystore/data/errors"
	"github.com/mwantia/querystore/operator/memory"
	"github.com/mwantia/querystore/store"
)

// TestBackendFactory creates a fresh operator-backed store for testing.
type TestBackendFactory func(t *testing.T) (*memory.MemoryBackend, store.ObjectStore)

// GetTestBackendFactories returns the operator variants every adapter
// test should pass against: one with native offset resumption, one
// forced onto the client-side filter path.
func GetTestBackendFactories() map[string]TestBackendFactory {
	return map[string]TestBackendFactory{
		"start-after": func(t *testing.T) (*memory.MemoryBackend, store.ObjectStore) {
			backend := memory.NewMemoryBackend()
			return backend, adapter.NewOperatorStore(backend)
		},
		"client-filter": func(t *testing.T) (*memory.MemoryBackend, store.ObjectStore) {
			backend := memory.NewMemoryBackend(memory.WithoutStartAfter())
			return backend, adapter.NewOperatorStore(backend)
		},
	}
}

func seedScenario(t *testing.T, ctx context.Context, backend *memory.MemoryBackend) {
	t.Helper()

	objects := map[string]int{
		"a/1": 10,
		"a/2": 20,
		"b/1": 5,
	}
	for key, size := range objects {
		if err := backend.Write(ctx, key, make([]byte, size)); err != nil {
			t.Fatalf("seeding %s failed: %v", key, err)
		}
	}
}

func TestOperatorStore_PutGetRoundtrip(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := context.Background()
			_, st := factory(tst)

			content := []byte("select * from remote")
			if _, err := st.Put(ctx, "query.sql", data.NewPayload(content)); err != nil {
				tst.Fatalf("Put failed: %v", err)
			}

			result, err := st.Get(ctx, "query.sql")
			if err != nil {
				tst.Fatalf("Get failed: %v", err)
			}
			defer result.Body.Close()

			if result.Meta.Location != "query.sql" {
				tst.Errorf("expected location 'query.sql', got %s", result.Meta.Location)
			}

			if result.Meta.Size != int64(len(content)) {
				tst.Errorf("expected size %d, got %d", len(content), result.Meta.Size)
			}

			if result.Range.Start != 0 || result.Range.End != int64(len(content)) {
				tst.Errorf("expected range [0, %d), got [%d, %d)", len(content), result.Range.Start, result.Range.End)
			}

			got, err := io.ReadAll(result.Body)
			if err != nil {
				tst.Fatalf("reading body failed: %v", err)
			}

			if string(got) != string(content) {
				tst.Errorf("expected body %q, got %q", content, got)
			}
		})
	}
}

func TestOperatorStore_PutResultCarriesNothing(t *testing.T) {
	ctx := context.Background()
	_, st := GetTestBackendFactories()["start-after"](t)

	result, err := st.Put(ctx, "empty", data.NewPayload(nil))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if result.ETag != "" || result.Version != "" {
		t.Errorf("expected empty put result, got etag=%q version=%q", result.ETag, result.Version)
	}
}

func TestOperatorStore_PutMultiChunkRejected(t *testing.T) {
	ctx := context.Background()
	_, st := GetTestBackendFactories()["start-after"](t)

	payload := data.Payload{Chunks: [][]byte{[]byte("first"), []byte("second")}}
	if _, err := st.Put(ctx, "combined", payload); !errors.IsNotSupported(err) {
		t.Errorf("expected NotSupported for multi-chunk payload, got %v", err)
	}

	// Nothing may have been written
	if _, err := st.Head(ctx, "combined"); !errors.IsNotFound(err) {
		t.Errorf("expected NotFound after rejected put, got %v", err)
	}
}

func TestOperatorStore_MissingObjects(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := context.Background()
			_, st := factory(tst)

			if _, err := st.Get(ctx, "absent"); !errors.IsNotFound(err) {
				tst.Errorf("Get: expected NotFound, got %v", err)
			}

			if _, err := st.Head(ctx, "absent"); !errors.IsNotFound(err) {
				tst.Errorf("Head: expected NotFound, got %v", err)
			}

			if err := st.Delete(ctx, "absent"); !errors.IsNotFound(err) {
				tst.Errorf("Delete: expected NotFound, got %v", err)
			}
		})
	}
}

func TestOperatorStore_Delete(t *testing.T) {
	ctx := context.Background()
	_, st := GetTestBackendFactories()["start-after"](t)

	if _, err := st.Put(ctx, "victim", data.NewPayload([]byte("bytes"))); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := st.Delete(ctx, "victim"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := st.Head(ctx, "victim"); !errors.IsNotFound(err) {
		t.Errorf("expected NotFound after delete, got %v", err)
	}
}

func TestOperatorStore_NotSupportedSurface(t *testing.T) {
	ctx := context.Background()
	backend, st := GetTestBackendFactories()["start-after"](t)
	seedScenario(t, ctx, backend)

	if _, err := st.PutOpts(ctx, "a/1", data.NewPayload(nil), store.PutOptions{}); !errors.IsNotSupported(err) {
		t.Errorf("PutOpts: expected NotSupported, got %v", err)
	}

	if _, err := st.PutMultipartOpts(ctx, "a/1", store.PutMultipartOptions{}); !errors.IsNotSupported(err) {
		t.Errorf("PutMultipartOpts: expected NotSupported, got %v", err)
	}

	if _, err := st.GetOpts(ctx, "a/1", store.GetOptions{}); !errors.IsNotSupported(err) {
		t.Errorf("GetOpts: expected NotSupported, got %v", err)
	}

	if err := st.Rename(ctx, "a/1", "a/3"); !errors.IsNotSupported(err) {
		t.Errorf("Rename: expected NotSupported, got %v", err)
	}

	if err := st.CopyIfNotExists(ctx, "a/1", "a/3"); !errors.IsNotSupported(err) {
		t.Errorf("CopyIfNotExists: expected NotSupported, got %v", err)
	}

	// Copy fails the same way whether or not the source exists
	if err := st.Copy(ctx, "a/1", "a/3"); !errors.IsNotSupported(err) {
		t.Errorf("Copy existing source: expected NotSupported, got %v", err)
	}

	if err := st.Copy(ctx, "absent", "a/3"); !errors.IsNotSupported(err) {
		t.Errorf("Copy missing source: expected NotSupported, got %v", err)
	}
}

func TestOperatorStore_ListScenario(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := context.Background()
			backend, st := factory(tst)
			seedScenario(tst, ctx, backend)

			metas, err := store.Collect(ctx, st.List(ctx, "a/"))
			if err != nil {
				tst.Fatalf("List failed: %v", err)
			}

			if len(metas) != 2 {
				tst.Fatalf("expected 2 entries under a/, got %d", len(metas))
			}

			if metas[0].Location != "a/1" || metas[0].Size != 10 {
				tst.Errorf("expected a/1 with size 10 first, got %s size %d", metas[0].Location, metas[0].Size)
			}

			if metas[1].Location != "a/2" || metas[1].Size != 20 {
				tst.Errorf("expected a/2 with size 20 second, got %s size %d", metas[1].Location, metas[1].Size)
			}
		})
	}
}

func TestOperatorStore_ListNormalizesPrefix(t *testing.T) {
	ctx := context.Background()
	backend, st := GetTestBackendFactories()["start-after"](t)
	seedScenario(t, ctx, backend)

	// "a" must list under "a/", not match "a*" keys
	metas, err := store.Collect(ctx, st.List(ctx, "a"))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(metas) != 2 {
		t.Fatalf("expected 2 entries for prefix 'a', got %d", len(metas))
	}
}

func TestOperatorStore_ListWithOffset(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := context.Background()
			backend, st := factory(tst)
			seedScenario(tst, ctx, backend)

			metas, err := store.Collect(ctx, st.ListWithOffset(ctx, "a/", "a/1"))
			if err != nil {
				tst.Fatalf("ListWithOffset failed: %v", err)
			}

			if len(metas) != 1 {
				tst.Fatalf("expected 1 entry after offset a/1, got %d", len(metas))
			}

			if metas[0].Location != "a/2" {
				tst.Errorf("expected a/2, got %s", metas[0].Location)
			}
		})
	}
}

// Both offset strategies must produce identical ordered output on the
// same backend state.
func TestOperatorStore_OffsetStrategiesAgree(t *testing.T) {
	ctx := context.Background()
	factories := GetTestBackendFactories()

	var results [][]string
	for _, name := range []string{"start-after", "client-filter"} {
		backend, st := factories[name](t)
		seedScenario(t, ctx, backend)

		metas, err := store.Collect(ctx, st.ListWithOffset(ctx, "", "a/1"))
		if err != nil {
			t.Fatalf("%s: ListWithOffset failed: %v", name, err)
		}

		var locations []string
		for _, meta := range metas {
			locations = append(locations, meta.Location)
		}
		results = append(results, locations)
	}

	if len(results[0]) != len(results[1]) {
		t.Fatalf("strategies disagree on length: %v vs %v", results[0], results[1])
	}

	for i := range results[0] {
		if results[0][i] != results[1][i] {
			t.Fatalf("strategies disagree at %d: %v vs %v", i, results[0], results[1])
		}
	}

	expected := []string{"a/2", "b/1"}
	for i, location := range expected {
		if results[0][i] != location {
			t.Errorf("expected %s at %d, got %s", location, i, results[0][i])
		}
	}
}

func TestOperatorStore_ListWithDelimiter(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := context.Background()
			backend, st := factory(tst)
			seedScenario(tst, ctx, backend)

			result, err := st.ListWithDelimiter(ctx, "")
			if err != nil {
				tst.Fatalf("ListWithDelimiter failed: %v", err)
			}

			if len(result.Objects) != 0 {
				tst.Errorf("expected no leaf objects at root, got %d", len(result.Objects))
			}

			if len(result.CommonPrefixes) != 2 {
				tst.Fatalf("expected 2 common prefixes, got %v", result.CommonPrefixes)
			}

			if result.CommonPrefixes[0] != "a/" || result.CommonPrefixes[1] != "b/" {
				tst.Errorf("expected [a/ b/], got %v", result.CommonPrefixes)
			}
		})
	}
}

func TestOperatorStore_ListWithDelimiterPartition(t *testing.T) {
	ctx := context.Background()
	backend, st := GetTestBackendFactories()["start-after"](t)
	seedScenario(t, ctx, backend)

	if err := backend.Write(ctx, "a/nested/deep", []byte("x")); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}

	result, err := st.ListWithDelimiter(ctx, "a/")
	if err != nil {
		t.Fatalf("ListWithDelimiter failed: %v", err)
	}

	// Every entry lands in exactly one partition
	if len(result.Objects) != 2 {
		t.Errorf("expected 2 leaf objects under a/, got %d", len(result.Objects))
	}

	if len(result.CommonPrefixes) != 1 || result.CommonPrefixes[0] != "a/nested/" {
		t.Errorf("expected [a/nested/], got %v", result.CommonPrefixes)
	}
}
