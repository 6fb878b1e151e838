// Package querystore exposes remote object storage to an embedded SQL
// query engine running in a single-threaded, cooperatively scheduled
// host. The registry resolves a URL-style locator to a freshly built
// backend operator and hands back a store handle satisfying the engine's
// object-store contract.
package querystore

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/mwantia/querystore/adapter"
	"github.com/mwantia/querystore/data/errors"
	"github.com/mwantia/querystore/log"
	"github.com/mwantia/querystore/operator"
	"github.com/mwantia/querystore/operator/httpfetch"
	"github.com/mwantia/querystore/operator/s3"
	"github.com/mwantia/querystore/store"
)

// Registry resolves locators to store handles. It holds the only piece
// of mutable shared state in the module, the backend configuration,
// behind a mutex that is never held across an I/O suspension point.
//
// Resolution never caches: a new operator is built from the current
// configuration on every call. The cost is accepted; correctness favors
// always-current credentials over reuse.
type Registry struct {
	mu     sync.Mutex
	config BackendConfig
	log    *log.Logger
}

type RegistryOption func(*Registry)

// WithLogger attaches a logger; without it the registry stays silent.
func WithLogger(logger *log.Logger) RegistryOption {
	return func(r *Registry) {
		r.log = logger
	}
}

// NewRegistry creates a registry with an empty backend configuration.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		log: log.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetBackendConfig replaces the backend configuration atomically. A
// resolution running concurrently observes either the previous or the
// new configuration entirely, never a partial mix. The new values take
// effect for every resolution issued after this call returns.
func (r *Registry) SetBackendConfig(config BackendConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = config
	r.log.Info("SetBackendConfig: backend configuration replaced (bucket=%s region=%s)", config.Bucket, config.Region)
}

// GetStore resolves a locator to a store handle. Dispatch is by scheme,
// case-insensitive; any scheme without a backend fails with
// BackendUnavailable. No state is kept: the caller owns the handle and
// its lifetime.
func (r *Registry) GetStore(u *url.URL) (store.ObjectStore, error) {
	op, err := r.buildOperator(u)
	if err != nil {
		return nil, err
	}

	r.log.Debug("GetStore: resolved %s to operator %s (%s)", u, op.Info().ID, op.Info().Scheme)
	return adapter.NewOperatorStore(op, adapter.WithLogger(r.log.Named(op.Info().Scheme))), nil
}

func (r *Registry) buildOperator(u *url.URL) (operator.Operator, error) {
	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "s3":
		// Lock covers the read-config-then-build step; construction
		// performs no I/O, so no suspension happens under the lock.
		r.mu.Lock()
		defer r.mu.Unlock()

		backend, err := s3.NewS3Backend(s3.Config{
			Endpoint:        r.config.Endpoint,
			Bucket:          r.config.Bucket,
			Region:          r.config.Region,
			Root:            r.config.Root,
			AccessKeyID:     r.config.AccessKeyID,
			SecretAccessKey: r.config.SecretAccessKey,
			UseSSL:          r.config.UseSSL,
		})
		if err != nil {
			r.log.Error("GetStore: s3 operator construction failed - %v", err)
			return nil, errors.StoreBackendUnavailable(err, scheme)
		}

		return backend, nil

	case "http", "https":
		return httpfetch.NewHTTPBackend(endpointOf(scheme, u)), nil
	}

	return nil, errors.StoreBackendUnavailable(nil, scheme)
}

// endpointOf builds "scheme://host:port", substituting the scheme's
// conventional default when the locator carries no port.
func endpointOf(scheme string, u *url.URL) string {
	port := u.Port()
	if port == "" {
		switch scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}

	return fmt.Sprintf("%s://%s:%s", scheme, u.Hostname(), port)
}
