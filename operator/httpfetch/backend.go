// Package httpfetch provides a read-only pass-through operator that
// serves objects from a plain HTTP or HTTPS endpoint. It exists for
// embedded hosts that enforce browser-style cross-origin checks: every
// outbound request carries an explicit cross-origin-allow header.
package httpfetch

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mwantia/querystore/operator"
)

// CrossOriginHeader is injected into every outbound request built by
// this operator, regardless of key.
const (
	CrossOriginHeader      = "Access-Control-Allow-Origin"
	CrossOriginHeaderValue = "*"
)

type HTTPBackend struct {
	client   *http.Client
	endpoint string
	info     *operator.Info
}

// NewHTTPBackend creates a pass-through operator targeting endpoint,
// e.g. "http://host:port". The endpoint is used verbatim apart from
// trailing-slash trimming.
func NewHTTPBackend(endpoint string) *HTTPBackend {
	return &HTTPBackend{
		client: &http.Client{
			Transport: &crossOriginTransport{base: http.DefaultTransport},
		},
		endpoint: strings.TrimSuffix(endpoint, "/"),
		info: &operator.Info{
			Scheme: "http",
			ID:     uuid.Must(uuid.NewV7()).String(),
			Capabilities: &operator.Capabilities{
				Capabilities: []operator.Capability{
					operator.CapabilityStat,
					operator.CapabilityRead,
				},
			},
		},
	}
}

// Info returns static information about this operator instance.
func (hb *HTTPBackend) Info() *operator.Info {
	return hb.info
}

// Endpoint returns the endpoint this operator was constructed with.
func (hb *HTTPBackend) Endpoint() string {
	return hb.endpoint
}

func (hb *HTTPBackend) keyURL(key string) string {
	return hb.endpoint + "/" + strings.TrimPrefix(key, "/")
}

// crossOriginTransport decorates every request with the cross-origin
// header before handing it to the base transport.
type crossOriginTransport struct {
	base http.RoundTripper
}

func (ct *crossOriginTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(CrossOriginHeader, CrossOriginHeaderValue)
	return ct.base.RoundTrip(req)
}
