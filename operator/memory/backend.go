// Package memory provides an in-memory operator over an ordered key
// index. It is the reference backend for adapter tests and for host-local
// scratch data: keys enumerate lexicographically, and listing can resume
// natively after a pivot key.
//
// The backend holds no locks. It is built for the single-threaded,
// cooperatively scheduled host this module targets and must not be
// shared across OS threads.
package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/mwantia/querystore/operator"
	"github.com/tidwall/btree"
)

type MemoryBackend struct {
	keys *btree.Map[string, *object]
	info *operator.Info
}

type object struct {
	buffer []byte
	modify time.Time
	etag   string
	isDir  bool
}

type Option func(*options)

type options struct {
	disableStartAfter bool
}

// WithoutStartAfter removes the native start-after listing capability,
// forcing adapters to fall back to client-side offset filtering.
func WithoutStartAfter() Option {
	return func(o *options) {
		o.disableStartAfter = true
	}
}

func NewMemoryBackend(opts ...Option) *MemoryBackend {
	var options options
	for _, opt := range opts {
		opt(&options)
	}

	capabilities := []operator.Capability{
		operator.CapabilityStat,
		operator.CapabilityRead,
		operator.CapabilityWrite,
		operator.CapabilityDelete,
		operator.CapabilityList,
	}
	if !options.disableStartAfter {
		capabilities = append(capabilities, operator.CapabilityListStartAfter)
	}

	return &MemoryBackend{
		keys: btree.NewMap[string, *object](0),
		info: &operator.Info{
			Scheme: "memory",
			ID:     uuid.Must(uuid.NewV7()).String(),
			Capabilities: &operator.Capabilities{
				Capabilities: capabilities,
			},
		},
	}
}

// Info returns static information about this operator instance.
func (mb *MemoryBackend) Info() *operator.Info {
	return mb.info
}
