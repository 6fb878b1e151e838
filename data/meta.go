package data

import (
	"encoding/json"
	"time"
)

// ObjectMeta describes a single object as seen through the store contract.
// It is a plain value type; nothing in it outlives the call that produced it.
type ObjectMeta struct {
	// Relative location of the object within the store.
	// Equality is byte-exact, no normalization is applied.
	Location string `json:"location"`

	// Size in bytes, as reported by the backend at read time.
	// Never negative; staleness is the caller's responsibility.
	Size int64 `json:"size"`

	// LastModified falls back to the Unix epoch when the backend
	// does not report a modification time.
	LastModified time.Time `json:"last_modified"`

	// ETag as reported by the backend, empty when unavailable.
	ETag string `json:"etag,omitempty"`

	// Version as reported by the backend, empty when unavailable.
	Version string `json:"version,omitempty"`
}

// Marshal provides JSON serialization for ObjectMeta.
func (om *ObjectMeta) Marshal() ([]byte, error) {
	return json.Marshal(om)
}

// Unmarshal provides JSON deserialization for ObjectMeta.
func (om *ObjectMeta) Unmarshal(data []byte) error {
	return json.Unmarshal(data, &om)
}

// PutResult reports the outcome of a completed write.
// Both fields stay empty when the backend cannot report them.
type PutResult struct {
	ETag    string `json:"etag,omitempty"`
	Version string `json:"version,omitempty"`
}

// ListResult is the eager result of a one-level (delimiter) listing.
// Every entry lands in exactly one of the two partitions.
type ListResult struct {
	// CommonPrefixes holds the directory-like entries directly below the prefix.
	CommonPrefixes []string `json:"common_prefixes"`

	// Objects holds the leaf entries directly below the prefix,
	// in the backend's natural enumeration order.
	Objects []*ObjectMeta `json:"objects"`
}
