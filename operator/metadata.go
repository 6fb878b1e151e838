package operator

import "time"

// Metadata is the operator-side description of one object. Unlike the
// store contract's ObjectMeta it keeps the backend's raw shape: the
// content length stays signed (HTTP backends report -1 for unknown) and
// the modification time stays optional.
type Metadata struct {
	// ContentLength as reported by the backend. May be negative when
	// the backend does not know the size.
	ContentLength int64

	// LastModified is nil when the backend does not report one.
	LastModified *time.Time

	// ETag is empty when the backend does not report one.
	ETag string

	// Version is empty when the backend does not report one.
	Version string

	// IsDir marks directory-like entries in one-level listings.
	IsDir bool
}

// Entry is one element of a listing: a key plus its metadata.
type Entry struct {
	Key  string
	Meta *Metadata
}
