package adapter

import (
	goerrors "errors"
	"time"

	"github.com/mwantia/querystore/data"
	"github.com/mwantia/querystore/data/errors"
	"github.com/mwantia/querystore/operator"
)

// epoch is the fallback modification time when a backend reports none.
// A policy, not a bug: the store contract requires a timestamp.
var epoch = time.Unix(0, 0).UTC()

// ToObjectMeta converts operator metadata into the store contract's
// shape. Total function: it never fails, falling back to documented
// defaults instead.
func ToObjectMeta(location string, meta *operator.Metadata) *data.ObjectMeta {
	result := &data.ObjectMeta{
		Location:     location,
		LastModified: epoch,
	}
	if meta == nil {
		return result
	}

	// Backends may report signed lengths (-1 for unknown)
	if meta.ContentLength > 0 {
		result.Size = meta.ContentLength
	}
	if meta.LastModified != nil {
		result.LastModified = *meta.LastModified
	}
	result.ETag = meta.ETag
	result.Version = meta.Version

	return result
}

// TranslateError converts an operator failure into the store contract's
// typed errors. The original error is always preserved as the cause;
// kinds without a dedicated mapping surface as Generic.
func TranslateError(err error, location string) error {
	if err == nil {
		return nil
	}

	var opErr *operator.Error
	if !goerrors.As(err, &opErr) {
		return errors.StoreGeneric(err, "unknown")
	}

	switch opErr.Kind {
	case operator.KindNotFound:
		return errors.StoreNotFound(err, location)
	case operator.KindUnsupported:
		return errors.StoreNotSupported(err, opErr.Op)
	case operator.KindAlreadyExists:
		return errors.StoreAlreadyExists(err, location)
	}

	return errors.StoreGeneric(err, string(opErr.Kind))
}
