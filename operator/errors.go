package operator

import "fmt"

// Kind classifies an operator failure. The store adapter translates
// kinds into the store contract's typed errors; anything without a
// dedicated mapping surfaces as a generic failure that keeps the
// original error as its cause.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindUnsupported      Kind = "unsupported"
	KindAlreadyExists    Kind = "already_exists"
	KindPermissionDenied Kind = "permission_denied"
	KindInvalidConfig    Kind = "invalid_config"
	KindUnexpected       Kind = "unexpected"
)

// Error is the uniform failure type of the operator abstraction.
type Error struct {
	Kind Kind
	Op   string
	Key  string
	Err  error
}

// NewError creates an operator error of the given kind.
func NewError(kind Kind, op, key string, err error) *Error {
	return &Error{Kind: kind, Op: op, Key: key, Err: err}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("operator %s failed for '%s' (%s)", e.Op, e.Key, e.Kind)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
