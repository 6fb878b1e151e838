// Package errors defines the typed error taxonomy of the store contract.
// Callers are expected to branch on NotFound, NotSupported, AlreadyExists
// and BackendUnavailable; Generic carries enough context for diagnostics
// but is not meant to be pattern-matched by kind.
package errors

import (
	"errors"
	"fmt"
)

// NotFound reports that no object exists at the given location.
type NotFound struct {
	Location string
	Cause    error
}

func (e *NotFound) Error() string {
	return format("object not found at '%s'", e.Location, e.Cause)
}

func (e *NotFound) Unwrap() error {
	return e.Cause
}

// NotSupported reports an operation that is intentionally unimplemented.
// It is used in place of silent partial behavior.
type NotSupported struct {
	Operation string
	Cause     error
}

func (e *NotSupported) Error() string {
	return format("operation '%s' not supported", e.Operation, e.Cause)
}

func (e *NotSupported) Unwrap() error {
	return e.Cause
}

// AlreadyExists reports that an object already exists at the given location.
type AlreadyExists struct {
	Location string
	Cause    error
}

func (e *AlreadyExists) Error() string {
	return format("object already exists at '%s'", e.Location, e.Cause)
}

func (e *AlreadyExists) Unwrap() error {
	return e.Cause
}

// BackendUnavailable reports that no backend operator could be built
// for the given scheme, either because the scheme is unknown or because
// operator construction rejected the current configuration.
type BackendUnavailable struct {
	Scheme string
	Cause  error
}

func (e *BackendUnavailable) Error() string {
	return format("no backend available for scheme '%s'", e.Scheme, e.Cause)
}

func (e *BackendUnavailable) Unwrap() error {
	return e.Cause
}

// Generic preserves a backend failure that has no dedicated store error.
// The original backend error is always kept as the cause.
type Generic struct {
	Kind  string
	Cause error
}

func (e *Generic) Error() string {
	return format("backend failure '%s'", e.Kind, e.Cause)
}

func (e *Generic) Unwrap() error {
	return e.Cause
}

// StoreNotFound creates a NotFound error for the given location.
func StoreNotFound(err error, location string) error {
	return &NotFound{Location: location, Cause: err}
}

// StoreNotSupported creates a NotSupported error for the given operation.
func StoreNotSupported(err error, operation string) error {
	return &NotSupported{Operation: operation, Cause: err}
}

// StoreAlreadyExists creates an AlreadyExists error for the given location.
func StoreAlreadyExists(err error, location string) error {
	return &AlreadyExists{Location: location, Cause: err}
}

// StoreBackendUnavailable creates a BackendUnavailable error for the given scheme.
func StoreBackendUnavailable(err error, scheme string) error {
	return &BackendUnavailable{Scheme: scheme, Cause: err}
}

// StoreGeneric creates a Generic error preserving the backend cause.
func StoreGeneric(err error, kind string) error {
	return &Generic{Kind: kind, Cause: err}
}

// IsNotFound reports whether err is or wraps a NotFound error.
func IsNotFound(err error) bool {
	var target *NotFound
	return errors.As(err, &target)
}

// IsNotSupported reports whether err is or wraps a NotSupported error.
func IsNotSupported(err error) bool {
	var target *NotSupported
	return errors.As(err, &target)
}

// IsAlreadyExists reports whether err is or wraps an AlreadyExists error.
func IsAlreadyExists(err error) bool {
	var target *AlreadyExists
	return errors.As(err, &target)
}

// IsBackendUnavailable reports whether err is or wraps a BackendUnavailable error.
func IsBackendUnavailable(err error) bool {
	var target *BackendUnavailable
	return errors.As(err, &target)
}

func format(text string, arg any, cause error) string {
	msg := fmt.Sprintf(text, arg)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}

	return "querystore: " + msg
}
