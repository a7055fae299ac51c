// Copyright 2026 NetApp, Inc. All Rights Reserved.

package errors

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ///////////////////////////////////////////////////////////////////////////
// Wrappers for standard library errors package
// ///////////////////////////////////////////////////////////////////////////

func New(message string) error {
	return errors.New(message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}

// ///////////////////////////////////////////////////////////////////////////
// notFoundError
// ///////////////////////////////////////////////////////////////////////////

type notFoundError struct {
	inner   error
	message string
}

func (e *notFoundError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *notFoundError) Unwrap() error { return e.inner }

func NotFoundError(message string, a ...any) error {
	if len(a) == 0 {
		return &notFoundError{message: message}
	}
	return &notFoundError{message: fmt.Sprintf(fmt.Sprintf("%s", message), a...)}
}

func WrapWithNotFoundError(err error, message string, a ...any) error {
	return &notFoundError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notFoundError
	return errors.As(err, &errPtr)
}

// IsResourceNotFoundError returns true if the error or any of its wrapped errors
// indicates a missing resource, whether typed or reported only in the message.
func IsResourceNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if IsNotFoundError(err) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// ///////////////////////////////////////////////////////////////////////////
// alreadyExistsError
// ///////////////////////////////////////////////////////////////////////////

type alreadyExistsError struct {
	inner   error
	message string
}

func (e *alreadyExistsError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *alreadyExistsError) Unwrap() error { return e.inner }

func AlreadyExistsError(message string, a ...any) error {
	if len(a) == 0 {
		return &alreadyExistsError{message: message}
	}
	return &alreadyExistsError{message: fmt.Sprintf(fmt.Sprintf("%s", message), a...)}
}

func WrapWithAlreadyExistsError(err error, message string, a ...any) error {
	return &alreadyExistsError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *alreadyExistsError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidInputError
// ///////////////////////////////////////////////////////////////////////////

type invalidInputError struct {
	inner   error
	message string
}

func (e *invalidInputError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *invalidInputError) Unwrap() error { return e.inner }

func InvalidInputError(message string, a ...any) error {
	if len(a) == 0 {
		return &invalidInputError{message: message}
	}
	return &invalidInputError{message: fmt.Sprintf(fmt.Sprintf("%s", message), a...)}
}

func WrapWithInvalidInputError(err error, message string, a ...any) error {
	return &invalidInputError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

func IsInvalidInputError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidInputError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedError struct {
	message string
}

func (e *unsupportedError) Error() string { return e.message }

func UnsupportedError(message string, a ...any) error {
	if len(a) == 0 {
		return &unsupportedError{message: message}
	}
	return &unsupportedError{message: fmt.Sprintf(fmt.Sprintf("%s", message), a...)}
}

func IsUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unsupportedError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedConfigError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedConfigError struct {
	message string
}

func (e *unsupportedConfigError) Error() string { return e.message }

func UnsupportedConfigError(message string, a ...any) error {
	if len(a) == 0 {
		return &unsupportedConfigError{message: message}
	}
	return &unsupportedConfigError{message: fmt.Sprintf(fmt.Sprintf("%s", message), a...)}
}

func WrapUnsupportedConfigError(err error) error {
	if err == nil {
		return nil
	}
	return multierr.Combine(UnsupportedConfigError("unsupported config error"), err)
}

func IsUnsupportedConfigError(err error) bool {
	if err == nil {
		return false
	}
	var errPointer *unsupportedConfigError
	return errors.As(err, &errPointer)
}

// ///////////////////////////////////////////////////////////////////////////
// timeoutError
// ///////////////////////////////////////////////////////////////////////////

type timeoutError struct {
	message string
}

func (e *timeoutError) Error() string { return e.message }

func TimeoutError(message string, a ...any) error {
	if len(a) == 0 {
		return &timeoutError{message: message}
	}
	return &timeoutError{message: fmt.Sprintf(fmt.Sprintf("%s", message), a...)}
}

func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *timeoutError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// connectionError
// ///////////////////////////////////////////////////////////////////////////

type connectionError struct {
	inner   error
	message string
}

func (e *connectionError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *connectionError) Unwrap() error { return e.inner }

func ConnectionError(message string, a ...any) error {
	if len(a) == 0 {
		return &connectionError{message: message}
	}
	return &connectionError{message: fmt.Sprintf(fmt.Sprintf("%s", message), a...)}
}

func WrapWithConnectionError(err error, message string, a ...any) error {
	return &connectionError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *connectionError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// reconcileIncompleteError
// ///////////////////////////////////////////////////////////////////////////

type reconcileIncompleteError struct {
	message string
}

func (e *reconcileIncompleteError) Error() string { return e.message }

func ReconcileIncompleteError(message string, a ...any) error {
	if len(a) == 0 {
		return &reconcileIncompleteError{message: message}
	}
	return &reconcileIncompleteError{message: fmt.Sprintf(fmt.Sprintf("%s", message), a...)}
}

func IsReconcileIncompleteError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *reconcileIncompleteError
	return errors.As(err, &errPtr)
}
