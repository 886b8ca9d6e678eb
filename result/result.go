// Package result implements the Ok/Err sum type and its combinators.
package result

import (
	"errors"
	"fmt"
)

// ErrUnwrapOnErr is the panic cause when Unwrap is called on an Err
// result. The panic value is an error wrapping this sentinel, so recover
// sites can identify it with errors.Is.
var ErrUnwrapOnErr = errors.New("result: Unwrap called on Err result")

// Result holds either a success value or an error, tagged by whether err
// is nil. The zero value is Ok of T's zero value.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a success result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failure result carrying message.
func Err[T any](message string) Result[T] {
	return Result[T]{err: errors.New(message)}
}

// Errf constructs a failure result from a format string. The format
// supports %w, so an underlying error can be wrapped and later matched
// with errors.Is through Err or Get.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Errorf(format, args...)}
}

// From bridges a conventional (value, error) pair into a Result:
// a nil error yields Ok(value), anything else yields a failure carrying
// err unchanged.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}

	return Result[T]{value: value}
}

// IsOk reports whether the result holds a success value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the result holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap returns the success value. Calling it on an Err result is a
// caller logic error: it panics with an error wrapping ErrUnwrapOnErr and
// the stored message. Call sites should prove success with IsOk first or
// use UnwrapOr / Get instead.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Errorf("%w: %v", ErrUnwrapOnErr, r.err))
	}

	return r.value
}

// UnwrapOr returns the success value, or fallback when the result is an
// Err. It never fails.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}

	return r.value
}

// UnwrapOrElse returns the success value, or the output of fn applied to
// the stored error. fn is invoked only on Err results.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err != nil {
		return fn(r.err)
	}

	return r.value
}

// Map applies f to the success value and returns the new Ok result.
// On an Err result, f is never invoked and the existing error propagates
// untouched. The application is eager, not deferred.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.err != nil {
		return r
	}

	return Result[T]{value: f(r.value)}
}

// Err returns the stored error, or nil when the result is Ok.
func (r Result[T]) Err() error { return r.err }

// Get bridges the result back to a conventional (value, error) pair.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// String renders "Ok(value)" or "Err(message)", keeping logs and examples
// readable.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the success value of r, changing the value type from T
// to U. On an Err result, f is never invoked and the error carries over.
// This is the package-level form of Result.Map: a method cannot introduce
// the second type parameter.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}

	return Result[U]{value: f(r.value)}
}
