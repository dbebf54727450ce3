package basex

import "errors"

var ErrResult = errors.New("result error")

type resultErr struct {
	err error
}

func (e resultErr) Error() string {
	return ErrResult.Error() + ": " + e.err.Error()
}

func (e resultErr) Unwrap() []error {
	return []error{ErrResult, e.err}
}

// Result carries either a value or the error that prevented it, so batch
// operations can report per-item outcomes in a single slice.
type Result[T any] struct {
	v   T
	err error
}

func (r Result[T]) Get() (T, error) {
	return r.v, r.err
}

// Must returns the value or panics with an error wrapping both ErrResult and
// the underlying cause.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(resultErr{err: r.err})
	}

	return r.v
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Ok() bool {
	return r.err == nil
}

func ResultError[T any](err error) Result[T] {
	return Result[T]{
		err: err,
	}
}

func ResultOk[T any](t T) Result[T] {
	return Result[T]{
		v: t,
	}
}

func ResultTuple[T any](t T, err error) Result[T] {
	if err != nil {
		var zero T
		return Result[T]{err: err, v: zero}
	}
	return Result[T]{
		v: t,
	}
}
