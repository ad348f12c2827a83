// Package resource holds the envelope every repository operation returns.
package resource

// ErrorState is the closed set of failure kinds surfaced to view-models.
type ErrorState int

const (
	// Unexpected covers every failure the repositories see today.
	Unexpected ErrorState = iota + 1
)

func (e ErrorState) String() string {
	switch e {
	case Unexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// AppResource carries either a payload or an error kind, never both. Build it
// with Success or Failure so the invariant holds.
type AppResource[T any] struct {
	Data      *T
	Error     bool
	ErrorKind *ErrorState
}

func Success[T any](data T) AppResource[T] {
	return AppResource[T]{Data: &data}
}

// Empty is a success without a payload, used by operations whose response body is discarded.
func Empty[T any]() AppResource[T] {
	return AppResource[T]{}
}

func Failure[T any](kind ErrorState) AppResource[T] {
	return AppResource[T]{Error: true, ErrorKind: &kind}
}

// Kind returns the error kind, or 0 for successes.
func (r AppResource[T]) Kind() ErrorState {
	if r.ErrorKind == nil {
		return 0
	}
	return *r.ErrorKind
}

// Payload returns the data or T's zero value.
func (r AppResource[T]) Payload() T {
	var zero T
	if r.Data == nil {
		return zero
	}
	return *r.Data
}
