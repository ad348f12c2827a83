package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	ErrTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrTypeInternal     ErrorType = "INTERNAL"
	ErrTypeUnavailable  ErrorType = "UNAVAILABLE"
	ErrTypeRateLimit    ErrorType = "RATE_LIMIT"
	ErrTypeTransport    ErrorType = "TRANSPORT"
	ErrTypeHTTPStatus   ErrorType = "HTTP_STATUS"
)

// ErrNoUser is returned by the local session store when nobody is logged in.
var ErrNoUser = stderrors.New("no user stored")

type DomainError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Err        error
	Stack      []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

func Unauthorized(message string, err error) *DomainError {
	return New(ErrTypeUnauthorized, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

func Unavailable(message string, err error) *DomainError {
	return New(ErrTypeUnavailable, message, err)
}

func RateLimit(message string, err error) *DomainError {
	return New(ErrTypeRateLimit, message, err)
}

// Transport wraps a failure that happened before any HTTP status was received.
func Transport(message string, err error) *DomainError {
	return New(ErrTypeTransport, message, err)
}

// FromStatus classifies a response whose status code fell outside 2xx.
// Refused credentials and throttling get their own types; anything else is
// HTTP_STATUS.
func FromStatus(code int, message string) *DomainError {
	var e *DomainError
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		e = Unauthorized(message, nil)
	case http.StatusTooManyRequests:
		e = RateLimit(message, nil)
	default:
		e = New(ErrTypeHTTPStatus, message, nil)
	}
	e.StatusCode = code
	return e
}

// FromPanic turns a recovered panic value into an internal error.
func FromPanic(recovered interface{}) *DomainError {
	return &DomainError{
		Type:    ErrTypeInternal,
		Message: "recovered from panic",
		Err:     fmt.Errorf("%v", recovered),
		Stack:   goerrors.Wrap(recovered, 2).Stack(),
	}
}

// TypeOf reports the DomainError type found in err's chain, or "" if there is none.
func TypeOf(err error) ErrorType {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Type
	}
	return ""
}

// StatusCode reports the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.StatusCode
	}
	return 0
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
