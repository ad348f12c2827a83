package webclient

import (
	"context"
	"fmt"

	"linkfatec/internal/api"
	"linkfatec/internal/errors"

	"go.uber.org/zap"
)

// ApplicationResponse is the outcome of one service call: the decoded body on a
// 2xx response, or the classified failure.
type ApplicationResponse[T any] struct {
	Data       *T
	Err        error
	StatusCode int
}

func (r ApplicationResponse[T]) Succeeded() bool {
	return r.Err == nil
}

// Execute runs call and folds every way it can go wrong (transport error,
// non-2xx status, panic) into the returned value. It never panics.
func Execute[T any](ctx context.Context, logger *zap.Logger, call func(ctx context.Context) (*api.Response[T], error)) (out ApplicationResponse[T]) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("service call panicked", zap.Any("panic", r))
			out = ApplicationResponse[T]{Err: errors.FromPanic(r)}
		}
	}()

	resp, err := call(ctx)
	if err != nil {
		if ctx.Err() != nil {
			err = errors.Transport("request cancelled", ctx.Err())
		}
		return ApplicationResponse[T]{Err: err}
	}
	if resp == nil {
		return ApplicationResponse[T]{Err: errors.Internal("service returned no response", nil)}
	}

	if !resp.IsSuccessful() {
		logger.Warn("unexpected status code",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", resp.ErrorBody))
		return ApplicationResponse[T]{
			Err:        errors.FromStatus(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode)),
			StatusCode: resp.StatusCode,
		}
	}

	body := resp.Body
	return ApplicationResponse[T]{Data: &body, StatusCode: resp.StatusCode}
}
