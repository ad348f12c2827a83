// Package repository turns web-client outcomes into resource.AppResource values.
// No error or panic crosses this package's exported methods.
package repository

import (
	"context"

	"linkfatec/internal/errors"
	"linkfatec/internal/resource"
	"linkfatec/internal/telemetry"
	"linkfatec/internal/webclient"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("linkfatec/repository")

// fetch runs call and keeps its payload on success.
func fetch[T any](ctx context.Context, logger *zap.Logger, op string, call func(ctx context.Context) webclient.ApplicationResponse[T]) resource.AppResource[T] {
	return guard(ctx, logger, op, func(ctx context.Context) resource.AppResource[T] {
		resp := call(ctx)
		if !resp.Succeeded() {
			return failed[T](logger, op, resp.Err)
		}
		if resp.Data == nil {
			var zero T
			return resource.Success(zero)
		}
		return resource.Success(*resp.Data)
	})
}

// send runs call and discards the response body.
func send[B any](ctx context.Context, logger *zap.Logger, op string, call func(ctx context.Context) webclient.ApplicationResponse[B]) resource.AppResource[any] {
	return guard(ctx, logger, op, func(ctx context.Context) resource.AppResource[any] {
		resp := call(ctx)
		if !resp.Succeeded() {
			return failed[any](logger, op, resp.Err)
		}
		return resource.Empty[any]()
	})
}

func guard[T any](ctx context.Context, logger *zap.Logger, op string, fn func(ctx context.Context) resource.AppResource[T]) (res resource.AppResource[T]) {
	ctx, span := tracer.Start(ctx, op)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := errors.FromPanic(r)
			telemetry.Fail(span, err)
			logger.Error("repository operation panicked",
				zap.String("op", op),
				zap.Error(err),
				zap.ByteString("stack", err.StackTrace()))
			res = resource.Failure[T](resource.Unexpected)
		}
	}()

	res = fn(ctx)
	span.SetAttributes(telemetry.Bool("result.error", res.Error))
	return res
}

func failed[T any](logger *zap.Logger, op string, err error) resource.AppResource[T] {
	logger.Error("repository operation failed",
		zap.String("op", op),
		zap.String("error_type", string(errors.TypeOf(err))),
		zap.Int("status_code", errors.StatusCode(err)),
		zap.Error(err))
	return resource.Failure[T](resource.Unexpected)
}
