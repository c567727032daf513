package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns request ID from context. If request ID is not set, return new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, CtxWithRequestID(ctx, newID)
}

// CtxWithRequestID binds a known request ID, such as a webhook delivery ID, to the context
func CtxWithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, id)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}

// TimeFunc is the clock of a scan. Report timestamps are taken from it.
type TimeFunc func() time.Time

// CtxTime returns time from the clock in context, or the current time
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// InheritContextValues copies the logger, request ID and clock of src into dst. A
// background scan started by a webhook keeps them after the request is done.
func InheritContextValues(dst, src context.Context) context.Context {
	if logger, ok := src.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		dst = With(dst, logger)
	}
	if reqID, ok := src.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = CtxWithRequestID(dst, reqID)
	}
	if timeFunc, ok := src.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = CtxWithTime(dst, timeFunc)
	}

	return dst
}
