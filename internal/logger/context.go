package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func GetUserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey).(uint)
	return userID, ok
}

// FromContext returns a logger annotated with request_id and user_id
// when present.
func FromContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()

	var fields []any
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if userID, ok := GetUserID(ctx); ok {
		fields = append(fields, "user_id", userID)
	}

	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	return logger
}

func CtxDebug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError logs an error with the underlying error attached.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	fields := append([]any{"error", err.Error()}, args...)
	FromContext(ctx).Error(msg, fields...)
}
