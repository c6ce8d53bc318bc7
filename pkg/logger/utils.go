package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// fields turns the error and the field maps into zap fields. Later maps
// override earlier ones for duplicate keys.
func (l *Logger) fields(ctx context.Context, err error, maps ...map[string]interface{}) []zap.Field {
	merged := make(map[string]interface{})
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}

	zapFields := make([]zap.Field, 0, len(merged)+3)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	if l.tracingEnabled {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}
	for k, v := range merged {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Info logs general progress.
//
//	logger.Info("gateway listening", nil, map[string]interface{}{
//	    "address": "0.0.0.0:50051",
//	})
func (l *Logger) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.fields(context.Background(), err, fields...)...)
}

// Debug logs details only useful while troubleshooting, such as request payload sizes.
func (l *Logger) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.fields(context.Background(), err, fields...)...)
}

// Warn logs a failure the service recovers from, e.g. a failed backend call.
func (l *Logger) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.fields(context.Background(), err, fields...)...)
}

// Error logs a failure that needs attention.
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.fields(context.Background(), err, fields...)...)
}

// Fatal logs and exits the process with status 1.
func (l *Logger) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.fields(context.Background(), err, fields...)...)
}

// InfoWithContext is Info plus the trace and span IDs found in ctx.
func (l *Logger) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.fields(ctx, err, fields...)...)
}

// DebugWithContext is Debug plus the trace and span IDs found in ctx.
func (l *Logger) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.fields(ctx, err, fields...)...)
}

// WarnWithContext is Warn plus the trace and span IDs found in ctx.
func (l *Logger) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.fields(ctx, err, fields...)...)
}

// ErrorWithContext is Error plus the trace and span IDs found in ctx.
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.fields(ctx, err, fields...)...)
}
