package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(tracing bool) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core), tracing), logs
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, ParseLevel(Debug))
	require.Equal(t, zapcore.InfoLevel, ParseLevel(Info))
	require.Equal(t, zapcore.WarnLevel, ParseLevel(Warning))
	require.Equal(t, zapcore.ErrorLevel, ParseLevel(Error))
	require.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestLogger_FieldsAndError(t *testing.T) {
	log, logs := newObserved(false)

	log.Warn("backend call failed", errors.New("boom"),
		map[string]interface{}{"method": "Embeddings", "code": "Unavailable"},
		map[string]interface{}{"code": "Internal"},
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.Equal(t, "boom", fields["error"])
	require.Equal(t, "Embeddings", fields["method"])
	require.Equal(t, "Internal", fields["code"])
}

func TestLogger_WithContextAddsTraceIDs(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	log, logs := newObserved(true)
	log.InfoWithContext(ctx, "rpc finished", nil)
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
	require.Equal(t, "00f067aa0ba902b7", fields["span_id"])

	untraced, logs := newObserved(false)
	untraced.InfoWithContext(ctx, "rpc finished", nil)
	require.NotContains(t, logs.All()[0].ContextMap(), "trace_id")
}

func TestLogger_DebugFilteredByLevel(t *testing.T) {
	core, logs := observer.New(ParseLevel(Info))
	log := NewFromZap(zap.New(core), false)

	log.Debug("payload", nil, map[string]interface{}{"text": "secret"})
	log.Info("done", nil)
	require.Equal(t, 1, logs.Len())
}

func TestNewLoggerClient(t *testing.T) {
	log, err := NewLoggerClient(Config{Level: Debug, ServiceName: "gateway-test"})
	require.NoError(t, err)
	require.True(t, log.Zap.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLoggerClient(Config{})
	require.NoError(t, err)
	require.False(t, log.Zap.Core().Enabled(zapcore.DebugLevel))
	require.True(t, log.Zap.Core().Enabled(zapcore.InfoLevel))
}
