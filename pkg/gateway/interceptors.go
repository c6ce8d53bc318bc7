package gateway

import (
	"context"
	"fmt"
	"path"
	"runtime/debug"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/inference-gateway/pkg/metrics"
)

// Tracer continues the caller's trace and opens one span per RPC.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
	SetAttributes(span trace.Span, attrs map[string]interface{})
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Interceptors returns the unary interceptor chain, outermost first.
// A nil tracer or collector leaves out the matching interceptor.
func Interceptors(log Logger, tr Tracer, collector metrics.Collector) []grpc.UnaryServerInterceptor {
	chain := []grpc.UnaryServerInterceptor{recoveryInterceptor(log)}
	if tr != nil {
		chain = append(chain, tracingInterceptor(tr))
	}
	if collector != nil {
		chain = append(chain, metricsInterceptor(collector))
	}
	return append(chain, loggingInterceptor(log))
}

// recoveryInterceptor turns a handler panic into codes.Internal so one bad
// request cannot take the process down.
func recoveryInterceptor(log Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic in rpc handler", fmt.Errorf("%v", r), map[string]interface{}{
					"method": info.FullMethod,
					"stack":  string(debug.Stack()),
				})
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

func tracingInterceptor(tr Tracer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			carrier := make(map[string]string, md.Len())
			for k, v := range md {
				if len(v) > 0 {
					carrier[k] = v[0]
				}
			}
			ctx = tr.SetCarrierOnContext(ctx, carrier)
		}

		ctx, span := tr.StartSpan(ctx, strings.TrimPrefix(info.FullMethod, "/"))
		defer span.End()

		resp, err := handler(ctx, req)
		tr.SetAttributes(span, map[string]interface{}{
			"rpc.system":           "grpc",
			"rpc.method":           methodName(info.FullMethod),
			"rpc.grpc.status_code": int(status.Code(err)),
		})
		if err != nil {
			tr.RecordErrorOnSpan(span, err)
		}
		return resp, err
	}
}

func metricsInterceptor(collector metrics.Collector) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		method := methodName(info.FullMethod)
		start := time.Now()
		done := collector.TrackInFlight(method)
		defer done()

		resp, err := handler(ctx, req)
		collector.IncrementRequests(method, status.Code(err).String())
		collector.RecordRequestDuration(start, method)
		return resp, err
	}
}

func loggingInterceptor(log Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := map[string]interface{}{
			"method":      methodName(info.FullMethod),
			"code":        code.String(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		switch code {
		case codes.OK:
			log.DebugWithContext(ctx, "rpc finished", nil, fields)
		case codes.InvalidArgument, codes.Canceled, codes.DeadlineExceeded, codes.Unimplemented:
			log.InfoWithContext(ctx, "rpc finished", err, fields)
		default:
			log.WarnWithContext(ctx, "rpc failed", err, fields)
		}
		return resp, err
	}
}

// methodName strips the service prefix from a full method name.
func methodName(fullMethod string) string {
	return path.Base(fullMethod)
}
