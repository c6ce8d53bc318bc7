package gateway

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
	"github.com/Aleph-Alpha/inference-gateway/pkg/metrics"
	"github.com/Aleph-Alpha/inference-gateway/pkg/mightypb"
)

// Server hosts the inference service and the standard grpc.health.v1
// service on one gRPC server.
type Server struct {
	cfg     Config
	grpc    *grpc.Server
	health  *health.Server
	service *Service
	logger  Logger

	mu        sync.Mutex
	stopped   bool
	stopProbe context.CancelFunc
	probeDone sync.WaitGroup
}

// NewServer wires the service, interceptors and health reporting.
// tr and collector may be nil.
func NewServer(cfg Config, client inference.Client, log Logger, tr Tracer, collector metrics.Collector) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []grpc.ServerOption{
		grpc.ForceServerCodec(mightypb.Codec{}),
		grpc.ChainUnaryInterceptor(Interceptors(log, tr, collector)...),
	}
	if cfg.MaxRecvMsgBytes > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(cfg.MaxRecvMsgBytes))
	}

	hs := health.NewServer()
	s := &Server{
		cfg:     cfg,
		grpc:    grpc.NewServer(opts...),
		health:  hs,
		service: NewService(client, log, hs),
		logger:  log,
	}
	mightypb.RegisterMightyInferenceServer(s.grpc, s.service)
	healthpb.RegisterHealthServer(s.grpc, hs)
	hs.SetServingStatus(mightypb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return s, nil
}

// Serve accepts connections on lis until Stop is called. It also starts the
// backend probe when an interval is configured.
func (s *Server) Serve(lis net.Listener) error {
	s.mu.Lock()
	if !s.stopped && s.stopProbe == nil && s.cfg.HealthProbeIntervalS > 0 {
		s.startProbe(time.Duration(s.cfg.HealthProbeIntervalS) * time.Second)
	}
	s.mu.Unlock()

	s.logger.Info("gRPC server listening", nil, map[string]interface{}{
		"address": lis.Addr().String(),
	})
	err := s.grpc.Serve(lis)
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}

// Stop drains in-flight RPCs, falling back to a hard stop when ctx or the
// configured grace period runs out first.
func (s *Server) Stop(ctx context.Context) {
	s.mu.Lock()
	s.stopped = true
	cancel := s.stopProbe
	s.mu.Unlock()
	if cancel != nil {
		cancel()
		s.probeDone.Wait()
	}
	s.health.Shutdown()

	if s.cfg.GracefulStopTimeoutS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.GracefulStopTimeoutS)*time.Second)
		defer cancel()
	}

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Info("graceful stop timed out, closing remaining connections", ctx.Err())
		s.grpc.Stop()
		<-done
	}
}

// startProbe must be called with mu held.
func (s *Server) startProbe(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopProbe = cancel
	s.probeDone.Add(1)
	go func() {
		defer s.probeDone.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probeCtx, probeCancel := context.WithTimeout(ctx, interval)
				_, _ = s.service.probe(probeCtx)
				probeCancel()
			}
		}
	}()
}
