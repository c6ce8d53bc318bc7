package gateway

import (
	"context"
	"net"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
	"github.com/Aleph-Alpha/inference-gateway/pkg/logger"
	"github.com/Aleph-Alpha/inference-gateway/pkg/metrics"
	"github.com/Aleph-Alpha/inference-gateway/pkg/tracer"
)

// FXModule provides *Server and runs it for the lifetime of the application.
var FXModule = fx.Module("gateway",
	fx.Provide(NewServerWithDI),
	fx.Invoke(RegisterServerLifecycle),
)

// ServerParams groups the dependencies of NewServerWithDI.
type ServerParams struct {
	fx.In

	Config  Config
	Client  inference.Client
	Logger  *logger.Logger
	Tracer  *tracer.Tracer
	Metrics metrics.Collector
}

func NewServerWithDI(params ServerParams) (*Server, error) {
	return NewServer(params.Config, params.Client, params.Logger, params.Tracer, params.Metrics)
}

// RegisterServerLifecycle binds the listener on start, so a busy port fails
// startup, and drains the server on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", s.cfg.ListenAddress())
			if err != nil {
				return err
			}
			go func() {
				if err := s.Serve(lis); err != nil {
					log.Error("gRPC server stopped", err, nil)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down gRPC server", nil, nil)
			s.Stop(ctx)
			return nil
		},
	})
}
