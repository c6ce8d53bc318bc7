package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/inference-gateway/pkg/logger"
)

var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// NewClientWithDI builds the tracer from the injected config and logger.
func NewClientWithDI(cfg Config, log *logger.Logger) (*Tracer, error) {
	return NewClient(cfg, log)
}

func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.logger.Info("shutting down tracer", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
