package config

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/inference-gateway/pkg/backend"
	"github.com/Aleph-Alpha/inference-gateway/pkg/gateway"
	"github.com/Aleph-Alpha/inference-gateway/pkg/logger"
	"github.com/Aleph-Alpha/inference-gateway/pkg/metrics"
	"github.com/Aleph-Alpha/inference-gateway/pkg/tracer"
)

// Sections hands every configuration section to fx as its own value.
type Sections struct {
	fx.Out

	GRPCServer gateway.Config
	Backend    backend.Config
	Logging    logger.Config
	Metrics    metrics.Config
	Tracing    tracer.Config
}

// FXModule loads the configuration from path and the environment.
func FXModule(path string) fx.Option {
	return fx.Module("config",
		fx.Provide(func() (Sections, error) {
			cfg, err := Load(path)
			if err != nil {
				return Sections{}, err
			}
			return cfg.Sections(), nil
		}),
	)
}

// Sections splits c for dependency injection.
func (c AppConfig) Sections() Sections {
	return Sections{
		GRPCServer: c.GRPCServer,
		Backend:    c.Backend,
		Logging:    c.Logging,
		Metrics:    c.Metrics,
		Tracing:    c.Tracing,
	}
}
