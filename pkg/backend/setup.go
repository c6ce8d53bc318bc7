package backend

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/inference-gateway/pkg/binary"
	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
	"github.com/Aleph-Alpha/inference-gateway/pkg/logger"
	"github.com/Aleph-Alpha/inference-gateway/pkg/metrics"
	"github.com/Aleph-Alpha/inference-gateway/pkg/rest"
	"github.com/Aleph-Alpha/inference-gateway/pkg/tracer"
)

// NewClient builds the backend selected by cfg.Type. tr and observer may be nil.
func NewClient(cfg Config, log rest.Logger, tr rest.Tracer, observer rest.Observer) (inference.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Type {
	case TypeBinary:
		return binary.NewClient(), nil
	default:
		return rest.NewClient(cfg.REST, log, tr, observer)
	}
}

// ClientParams groups the dependencies of NewClientWithDI.
type ClientParams struct {
	fx.In

	Config  Config
	Logger  *logger.Logger
	Tracer  *tracer.Tracer
	Metrics metrics.Collector
}

// NewClientWithDI builds the backend from fx-injected dependencies.
func NewClientWithDI(params ClientParams) (inference.Client, error) {
	client, err := NewClient(params.Config, params.Logger, params.Tracer, params.Metrics)
	if err != nil {
		return nil, err
	}
	backendType := params.Config.Type
	if backendType == "" {
		backendType = TypeREST
	}
	fields := map[string]interface{}{"type": backendType}
	if backendType == TypeREST {
		fields["base_url"] = params.Config.REST.BaseURL
	}
	params.Logger.Info("inference backend configured", nil, fields)
	return client, nil
}

// RegisterBackendLifecycle releases the backend's resources on shutdown.
func RegisterBackendLifecycle(lc fx.Lifecycle, client inference.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if c, ok := client.(interface{ Close() error }); ok {
				return c.Close()
			}
			return nil
		},
	})
}
