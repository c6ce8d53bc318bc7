package config

import (
	"github.com/Aleph-Alpha/inference-gateway/pkg/backend"
	"github.com/Aleph-Alpha/inference-gateway/pkg/gateway"
	"github.com/Aleph-Alpha/inference-gateway/pkg/logger"
	"github.com/Aleph-Alpha/inference-gateway/pkg/metrics"
	"github.com/Aleph-Alpha/inference-gateway/pkg/rest"
	"github.com/Aleph-Alpha/inference-gateway/pkg/tracer"
)

// DefaultServiceName names the process in logs, metrics and traces.
const DefaultServiceName = "inference-gateway"

// AppConfig is the complete configuration of the gateway process.
type AppConfig struct {
	GRPCServer gateway.Config `yaml:"grpc_server"`
	Backend    backend.Config `yaml:"backend"`
	Logging    logger.Config  `yaml:"logging"`
	Metrics    metrics.Config `yaml:"metrics"`
	Tracing    tracer.Config  `yaml:"tracing"`
}

// Default returns the configuration used when neither a file nor the
// environment says otherwise.
func Default() AppConfig {
	return AppConfig{
		GRPCServer: gateway.Config{
			Address:              gateway.DefaultAddress,
			Port:                 gateway.DefaultPort,
			GracefulStopTimeoutS: gateway.DefaultGracefulStopTimeoutS,
		},
		Backend: backend.Config{
			Type: backend.TypeREST,
			REST: rest.DefaultConfig(),
		},
		Logging: logger.Config{
			Level:       logger.Info,
			ServiceName: DefaultServiceName,
		},
		Metrics: metrics.Config{
			Enabled:     true,
			Address:     metrics.DefaultMetricsAddress,
			ServiceName: DefaultServiceName,
		},
		Tracing: tracer.Config{
			ServiceName: DefaultServiceName,
		},
	}
}
