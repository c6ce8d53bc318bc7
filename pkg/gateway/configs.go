package gateway

import (
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultAddress              = "0.0.0.0"
	DefaultPort                 = 50051
	DefaultGracefulStopTimeoutS = 10
)

// Config holds the gRPC server settings.
type Config struct {
	Address string `yaml:"address" envconfig:"GRPC_SERVER_ADDRESS"`
	Port    int    `yaml:"port" envconfig:"GRPC_SERVER_PORT"`

	// GracefulStopTimeoutS bounds how long in-flight RPCs may finish on shutdown.
	GracefulStopTimeoutS int `yaml:"graceful_stop_timeout_seconds" envconfig:"GRPC_SERVER_GRACEFUL_STOP_TIMEOUT_SECONDS"`

	// HealthProbeIntervalS makes the server probe the backend periodically
	// and publish the result on grpc.health.v1. Zero disables probing.
	HealthProbeIntervalS int `yaml:"health_probe_interval_seconds" envconfig:"GRPC_SERVER_HEALTH_PROBE_INTERVAL_SECONDS"`

	// MaxRecvMsgBytes limits inbound message size; zero keeps the gRPC default.
	MaxRecvMsgBytes int `yaml:"max_recv_msg_bytes" envconfig:"GRPC_SERVER_MAX_RECV_MSG_BYTES"`
}

// ListenAddress joins address and port.
func (c Config) ListenAddress() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("grpc port %d out of range", c.Port)
	}
	if c.GracefulStopTimeoutS < 0 || c.HealthProbeIntervalS < 0 || c.MaxRecvMsgBytes < 0 {
		return fmt.Errorf("grpc server durations and sizes must not be negative")
	}
	return nil
}
