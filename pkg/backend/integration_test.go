//go:build integration

package backend

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
	"github.com/Aleph-Alpha/inference-gateway/pkg/logger"
	"github.com/Aleph-Alpha/inference-gateway/pkg/metrics"
	"github.com/Aleph-Alpha/inference-gateway/pkg/rest"
	"github.com/Aleph-Alpha/inference-gateway/pkg/tracer"
)

// createInferenceServer starts the image named by MIGHTY_SERVER_IMAGE and
// returns its base URL.
func createInferenceServer(ctx context.Context, image string) (testcontainers.Container, string, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, "", fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"5050/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{"5050/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5050/tcp").WithStartupTimeout(2*time.Minute),
			wait.ForHTTP("/healthcheck").WithPort("5050/tcp").WithStartupTimeout(2*time.Minute),
		),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to start inference server: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to get host: %w", err)
	}
	return c, fmt.Sprintf("http://%s:%s", host, portStr), nil
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func TestRESTBackend_AgainstInferenceServer(t *testing.T) {
	image := os.Getenv("MIGHTY_SERVER_IMAGE")
	if image == "" {
		t.Skip("MIGHTY_SERVER_IMAGE not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c, baseURL, err := createInferenceServer(ctx, image)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	restCfg := rest.DefaultConfig()
	restCfg.BaseURL = baseURL

	var client inference.Client
	app := fxtest.New(t,
		fx.Supply(
			Config{Type: TypeREST, REST: restCfg},
			logger.Config{Level: logger.Debug},
			metrics.Config{ServiceName: "inference-gateway-it"},
			tracer.Config{ServiceName: "inference-gateway-it"},
		),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		FXModule,
		fx.Populate(&client),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NoError(t, client.HealthCheck(ctx))

	meta, err := client.Metadata(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, meta.Metadata)

	// the image serves exactly one pipeline; other operations may be rejected
	res, err := client.Embeddings(ctx, inference.TextRequest{Text: "The quick brown fox"})
	if err != nil {
		require.ErrorIs(t, err, inference.ErrBackendRejected)
		return
	}
	require.Equal(t, int32(len(res.Embeddings)), res.Shape.Dim1)
	require.Positive(t, res.Shape.Dim2)
}
