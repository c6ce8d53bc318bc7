package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Aleph-Alpha/inference-gateway/pkg/backend"
	"github.com/Aleph-Alpha/inference-gateway/pkg/config"
	"github.com/Aleph-Alpha/inference-gateway/pkg/gateway"
	"github.com/Aleph-Alpha/inference-gateway/pkg/logger"
	"github.com/Aleph-Alpha/inference-gateway/pkg/metrics"
	"github.com/Aleph-Alpha/inference-gateway/pkg/tracer"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			// fail fast on bad configuration before the container starts
			if _, err := config.Load(configPath); err != nil {
				return err
			}
			app := newApp(configPath)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file; environment variables override it")
	return cmd
}

func newApp(configPath string) *fx.App {
	return fx.New(
		config.FXModule(configPath),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		backend.FXModule,
		gateway.FXModule,
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Zap}
		}),
	)
}
