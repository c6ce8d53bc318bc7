package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *Logger from a Config supplied by the application.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes buffered entries on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// stderr sync fails with EINVAL on some platforms; nothing to flush then
			_ = client.Zap.Sync()
			return nil
		},
	})
}
