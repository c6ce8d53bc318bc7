// Package logger provides the structured JSON logger used across the gateway.
//
// Logger wraps a zap.Logger. Every method takes a message, an optional error
// and any number of field maps:
//
//	log, err := logger.NewLoggerClient(logger.Config{Level: logger.Info, EnableTracing: true})
//	if err != nil {
//		return err
//	}
//
//	log.Info("gateway listening", nil, map[string]interface{}{"address": addr})
//	log.WarnWithContext(ctx, "backend call failed", err, map[string]interface{}{
//		"method": "Embeddings",
//	})
//
// The *WithContext variants add trace_id and span_id of the span active in
// ctx when tracing is enabled in the configuration.
//
// Entries are JSON on stderr with an ISO8601 "timestamp", an upper-case
// "level", the caller, and the initial fields "pid" and "service".
//
// FX Module Integration:
//
//	app := fx.New(
//		fx.Supply(logger.Config{Level: "debug"}),
//		logger.FXModule,
//	)
//
// The module syncs the logger when the application stops.
package logger
