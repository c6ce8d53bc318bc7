package tracer

// Config defines how spans are produced and exported.
type Config struct {
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as deployment.environment, e.g. "production".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport sends spans to an OTLP HTTP collector. The standard
	// OTEL_EXPORTER_OTLP_* variables apply unless Endpoint is set.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the full OTLP traces URL, e.g. "http://otel:4318/v1/traces".
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`
}
