package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Tracer starts one span per backend call and exports its context as
// outbound headers.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
	SetAttributes(span trace.Span, attrs map[string]interface{})
	GetCarrier(ctx context.Context) map[string]string
}

// Observer receives the latency and outcome of every backend call.
type Observer interface {
	ObserveBackendCall(operation, outcome string, d time.Duration)
}

// Client implements inference.Client on top of the inference server's REST API.
//
// A single Client is shared by all requests. Its state is read-only after
// construction and the underlying http.Client pools connections, so no
// locking is needed.
type Client struct {
	baseURL    string
	mode       string
	token      string
	maxBody    int64
	paths      Paths
	fields     Fields
	httpClient *http.Client
	logger     Logger
	tracer     Tracer
	observer   Observer
}

var _ inference.Client = (*Client)(nil)

// NewClient validates cfg and builds a Client. tracer and observer may be nil.
func NewClient(cfg Config, logger Logger, tracer Tracer, observer Observer) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = cfg.MaxIdleConnsPerHost
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost

	if tracer == nil {
		tracer = noopTracer{}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		mode:    cfg.RequestMode,
		token:   cfg.ServiceToken,
		maxBody: cfg.MaxResponseBytes,
		paths:   cfg.Paths,
		fields:  cfg.Fields,
		httpClient: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutS) * time.Second,
			Transport: transport,
		},
		logger:   logger,
		tracer:   tracer,
		observer: observer,
	}, nil
}

// Close releases idle pooled connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

type noopTracer struct{}

func (noopTracer) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return noop.NewTracerProvider().Tracer("").Start(ctx, name)
}

func (noopTracer) RecordErrorOnSpan(trace.Span, error) {}

func (noopTracer) SetAttributes(trace.Span, map[string]interface{}) {}

func (noopTracer) GetCarrier(context.Context) map[string]string { return nil }
