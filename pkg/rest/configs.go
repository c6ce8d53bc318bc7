package rest

import (
	"fmt"
	"net/url"
	"strings"
)

// Request modes supported by the REST client.
const (
	// ModeJSON sends inputs as a JSON object in a POST body.
	ModeJSON = "json"
	// ModeQuery sends inputs as query parameters of a GET request.
	ModeQuery = "query"
)

const (
	DefaultBaseURL          = "http://localhost:5050"
	DefaultTimeoutS         = 30
	DefaultMaxResponseBytes = 64 << 20
	DefaultMaxIdleConns     = 64
)

// Config holds the settings of the REST backend client.
type Config struct {
	// BaseURL of the inference server, e.g. "http://mighty:5050".
	BaseURL string `yaml:"base_url" envconfig:"BACKEND_REST_BASE_URL"`

	// TimeoutS bounds every backend call, in seconds. Default 30.
	TimeoutS int `yaml:"timeout_seconds" envconfig:"BACKEND_REST_TIMEOUT_SECONDS"`

	// RequestMode is "json" (POST body, default) or "query" (GET parameters).
	RequestMode string `yaml:"request_mode" envconfig:"BACKEND_REST_REQUEST_MODE"`

	// ServiceToken is sent as a bearer token when set.
	ServiceToken string `yaml:"service_token" envconfig:"BACKEND_REST_SERVICE_TOKEN"`

	// MaxIdleConnsPerHost sizes the shared connection pool.
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host" envconfig:"BACKEND_REST_MAX_IDLE_CONNS_PER_HOST"`

	// MaxResponseBytes caps the size of a response body.
	MaxResponseBytes int64 `yaml:"max_response_bytes" envconfig:"BACKEND_REST_MAX_RESPONSE_BYTES"`

	Paths  Paths  `yaml:"paths" envconfig:"BACKEND_REST_PATH"`
	Fields Fields `yaml:"fields" envconfig:"BACKEND_REST_FIELD"`
}

// Paths maps every operation onto an endpoint below BaseURL.
type Paths struct {
	HealthCheck            string `yaml:"health_check" envconfig:"HEALTH_CHECK"`
	Metadata               string `yaml:"metadata" envconfig:"METADATA"`
	Embeddings             string `yaml:"embeddings" envconfig:"EMBEDDINGS"`
	QuestionAnswering      string `yaml:"question_answering" envconfig:"QUESTION_ANSWERING"`
	SentenceTransformers   string `yaml:"sentence_transformers" envconfig:"SENTENCE_TRANSFORMERS"`
	SequenceClassification string `yaml:"sequence_classification" envconfig:"SEQUENCE_CLASSIFICATION"`
	TokenClassification    string `yaml:"token_classification" envconfig:"TOKEN_CLASSIFICATION"`
}

// Fields lists the JSON keys results are read from. Each entry is a list of
// aliases tried in order; the first key present in the response wins.
type Fields struct {
	Embeddings []string `yaml:"embeddings" envconfig:"EMBEDDINGS"`
	Logits     []string `yaml:"logits" envconfig:"LOGITS"`
	Entities   []string `yaml:"entities" envconfig:"ENTITIES"`
	Shape      []string `yaml:"shape" envconfig:"SHAPE"`
	Answer     []string `yaml:"answer" envconfig:"ANSWER"`
	StartIdx   []string `yaml:"start_idx" envconfig:"START_IDX"`
	EndIdx     []string `yaml:"end_idx" envconfig:"END_IDX"`
}

// DefaultConfig returns the settings matching the stock inference server.
func DefaultConfig() Config {
	return Config{
		BaseURL:             DefaultBaseURL,
		TimeoutS:            DefaultTimeoutS,
		RequestMode:         ModeJSON,
		MaxIdleConnsPerHost: DefaultMaxIdleConns,
		MaxResponseBytes:    DefaultMaxResponseBytes,
		Paths:               DefaultPaths(),
		Fields:              DefaultFields(),
	}
}

func DefaultPaths() Paths {
	return Paths{
		HealthCheck:            "/healthcheck",
		Metadata:               "/metadata",
		Embeddings:             "/embeddings",
		QuestionAnswering:      "/question-answering",
		SentenceTransformers:   "/sentence-transformers",
		SequenceClassification: "/sequence-classification",
		TokenClassification:    "/token-classification",
	}
}

func DefaultFields() Fields {
	return Fields{
		Embeddings: []string{"outputs", "embeddings"},
		Logits:     []string{"logits", "outputs"},
		Entities:   []string{"entities", "outputs"},
		Shape:      []string{"shape"},
		Answer:     []string{"answer"},
		StartIdx:   []string{"start_idx", "start"},
		EndIdx:     []string{"end_idx", "end"},
	}
}

// withDefaults fills every zero value from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.TimeoutS == 0 {
		c.TimeoutS = d.TimeoutS
	}
	if c.RequestMode == "" {
		c.RequestMode = d.RequestMode
	}
	if c.MaxIdleConnsPerHost == 0 {
		c.MaxIdleConnsPerHost = d.MaxIdleConnsPerHost
	}
	if c.MaxResponseBytes == 0 {
		c.MaxResponseBytes = d.MaxResponseBytes
	}
	c.Paths = c.Paths.withDefaults(d.Paths)
	c.Fields = c.Fields.withDefaults(d.Fields)
	return c
}

func (p Paths) withDefaults(d Paths) Paths {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Paths{
		HealthCheck:            pick(p.HealthCheck, d.HealthCheck),
		Metadata:               pick(p.Metadata, d.Metadata),
		Embeddings:             pick(p.Embeddings, d.Embeddings),
		QuestionAnswering:      pick(p.QuestionAnswering, d.QuestionAnswering),
		SentenceTransformers:   pick(p.SentenceTransformers, d.SentenceTransformers),
		SequenceClassification: pick(p.SequenceClassification, d.SequenceClassification),
		TokenClassification:    pick(p.TokenClassification, d.TokenClassification),
	}
}

func (f Fields) withDefaults(d Fields) Fields {
	pick := func(v, def []string) []string {
		if len(v) == 0 {
			return def
		}
		return v
	}
	return Fields{
		Embeddings: pick(f.Embeddings, d.Embeddings),
		Logits:     pick(f.Logits, d.Logits),
		Entities:   pick(f.Entities, d.Entities),
		Shape:      pick(f.Shape, d.Shape),
		Answer:     pick(f.Answer, d.Answer),
		StartIdx:   pick(f.StartIdx, d.StartIdx),
		EndIdx:     pick(f.EndIdx, d.EndIdx),
	}
}

// Validate reports configuration errors. Zero values are accepted since
// NewClient fills them with defaults.
func (c Config) Validate() error {
	c = c.withDefaults()
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base url %q must use http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base url %q has no host", c.BaseURL)
	}
	if c.TimeoutS < 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.TimeoutS)
	}
	if c.MaxResponseBytes < 0 {
		return fmt.Errorf("max response bytes must be positive, got %d", c.MaxResponseBytes)
	}
	switch c.RequestMode {
	case ModeJSON, ModeQuery:
	default:
		return fmt.Errorf("unknown request mode %q, expected %q or %q", c.RequestMode, ModeJSON, ModeQuery)
	}
	for name, path := range map[string]string{
		"health_check":            c.Paths.HealthCheck,
		"metadata":                c.Paths.Metadata,
		"embeddings":              c.Paths.Embeddings,
		"question_answering":      c.Paths.QuestionAnswering,
		"sentence_transformers":   c.Paths.SentenceTransformers,
		"sequence_classification": c.Paths.SequenceClassification,
		"token_classification":    c.Paths.TokenClassification,
	} {
		if !strings.HasPrefix(path, "/") {
			return fmt.Errorf("path %s must start with '/', got %q", name, path)
		}
	}
	return nil
}
