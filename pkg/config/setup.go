package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/inference-gateway/pkg/backend"
)

// Load builds the configuration from the defaults, the YAML file at path and
// the environment, in that order. An empty path skips the file.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return AppConfig{}, fmt.Errorf("read config file: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// decodeYAML rejects unknown keys so typos in the file do not go unnoticed.
func decodeYAML(data []byte, cfg *AppConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	sections := []struct {
		name   string
		target interface{}
	}{
		{"grpc_server", &cfg.GRPCServer},
		{"backend", &cfg.Backend},
		{"backend.rest", &cfg.Backend.REST},
		{"logging", &cfg.Logging},
		{"metrics", &cfg.Metrics},
		{"tracing", &cfg.Tracing},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return fmt.Errorf("load %s from environment: %w", s.name, err)
		}
	}
	return nil
}

// Validate checks every section.
func (c AppConfig) Validate() error {
	if err := c.GRPCServer.Validate(); err != nil {
		return err
	}
	if c.GRPCServer.Port == 0 {
		return errors.New("grpc port must be set")
	}
	if err := c.Backend.Validate(); err != nil {
		return err
	}
	if c.Backend.Type == backend.TypeREST || c.Backend.Type == "" {
		if c.Backend.REST.BaseURL == "" {
			return errors.New("backend rest: base url must be set")
		}
		if c.Backend.REST.TimeoutS <= 0 {
			return fmt.Errorf("backend rest: timeout must be positive, got %d", c.Backend.REST.TimeoutS)
		}
	}
	return nil
}
