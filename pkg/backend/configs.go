package backend

import (
	"fmt"

	"github.com/Aleph-Alpha/inference-gateway/pkg/rest"
)

// Backend types.
const (
	TypeREST   = "rest"
	TypeBinary = "binary"
)

// Config selects and configures the inference backend.
type Config struct {
	// Type is "rest" (default) or "binary".
	Type string `yaml:"type" envconfig:"BACKEND_TYPE"`

	// REST configures the REST client. Ignored for other types.
	REST rest.Config `yaml:"rest" ignored:"true"`
}

// Validate checks the backend type and the settings of the selected backend.
func (c Config) Validate() error {
	switch c.Type {
	case "", TypeREST:
		if err := c.REST.Validate(); err != nil {
			return fmt.Errorf("backend rest: %w", err)
		}
		return nil
	case TypeBinary:
		return nil
	default:
		return fmt.Errorf("unknown backend type %q, expected %q or %q", c.Type, TypeREST, TypeBinary)
	}
}
