package pipeline

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/noamBarkai/adam/types"
)

// Config controls data-parallel aggregation behavior.
type Config struct {
	// Workers is the number of shard workers aggregating in parallel.
	// Each worker owns a private observation table.
	//
	// Default: runtime.GOMAXPROCS(0)
	Workers int `yaml:"workers"`

	// ChunkSize is the preferred residue batch size pulled from the source
	// per worker iteration. Larger chunks amortize source locking; smaller
	// chunks balance uneven shards better.
	//
	// Default: 4096
	ChunkSize int `yaml:"chunkSize"`
}

// applyDefaults fills zero-valued fields with defaults.
func (c *Config) applyDefaults() {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = 4096
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped with detail) if any field is negative
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", types.ErrInvalidConfig, c.Workers)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunkSize must be non-negative, got %d", types.ErrInvalidConfig, c.ChunkSize)
	}

	return nil
}

// LoadConfig reads a Config from a YAML file, validates it, and applies
// defaults for unset fields.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Validated configuration with defaults applied
//   - error: File, parse, or validation failure
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}
