package token

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/flate"
)

// Config holds the writer tunables. Writers read it but never change it,
// so one Config may be shared by concurrent writers.
type Config struct {
	// CompressionThreshold is the raw byte size at or above which binary
	// arrays are deflate compressed.
	CompressionThreshold int `yaml:"compressionThreshold"`
	// CompressionLevel is the deflate level used for compressed arrays.
	CompressionLevel int `yaml:"compressionLevel"`
	// MaxLineLength bounds ASCII array element lines.
	MaxLineLength int `yaml:"maxLineLength"`
}

func DefaultConfig() Config {
	return Config{
		CompressionThreshold: 1024,
		CompressionLevel:     flate.DefaultCompression,
		MaxLineLength:        2048,
	}
}

func (c *Config) Validate() error {
	if c.CompressionThreshold < 0 {
		return fmt.Errorf("compressionThreshold must not be negative, got %d", c.CompressionThreshold)
	}
	if c.CompressionLevel < flate.HuffmanOnly || c.CompressionLevel > flate.BestCompression {
		return fmt.Errorf("compressionLevel must be between %d and %d, got %d",
			flate.HuffmanOnly, flate.BestCompression, c.CompressionLevel)
	}
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("maxLineLength must be positive, got %d", c.MaxLineLength)
	}
	return nil
}

// ParseConfig decodes a YAML configuration. Fields absent from d keep
// their default values; unknown fields are rejected.
func ParseConfig(d []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(d, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfig(d)
}
