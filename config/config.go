package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported container format names.
const (
	FormatGzip    = "gzip"
	FormatZlib    = "zlib"
	FormatDeflate = "deflate"
)

type Config struct {
	Format     string `yaml:"format"`      // Container format: gzip, zlib or deflate.
	Level      int    `yaml:"level"`       // Compression level (-1..9).
	WindowBits int    `yaml:"window_bits"` // History window size in bits (8..15).
	BufferSize int    `yaml:"buffer_size"` // Output chunk size for the stream driver.
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Level:      -1,
		Format:     FormatGzip,
		WindowBits: 15,
		BufferSize: 32 * 1024, // 32KB
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Start from defaults so omitted keys keep their documented values.
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	switch config.Format {
	case FormatGzip, FormatZlib, FormatDeflate:
	default:
		return fmt.Errorf("format must be one of %q, %q or %q", FormatGzip, FormatZlib, FormatDeflate)
	}

	if config.Level < -1 || config.Level > 9 {
		return fmt.Errorf("level must be between -1 and 9")
	}

	if config.WindowBits < 8 || config.WindowBits > 15 {
		return fmt.Errorf("window_bits must be between 8 and 15")
	}

	if config.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be greater than 0")
	}

	return nil
}
