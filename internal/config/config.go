// Package config loads the server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	Port           int           `env:"PALINDROME_PORT" envDefault:"8080"`
	ReadTimeout    time.Duration `env:"PALINDROME_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout   time.Duration `env:"PALINDROME_WRITE_TIMEOUT" envDefault:"30s"`
	MaxRequestSize int           `env:"PALINDROME_MAX_REQUEST_SIZE" envDefault:"1048576"`
	Concurrency    int           `env:"PALINDROME_CONCURRENCY" envDefault:"0"`

	LogFile string `env:"PALINDROME_LOG_FILE"`
	LogJSON bool   `env:"PALINDROME_LOG_JSON" envDefault:"true"`

	// Seed controls whether the sample palindromes are inserted at startup.
	Seed     bool   `env:"PALINDROME_SEED" envDefault:"true"`
	SeedFile string `env:"PALINDROME_SEED_FILE"`
}

// Load reads the optional dotenv files and parses the environment.
// Missing dotenv files are ignored.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.ReadTimeout <= 0 {
		return errors.New("read timeout must be greater than 0")
	}
	if c.WriteTimeout <= 0 {
		return errors.New("write timeout must be greater than 0")
	}
	if c.MaxRequestSize <= 0 {
		return errors.New("max request size must be greater than 0")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
