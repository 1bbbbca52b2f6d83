// Package config loads wordchain settings: defaults, then an optional TOML
// file, then WORDCHAIN_* environment overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// DefaultDictionary is the word list read when none is configured.
const DefaultDictionary = "wordlist.txt"

// Server holds HTTP service settings.
type Server struct {
	Addr string `toml:"addr" validate:"required"` // WORDCHAIN_ADDR (default ":8080")
}

// Config is the complete runtime configuration.
type Config struct {
	Dictionaries []string `toml:"dictionaries" validate:"required,min=1,dive,required"` // WORDCHAIN_DICTIONARY (comma list)
	Format       string   `toml:"format" validate:"oneof=text json yaml"`               // WORDCHAIN_FORMAT
	Color        string   `toml:"color" validate:"oneof=auto always never"`             // WORDCHAIN_COLOR
	LogLevel     string   `toml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat    string   `toml:"log_format" validate:"oneof=text json"`
	MaxChains    int      `toml:"max_chains" validate:"gte=0"` // WORDCHAIN_MAX_CHAINS (0 = all)
	Server       Server   `toml:"server"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Dictionaries: []string{DefaultDictionary},
		Format:       "text",
		Color:        "auto",
		LogLevel:     "info",
		LogFormat:    "text",
		MaxChains:    0,
		Server:       Server{Addr: ":8080"},
	}
}

// Load layers path (if non-empty and present) and the environment over the
// defaults. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &c); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("WORDCHAIN_DICTIONARY"); v != "" {
		c.Dictionaries = splitList(v)
	}
	c.Format = envOrDefault("WORDCHAIN_FORMAT", c.Format)
	c.Color = envOrDefault("WORDCHAIN_COLOR", c.Color)
	c.LogLevel = envOrDefault("WORDCHAIN_LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("WORDCHAIN_LOG_FORMAT", c.LogFormat)
	c.Server.Addr = envOrDefault("WORDCHAIN_ADDR", c.Server.Addr)

	if v := os.Getenv("WORDCHAIN_MAX_CHAINS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDCHAIN_MAX_CHAINS: %w", err)
		}
		c.MaxChains = n
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
