package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/nvmw/nvmw/src/internal/backend"
	"github.com/nvmw/nvmw/src/internal/constants"
)

// Config is the resolved nvmw configuration.
type Config struct {
	Tool       string           // nvm executable name or path
	Runtime    string           // node executable name or path
	CatalogURL string           // release index override; empty uses the mirror/official index
	Timeouts   backend.Timeouts // per operation class
}

// fileConfig mirrors config.toml. Durations are Go duration strings.
type fileConfig struct {
	Tool       string `toml:"tool"`
	Runtime    string `toml:"runtime"`
	CatalogURL string `toml:"catalog_url"`
	Timeouts   struct {
		Query   string `toml:"query"`
		Change  string `toml:"change"`
		Install string `toml:"install"`
		Fetch   string `toml:"fetch"`
	} `toml:"timeouts"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Tool:     constants.ToolNVM,
		Runtime:  constants.RuntimeNode,
		Timeouts: backend.DefaultTimeouts(),
	}
}

// Load reads the config file from DefaultPaths (a missing file is not an
// error) and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile(DefaultPaths().ConfigFile)
	if err != nil {
		return nil, err
	}
	if url := os.Getenv(constants.EnvCatalogURL); url != "" {
		cfg.CatalogURL = url
	}
	return cfg, nil
}

// LoadFile reads a single config file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over cfg. Unset keys keep their current value.
func Parse(data []byte, cfg *Config) error {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.Tool != "" {
		cfg.Tool = fc.Tool
	}
	if fc.Runtime != "" {
		cfg.Runtime = fc.Runtime
	}
	if fc.CatalogURL != "" {
		cfg.CatalogURL = fc.CatalogURL
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"timeouts.query", fc.Timeouts.Query, &cfg.Timeouts.Query},
		{"timeouts.change", fc.Timeouts.Change, &cfg.Timeouts.Change},
		{"timeouts.install", fc.Timeouts.Install, &cfg.Timeouts.Install},
		{"timeouts.fetch", fc.Timeouts.Fetch, &cfg.Timeouts.Fetch},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}
