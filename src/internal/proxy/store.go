package proxy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nvmw/nvmw/src/internal/config"
	"github.com/nvmw/nvmw/src/internal/ui"
)

// Store loads the proxy the backend is configured with.
type Store interface {
	Load(ctx context.Context) (Config, error)
}

// HomeFunc resolves the nvm home directory.
type HomeFunc func() (string, error)

// SettingsFileStore reads the proxy from nvm's settings.txt.
type SettingsFileStore struct {
	home HomeFunc
}

// NewSettingsFileStore returns a store reading settings.txt under the
// directory returned by home. home is resolved on every Load.
func NewSettingsFileStore(home HomeFunc) *SettingsFileStore {
	return &SettingsFileStore{home: home}
}

// Load returns the configured proxy. A missing settings file is reported
// as an empty Config.
func (s *SettingsFileStore) Load(_ context.Context) (Config, error) {
	home, err := s.home()
	if err != nil {
		return Config{}, err
	}

	path := config.SettingsPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ui.Debug("%s not found, no proxy configured", path)
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(string(data)), nil
}

// NoopStore is used where nvm keeps no parseable proxy setting.
type NoopStore struct{}

// Load always returns an empty Config.
func (NoopStore) Load(_ context.Context) (Config, error) {
	return Config{}, nil
}
