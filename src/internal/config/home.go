package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvmw/nvmw/src/internal/constants"
	"github.com/nvmw/nvmw/src/internal/ui"
)

// ErrHomeNotSet is returned when the nvm home directory cannot be found.
var ErrHomeNotSet = errors.New(constants.EnvNVMHome + " is not set")

// NVMHome resolves the nvm backend home directory. The process environment
// wins; on Windows the user and system environment stored in the registry
// are consulted next, since processes started before nvm was installed do
// not see the variable.
func NVMHome() (string, error) {
	home := os.Getenv(constants.EnvNVMHome)
	if home == "" {
		home = registryHome()
		if home != "" {
			ui.Debug("%s resolved from registry: %s", constants.EnvNVMHome, home)
		}
	}
	if home == "" {
		return "", ErrHomeNotSet
	}

	home = os.ExpandEnv(home)
	info, err := os.Stat(home)
	if err != nil {
		return "", fmt.Errorf("%s %q is not readable: %w", constants.EnvNVMHome, home, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s %q is not a directory", constants.EnvNVMHome, home)
	}
	return home, nil
}

// SettingsPath returns the path of nvm's settings.txt under home.
func SettingsPath(home string) string {
	return filepath.Join(home, constants.SettingsFileName)
}
