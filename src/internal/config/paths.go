// Package config manages nvmw configuration: application paths, the nvm
// backend home directory, and the optional config.toml.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/nvmw/nvmw/src/internal/constants"
)

// Paths holds the nvmw directory paths
type Paths struct {
	Root       string // Root nvmw directory (~/.nvmw)
	ConfigFile string // Optional config file (~/.nvmw/config.toml)
}

// ConfigFileName is the name of the optional configuration file
const ConfigFileName = "config.toml"

var (
	defaultPaths *Paths
	pathsOnce    sync.Once
)

// DefaultPaths returns the default nvmw paths.
// This function is thread-safe and guarantees single initialization.
func DefaultPaths() *Paths {
	pathsOnce.Do(func() {
		defaultPaths = initPaths()
	})
	return defaultPaths
}

func initPaths() *Paths {
	root := getRootDir()
	configFile := filepath.Join(root, ConfigFileName)
	if override := os.Getenv(constants.EnvConfig); override != "" {
		configFile = override
	}
	return &Paths{
		Root:       root,
		ConfigFile: configFile,
	}
}

// getRootDir returns the root nvmw directory
func getRootDir() string {
	if root := os.Getenv(constants.EnvRoot); root != "" {
		return root
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".nvmw"
	}

	return filepath.Join(home, ".nvmw")
}

// ResetPathsCache resets the cached paths, forcing reinitialization on next access.
// This is primarily useful for testing.
func ResetPathsCache() {
	pathsOnce = sync.Once{}
	defaultPaths = nil
}
