//go:build windows

package config

import (
	"errors"

	"golang.org/x/sys/windows/registry"

	"github.com/nvmw/nvmw/src/internal/constants"
	"github.com/nvmw/nvmw/src/internal/ui"
)

// registryHome reads NVM_HOME from the user environment, then the machine
// environment. It returns "" when neither has it.
func registryHome() string {
	locations := []struct {
		root registry.Key
		path string
	}{
		{registry.CURRENT_USER, `Environment`},
		{registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`},
	}

	for _, loc := range locations {
		key, err := registry.OpenKey(loc.root, loc.path, registry.QUERY_VALUE)
		if err != nil {
			ui.Debug("open registry key %s: %v", loc.path, err)
			continue
		}
		value, _, err := key.GetStringValue(constants.EnvNVMHome)
		_ = key.Close()
		if err != nil {
			if !errors.Is(err, registry.ErrNotExist) {
				ui.Debug("read %s from %s: %v", constants.EnvNVMHome, loc.path, err)
			}
			continue
		}
		if value != "" {
			expanded, err := registry.ExpandString(value)
			if err == nil {
				return expanded
			}
			return value
		}
	}
	return ""
}
