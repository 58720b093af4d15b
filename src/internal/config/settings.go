package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Backend settings keys in nvm's settings.txt.
const (
	SettingRoot       = "root"
	SettingPath       = "path"
	SettingProxy      = "proxy"
	SettingNodeMirror = "node_mirror"
	SettingNPMMirror  = "npm_mirror"
)

// ReadBackendSettings reads "key: value" lines from nvm's settings.txt
// under home. Unknown lines are ignored.
func ReadBackendSettings(home string) (map[string]string, error) {
	path := SettingsPath(home)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ParseBackendSettings(f)
}

// ParseBackendSettings parses settings.txt content.
func ParseBackendSettings(r io.Reader) (map[string]string, error) {
	settings := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		settings[key] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return settings, nil
}
