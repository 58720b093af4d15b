//go:build !windows

package config

// registryHome has no equivalent outside Windows.
func registryHome() string {
	return ""
}
