//go:build !windows

package proxy

// DefaultStore returns the store for this platform. Outside Windows nvm
// has no settings file to read the proxy from.
func DefaultStore(_ HomeFunc) Store {
	return NoopStore{}
}
