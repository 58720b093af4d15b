//go:build windows

package proxy

// DefaultStore returns the store for this platform: nvm-windows keeps the
// proxy in settings.txt.
func DefaultStore(home HomeFunc) Store {
	return NewSettingsFileStore(home)
}
