// Package constants defines common constants used across nvmw
package constants

// Backend executables
const (
	ToolNVM     = "nvm"
	RuntimeNode = "node"
)

// Environment variables
const (
	EnvNVMHome    = "NVM_HOME"
	EnvRoot       = "NVMW_ROOT"
	EnvConfig     = "NVMW_CONFIG"
	EnvCatalogURL = "NVMW_CATALOG_URL"
	EnvVerbose    = "NVMW_VERBOSE"
)

// Files owned by the nvm backend
const (
	SettingsFileName = "settings.txt"
)
