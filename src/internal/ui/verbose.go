package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/nvmw/nvmw/src/internal/constants"
)

var (
	verboseMode bool

	debugColor  = color.New(color.FgHiBlack)
	debugSymbol = "·"
)

// SetVerbose enables or disables debug output
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// IsVerbose reports whether debug output is enabled
func IsVerbose() bool {
	return verboseMode
}

// CheckVerboseEnv enables verbose mode when NVMW_VERBOSE is "1" or "true"
func CheckVerboseEnv() {
	switch strings.ToLower(os.Getenv(constants.EnvVerbose)) {
	case "1", "true":
		verboseMode = true
	}
}

// Debug prints a diagnostic message to stderr when verbose mode is on.
// Debug output is never suppressed by quiet mode.
func Debug(format string, args ...interface{}) {
	if !verboseMode {
		return
	}
	_, _ = debugColor.Fprintf(os.Stderr, "%s [debug] %s\n", debugSymbol, fmt.Sprintf(format, args...))
}
