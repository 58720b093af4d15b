// Package version validates and orders Node.js version strings before they
// are handed to the nvm backend.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalid is returned for anything that is not a plain major.minor.patch
// version.
var ErrInvalid = errors.New("invalid version")

// plainPattern rejects prerelease/build suffixes and anything that is not a
// digit or dot before the string can reach a process argument.
var plainPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// dirPattern matches the directory names nvm creates for installed versions.
var dirPattern = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// Normalize trims whitespace and a single leading "v" and checks that the
// rest is a strict major.minor.patch version. The returned string is safe
// to pass as a process argument.
func Normalize(raw string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if !plainPattern.MatchString(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	if _, err := semver.StrictNewVersion(v); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalid, raw, err)
	}
	return v, nil
}

// IsInstallDir reports whether name looks like a version directory under
// the nvm home (e.g. "v20.11.1").
func IsInstallDir(name string) bool {
	return dirPattern.MatchString(name)
}

// FromInstallDir converts an install directory name to a bare version.
func FromInstallDir(name string) string {
	return strings.TrimPrefix(name, "v")
}

// Equal compares two versions ignoring a leading "v".
func Equal(a, b string) bool {
	return strings.TrimPrefix(a, "v") == strings.TrimPrefix(b, "v")
}

// SortDescending orders versions newest first. Strings that do not parse
// are kept after the valid ones in their original relative order.
func SortDescending(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, errI := semver.NewVersion(versions[i])
		vj, errJ := semver.NewVersion(versions[j])
		switch {
		case errI != nil && errJ != nil:
			return false
		case errI != nil:
			return false
		case errJ != nil:
			return true
		}
		return vi.GreaterThan(vj)
	})
}
