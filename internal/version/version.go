package version

import (
	"fmt"
	"regexp"
)

// Set at build time via -ldflags "-X github.com/frostyard/archey-install/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "local"
)

var semverRe = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)$`)

// Release returns the clean "vX.Y.Z" form of Version, or "" for development
// and pre-release builds.
func Release() string {
	m := semverRe.FindStringSubmatch(Version)
	if m == nil {
		return ""
	}
	return "v" + m[1]
}

// String returns the version line shown by --version.
func String() string {
	v := Version
	if r := Release(); r != "" {
		v = r
	}
	return fmt.Sprintf("%s (Commit: %s) (Date: %s) (Built by: %s)", v, Commit, Date, BuiltBy)
}
