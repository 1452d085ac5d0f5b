// Package version exposes the build stamp of the lvtopo binary.
//
// Release builds set the variables with
//
//	-ldflags "-X github.com/katalvlaran/lvtopo/internal/version.version=1.2.0 \
//	          -X github.com/katalvlaran/lvtopo/internal/version.commitHash=$(git rev-parse --short HEAD) \
//	          -X github.com/katalvlaran/lvtopo/internal/version.buildTime=$(date -u +%FT%TZ)"
//
// Unstamped builds fall back to the VCS settings recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

var (
	version    = "0.1.0"
	commitHash = ""
	buildTime  = ""
)

// Version returns the semantic version of the binary.
func Version() string {
	return version
}

// Commit returns the short VCS revision the binary was built from, or
// "unknown" when neither a stamp nor build info is available.
func Commit() string {
	if commitHash != "" {
		return commitHash
	}
	if rev := buildSetting("vcs.revision"); rev != "" {
		return rev[:min(len(rev), 12)]
	}

	return unknown
}

// BuildTime returns the build (or last commit) time, or "unknown".
func BuildTime() string {
	if buildTime != "" {
		return buildTime
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}

	return unknown
}

// FullVersion joins Version and Commit as "<version>-<commit>".
func FullVersion() string {
	return fmt.Sprintf("%s-%s", Version(), Commit())
}

func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}

	return ""
}
