// ============================================================================
// lined - Zeilenorientierter Texteditor
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Lined is the release version
const Lined = "1.0.0"

// Build metadata, set via -ldflags "-X github.com/msto63/lined/pkg/core/version.GitCommit=..."
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Lined,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("lined %s (commit %s, built %s, %s, %s)",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
