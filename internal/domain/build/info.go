// Package build describes the running binary.
package build

import (
	"fmt"
	"runtime"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// New returns the build info of the running binary.
func New(version, commit, buildDate string) Info {
	return Info{Version: version, Commit: commit, BuildDate: buildDate, GoVersion: runtime.Version()}
}

// String formats the info for --version.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}
