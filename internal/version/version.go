// Package version reports build information for the evn binary.
//
// Commit and BuildTime are injected with -ldflags "-X". Binaries built
// without them fall back to the VCS stamp recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info is the resolved build information.
type Info struct {
	Commit    string
	BuildTime string
	Dirty     bool
}

// Get resolves build information, preferring ldflags values.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(Commit, BuildTime, bi)
}

func resolve(commit, built string, bi *debug.BuildInfo) Info {
	info := Info{Commit: commit, BuildTime: built}
	if bi == nil {
		return info
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String formats the info for `evn --version`.
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("evn dev (commit: %s, built: %s)", commit, i.BuildTime)
}

// String returns the version string (commit-hash based, no semver)
func String() string {
	return Get().String()
}
