// Package misc keeps program identity details used by logging and the command line.
package misc

import (
	"runtime/debug"
)

const appName = "stylegen"

// Overwritten by the linker on release builds.
var (
	version = "dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns the vcs revision, falling back to build info when the
// binary was built without linker flags.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
