package misc

import (
	"runtime/debug"
	"sync"
)

// Set at build time with -ldflags "-X cssprop/misc.version=... -X cssprop/misc.gitHash=...".
var (
	appName = "cssprop"
	version = "dev"
	gitHash = ""
)

var readBuildInfo = sync.OnceValue(func() (info struct{ version, revision string }) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	info.version = bi.Main.Version
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.revision = s.Value
		}
	}
	return
})

// GetAppName returns program name used in logs, temporary files and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if v := readBuildInfo().version; v != "" && v != "(devel)" {
		return v
	}
	return version
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if r := readBuildInfo().revision; r != "" {
		return r
	}
	return "unknown"
}
