package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/kanjilens-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports the version shown by /health, startup logs and
// `kanjilens --version`. Commit falls back to the VCS stamp embedded by the
// Go toolchain when it was not injected.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, readBuildSetting)
}

func formatVersion(version, commit, built string, setting func(string) string) string {
	if commit == "" {
		commit = setting("vcs.revision")
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if commit != "" && setting("vcs.modified") == "true" {
			commit += "-dirty"
		}
	}
	if built == "" {
		built = setting("vcs.time")
	}

	switch {
	case commit == "":
		return version
	case built == "":
		return fmt.Sprintf("%s (%s)", version, commit)
	default:
		return fmt.Sprintf("%s (%s, %s)", version, commit, built)
	}
}

func readBuildSetting(key string) string {
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
