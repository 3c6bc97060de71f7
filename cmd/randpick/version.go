package main

import "runtime/debug"

// version may be set at link time with -ldflags "-X main.version=...".
var version = ""

func init() {
	if version == "" {
		version = buildVersion()
	}
}

// buildVersion reports the module version for `go install` builds, falling
// back to the short VCS revision for local builds.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	return revision
}
