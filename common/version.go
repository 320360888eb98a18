package common

import "runtime/debug"

// Version is overridden at build time with -ldflags "-X github.com/starshine-sys/warden/common.Version=..."
var Version = ""

// BuildVersion returns the version set at build time, or the VCS revision the binary was built from.
func BuildVersion() string {
	if Version != "" {
		return Version
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "UNKNOWN"
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				s.Value = s.Value[:12]
			}
			return s.Value
		}
	}

	if bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "UNKNOWN"
}
