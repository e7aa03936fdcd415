package version

import (
	"fmt"
	"runtime/debug"
)

// Set via ldflags.
var (
	Version  = "0.1.0"
	Revision = "unknown"
)

func init() {
	if Revision != "unknown" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}
