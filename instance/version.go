package instance

import (
	"runtime/debug"
	"strings"
	"sync"
)

const develVersion = "0.0.0-development+unknown"

var version = sync.OnceValue(func() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return develVersion
	}
	return buildVersion(bi)
})

// Version reports the module version of the running binary, with the short
// VCS revision appended when the build recorded one.
func Version() string {
	return version()
}

func buildVersion(bi *debug.BuildInfo) string {
	v := bi.Main.Version
	if v == "" {
		v = develVersion
	}
	var rev string
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			rev = s.Value
		}
	}
	if rev == "" {
		return v
	}
	rev = rev[:min(len(rev), 8)]
	// pseudo-versions already carry the hash
	if strings.Contains(v, rev) {
		return v
	}
	return v + "+" + rev
}
