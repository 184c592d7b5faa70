package instance

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_buildVersion(t *testing.T) {
	t.Parallel()
	rev := func(r string) []debug.BuildSetting {
		return []debug.BuildSetting{{Key: "vcs.revision", Value: r}}
	}
	tests := []struct {
		name     string
		version  string
		settings []debug.BuildSetting
		want     string
	}{
		{"tagged", "v1.2.3", nil, "v1.2.3"},
		{"empty", "", nil, develVersion},
		{"devel with rev", "(devel)", rev("0123456789abcdef"), "(devel)+01234567"},
		{"pseudo version", "v0.0.0-20250101000000-0123456789ab", rev("0123456789abcdef"), "v0.0.0-20250101000000-0123456789ab"},
		{"short rev", "v1.0.0", rev("abc"), "v1.0.0+abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bi := &debug.BuildInfo{Main: debug.Module{Version: tt.version}, Settings: tt.settings}
			assert.Equal(t, tt.want, buildVersion(bi))
		})
	}
}
