package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fastcat.org/go/catr/instance"
)

// Flag names, also the viper keys they are bound under.
const (
	KeyNumber         = "number"
	KeyNumberNonBlank = "number-nonblank"
	KeyShowEnds       = "show-ends"
	KeyShowTabs       = "show-tabs"
	KeySqueezeBlank   = "squeeze-blank"
	KeyLogLevel       = "log-level"
)

const DefaultLogLevel = "warn"

// New makes a viper instance that reads APPNAME_* environment variables,
// e.g. CATR_NUMBER_NONBLANK for --number-nonblank.
func New() *viper.Viper {
	vi := viper.New()
	vi.SetEnvPrefix(instance.AppName())
	vi.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vi.AutomaticEnv()
	return vi
}

// Bind makes every flag in fs resolvable through vi. A flag set on the
// command line wins over the environment, which wins over the flag default.
func Bind(vi *viper.Viper, fs *pflag.FlagSet) error {
	if err := vi.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}
