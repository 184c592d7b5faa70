package internal

import (
	"errors"
	"strings"
	"sync/atomic"
	"unicode"
)

var (
	appName = "catr"
	// flag help and the env prefix read the name while the command is still
	// being built, before the run lockdown, so reads freeze it too
	appNameRead atomic.Bool
)

var (
	ErrAppNameLocked  = errors.New("app name is locked")
	ErrAppNameInvalid = errors.New("app name must be a single non-empty word")
)

// AppName is the program identifier used in diagnostics and as the
// environment variable prefix. Once read it can no longer be changed.
func AppName() string {
	appNameRead.Store(true)
	return appName
}

// SetAppName renames the program. It fails once the name has been read or
// the command has started.
func SetAppName(name string) error {
	if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
		return ErrAppNameInvalid
	}
	if appNameRead.Load() || Locked() {
		return ErrAppNameLocked
	}
	appName = name
	return nil
}
