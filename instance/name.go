package instance

import "fastcat.org/go/catr/internal"

// AppName is what the program calls itself in diagnostics and environment
// variable names.
func AppName() string {
	return internal.AppName()
}

// SetAppName renames the program. Call it before [fastcat.org/go/catr/cmd.Main]
// when embedding catr under another name; it fails once the name is in use.
func SetAppName(name string) error {
	return internal.SetAppName(name)
}
