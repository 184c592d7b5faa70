package internal

import "sync/atomic"

var started atomic.Bool

// LockCustomizations marks the command as running. Settings such as the app
// name are frozen from then on.
func LockCustomizations() {
	started.Store(true)
}

// Locked reports whether LockCustomizations has been called.
func Locked() bool {
	return started.Load()
}
