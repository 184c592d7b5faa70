package textedit

import (
	"errors"
	"io/fs"
)

// Result is one pull from a Source: either a line (without its terminator) or
// a failure to produce one.
type Result struct {
	Line string
	Err  error
}

// SourceError records a failure to open or read a named source.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	cause := e.Err
	// os.Open & friends already embed the path, don't repeat it
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return e.Name + ": " + cause.Error()
}

func (e *SourceError) Unwrap() error { return e.Err }

// FormatError renders a recoverable failure as a diagnostic output line.
func FormatError(prog string, err error) string {
	return prog + ": " + err.Error()
}
