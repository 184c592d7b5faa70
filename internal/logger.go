package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger makes the diagnostic logger. Records go to w in console form
// without color, tagged with the app name. The level applies to this logger
// only, the zerolog global level is left alone.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(cw).
		Level(lvl).
		With().
		Timestamp().
		Str("app", AppName()).
		Logger(), nil
}
