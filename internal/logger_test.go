package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level      string
		wantDebug  bool
		wantWarn   bool
		wantErrMsg string
	}{
		{level: "debug", wantDebug: true, wantWarn: true},
		{level: "DEBUG", wantDebug: true, wantWarn: true},
		{level: "warn", wantWarn: true},
		{level: "disabled"},
		{level: "loud", wantErrMsg: `invalid log level "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log, err := NewLogger(&buf, tt.level)
			if tt.wantErrMsg != "" {
				assert.ErrorContains(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			log.Debug().Msg("quiet")
			log.Warn().Msg("loud")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("quiet")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("loud")))
			if tt.wantWarn {
				assert.Contains(t, buf.String(), "WRN")
				assert.Contains(t, buf.String(), "app=catr")
			}
		})
	}
}

