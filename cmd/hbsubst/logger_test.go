package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		debug int
		want  zapcore.Level
	}{
		{name: "default warn", level: "warn", want: zapcore.WarnLevel},
		{name: "one debug step", level: "warn", debug: 1, want: zapcore.InfoLevel},
		{name: "two debug steps", level: "warn", debug: 2, want: zapcore.DebugLevel},
		{name: "floor at debug", level: "error", debug: 10, want: zapcore.DebugLevel},
		{name: "configured debug", level: "debug", want: zapcore.DebugLevel},
		{name: "unknown falls back to warn", level: "loud", want: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := initLogger(tt.level, "console", tt.debug, &bytes.Buffer{})
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestInitLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := initLogger("info", "json", 0, &buf)
	logger.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
