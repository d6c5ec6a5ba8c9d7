package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		interactive bool
		level       zapcore.Level
		encoding    string
	}{
		{"production pipe", false, false, zapcore.InfoLevel, "json"},
		{"production terminal", false, true, zapcore.InfoLevel, "console"},
		{"debug pipe", true, false, zapcore.DebugLevel, "console"},
		{"debug terminal", true, true, zapcore.DebugLevel, "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.debug, tt.interactive)
			assert.Equal(t, tt.level, cfg.Level.Level())
			assert.Equal(t, tt.encoding, cfg.Encoding)
			if !tt.debug {
				assert.Nil(t, cfg.Sampling, "per-file progress lines must not be sampled away")
			}
		})
	}
}

func TestSetupReplacesGlobalLogger(t *testing.T) {
	previous := Logger
	t.Cleanup(func() {
		Logger = previous
		zap.ReplaceGlobals(zap.NewNop())
	})

	require.NoError(t, Setup(true, "srcbundle", "test"))
	assert.NotSame(t, previous, Logger)
	assert.Same(t, Logger, zap.L())
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
