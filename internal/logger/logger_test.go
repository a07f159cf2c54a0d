package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrapperFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapAdapter(zap.New(core)).With(map[string]interface{}{"component": "advisor"})

	log.Debug("hidden", nil)
	log.Info("generated", map[string]interface{}{"count": 3})
	log.WithError(errors.New("boom")).Error("failed", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "generated", entries[0].Message)
	assert.Equal(t, "advisor", entries[0].ContextMap()["component"])
	assert.EqualValues(t, 3, entries[0].ContextMap()["count"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestNewStructured(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := NewStructured("debug", format)
		require.NoError(t, err)
		log.Info("ok", nil)
	}

	log := NewNoOpLogger()
	log.Error("dropped", map[string]interface{}{"k": "v"})
	assert.NoError(t, log.Sync())
}
