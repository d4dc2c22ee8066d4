package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Run("adjusts the running level", func(t *testing.T) {
		require.NoError(t, SetLevel("warn"))
		assert.False(t, level.Enabled(zapcore.InfoLevel))
		assert.True(t, level.Enabled(zapcore.ErrorLevel))

		require.NoError(t, SetLevel("debug"))
		assert.True(t, level.Enabled(zapcore.DebugLevel))
	})

	t.Run("empty string means info", func(t *testing.T) {
		require.NoError(t, SetLevel(""))
		assert.True(t, level.Enabled(zapcore.InfoLevel))
		assert.False(t, level.Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		assert.Error(t, SetLevel("loud"))
	})
}

func TestInit(t *testing.T) {
	require.NoError(t, Init("dev", "debug"))
	assert.True(t, level.Enabled(zapcore.DebugLevel))
}
