package logger_test

import (
	"bytes"
	"testing"

	"github.com/on-the-ground/memoize_ive_go/shared/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewConsole(&buf, zap.InfoLevel)

	l.Debug("hidden")
	l.Info("shown", zap.String("memo_id", "abc"))
	assert.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "abc")
}

func TestNewObserved(t *testing.T) {
	l, logs := logger.NewObserved(zap.DebugLevel)

	l.Debug("one")
	l.Debug("two")
	l.Debug("one")

	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, 2, logs.FilterMessage("one").Len())
}
