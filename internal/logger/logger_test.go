package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_WithoutSentry(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true, Service: "sorel-test"}))
	assert.NotNil(t, Default())
	assert.Nil(t, sentryClient)
	Flush(0)
}

func TestInitialize_InvalidSentryDSN(t *testing.T) {
	err := Initialize(Config{SentryDSN: "not-a-dsn"})
	assert.Error(t, err)
}

func TestLogHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	original := log
	log = zap.New(core)
	t.Cleanup(func() { log = original })

	ctx := context.Background()
	Info("info", zap.String("k", "v"))
	InfoCtx(ctx, "info ctx")
	Warn("warn")
	WarnCtx(ctx, "warn ctx")
	Debug("debug")
	DebugCtx(ctx, "debug ctx")
	Error(errors.New("boom"))
	ErrorCtx(ctx, nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 8)
	assert.Equal(t, "boom", entries[6].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[6].Level)
	assert.Equal(t, "error occurred", entries[7].Message)
}
