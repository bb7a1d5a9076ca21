package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warning "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func TestInitializeReplacesDefault(t *testing.T) {
	Initialize("debug", true)
	defer Initialize("info", false)

	assert.NotNil(t, Log)
	assert.Same(t, Log, slog.Default())
}

func TestFromContext(t *testing.T) {
	assert.Same(t, Log, FromContext(context.Background()))

	ctx := WithRequestId(context.Background(), "req-1")
	assert.NotSame(t, Log, FromContext(ctx))
}
