package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statecast/core/logger"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("hello")
	log.Debug("invisible at default level")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "invisible")
}

func TestNewJSONFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
	)

	log.Info("test message", logger.Component("test"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"test message"`)
	assert.Contains(t, out, `"component":"test"`)
}

func TestNewDevelopmentPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithDevelopment("tapedeck"),
		logger.WithOutput(&buf),
	)

	log.Debug("debug enabled in development")

	out := buf.String()
	assert.Contains(t, out, "debug enabled in development")
	assert.Contains(t, out, "app=tapedeck")
}

func TestNewProductionPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithProduction("tapedeck"),
		logger.WithOutput(&buf),
	)

	log.Debug("suppressed")
	log.Info("visible")

	out := buf.String()
	require.NotContains(t, out, "suppressed")
	assert.Contains(t, out, `"app":"tapedeck"`)
	assert.Contains(t, out, `"msg":"visible"`)
}

func TestWithLevelOverride(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelError),
	)

	log.Warn("below threshold")
	log.Error("at threshold")

	out := buf.String()
	assert.NotContains(t, out, "below threshold")
	assert.Contains(t, out, "at threshold")
}

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}

func TestErrorsAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

	attr := logger.Errors(errors.New("one"), nil, errors.New("two"))
	assert.Equal(t, "errors", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
}

func TestClientAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Client(""))
	assert.Equal(t, slog.String("client", "tapedeck-1"), logger.Client("tapedeck-1"))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Int("sample_rate", 48000), logger.SampleRate(48000))
	assert.Equal(t, slog.Int("frames", 256), logger.Frames(256))
	assert.Equal(t, slog.String("component", "audio"), logger.Component("audio"))
	assert.Equal(t, slog.String("event", "startup"), logger.Event("startup"))
	assert.Equal(t, slog.Int("ports", 2), logger.Count("ports", 2))
	assert.Equal(t, slog.Attr{}, logger.Key("k", nil))
}

func TestElapsedAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Elapsed(time.Now().Add(-time.Second))
	assert.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), time.Second)
}
