package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisupply/fieldkit/pkg/config"
	"github.com/medisupply/fieldkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("default level drops debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("text format and level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
			logger.WithLevel(slog.LevelDebug),
		)
		log.Debug("visible")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("app", "fieldkit")))
		log.Info("msg")
		assert.Equal(t, "fieldkit", decode(t, buf)["app"])
	})

	t.Run("context value", func(t *testing.T) {
		type ctxKey struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("rep_id", ctxKey{}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "rep-7")
		log.InfoContext(ctx, "visit saved")
		assert.Equal(t, "rep-7", decode(t, buf)["rep_id"])

		buf.Reset()
		log.InfoContext(context.Background(), "no rep")
		assert.NotContains(t, decode(t, buf), "rep_id")
	})

	t.Run("extractors survive With", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return slog.String("trace", "t1"), true
			}),
		)
		log.With("k", "v").InfoContext(context.Background(), "grouped")
		entry := decode(t, buf)
		assert.Equal(t, "t1", entry["trace"])
		assert.Equal(t, "v", entry["k"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(config.Development, "svc"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "DEBUG")
		assert.Contains(t, out, "service=svc")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(config.Production, "svc"), logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "svc", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})
}

func TestFromConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.App{Env: "prod", ServiceName: "fieldkit", LogLevel: "warn", LogFormat: "text"}
	log := logger.New(append(logger.FromConfig(cfg), logger.WithOutput(buf))...)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "service=fieldkit")
	assert.Contains(t, out, "env=production")
}

func TestNewContextHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := logger.NewContextHandler(
		slog.NewJSONHandler(buf, nil),
		nil,
		func(ctx context.Context) (slog.Attr, bool) { return slog.String("rep_id", "rep-7"), true },
		nil,
	)

	require.NotPanics(t, func() {
		slog.New(handler).InfoContext(context.Background(), "visit saved")
	})
	assert.Equal(t, "rep-7", decode(t, buf)["rep_id"])
}

func TestSetAsDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("through default")
	assert.Equal(t, "through default", decode(t, buf)["msg"])
}

func TestAttrs(t *testing.T) {
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	err := errors.New("boom")
	assert.Equal(t, err, logger.Error(err).Value.Any())

	assert.Equal(t, "orders", logger.Component("orders").Value.String())
	assert.Equal(t, "es", logger.Lang("es").Value.String())
	assert.True(t, logger.Fields(nil).Equal(slog.Attr{}))
	assert.Equal(t, "fields", logger.Fields([]string{"nit"}).Key)

	assert.NotNil(t, logger.Discard())
}
