package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisupply/fieldkit/pkg/i18n"
)

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("labels.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/labels.YML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("labels.json"))
	assert.Nil(t, i18n.NewParserForFile("labels.toml"))
	assert.Nil(t, i18n.NewParserForFile("labels"))
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewYAMLParser()

	t.Run("nested labels", func(t *testing.T) {
		got, err := p.Parse(context.Background(), "es:\n  visit_status:\n    in-progress: En progreso\n")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"in-progress": "En progreso"}, got["es"]["visit_status"])
	})

	t.Run("language must hold a mapping", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "es: hola\n")
		assert.ErrorIs(t, err, i18n.ErrInvalidYAMLStructure)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "")
		assert.ErrorIs(t, err, i18n.ErrInvalidYAMLStructure)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "es: [")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, "es: {}")
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	assert.True(t, p.SupportsFileExtension(".yaml"))
	assert.True(t, p.SupportsFileExtension("YML"))
	assert.False(t, p.SupportsFileExtension("json"))
}

func TestJSONParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewJSONParser()

	got, err := p.Parse(context.Background(), `{"en": {"priority": {"urgent": "Urgent"}}, "version": 2}`)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, map[string]any{"urgent": "Urgent"}, got["en"]["priority"])

	_, err = p.Parse(context.Background(), `{`)
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	assert.True(t, p.SupportsFileExtension(".JSON"))
	assert.False(t, p.SupportsFileExtension("yaml"))
}
