package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Greater(t, cfg.Timeout.Seconds(), 0.0)
}

func TestWithModel(t *testing.T) {
	base := DefaultConfig()

	custom := base.WithModel("gemini-2.5-pro")
	assert.Equal(t, "gemini-2.5-pro", custom.Model)
	assert.Equal(t, DefaultModel, base.Model, "original config should be unchanged")

	same := base.WithModel("")
	assert.Equal(t, DefaultModel, same.Model)
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), nil, "")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestResponseText_Empty(t *testing.T) {
	_, err := responseText(nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
