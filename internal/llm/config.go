// Package llm wraps the generative model used to rewrite resume text.
package llm

import "time"

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the model settings for a client.
type Config struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration // per request; zero means no client-side limit
}

// DefaultConfig returns settings tuned for short, deterministic rewrites.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		Temperature:     0.1,
		MaxOutputTokens: 1024,
		Timeout:         20 * time.Second,
	}
}

// WithModel returns a copy of the config using model. An empty model keeps the current one.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}
