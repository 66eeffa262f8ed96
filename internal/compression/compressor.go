package compression

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-curator/internal/llm"
	"github.com/jonathan/resume-curator/internal/prompts"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Compressor rewrites texts so each is at most maxChars characters long.
type Compressor interface {
	Compress(ctx context.Context, texts []string, maxChars int) ([]string, error)
}

// Options tunes an LLMCompressor.
type Options struct {
	// Timeout bounds each model call. Zero disables the limit.
	Timeout time.Duration
	// MaxFailures is the number of consecutive failures that opens the breaker.
	MaxFailures uint32
	// CoolDown is how long the breaker stays open before letting a probe through.
	CoolDown time.Duration
	Logger   *zap.Logger
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{
		Timeout:     15 * time.Second,
		MaxFailures: 3,
		CoolDown:    30 * time.Second,
	}
}

// LLMCompressor asks a language model to shorten text. Calls go through a
// circuit breaker so a failing model is skipped quickly instead of being
// retried for every entry.
type LLMCompressor struct {
	client  llm.Client
	breaker *gobreaker.CircuitBreaker[string]
	timeout time.Duration
	prompt  string
	logger  *zap.Logger
}

// New creates an LLMCompressor backed by client.
func New(client llm.Client, opts Options) (*LLMCompressor, error) {
	if client == nil {
		return nil, fmt.Errorf("compression requires an LLM client")
	}
	prompt, err := prompts.Get("compression.json", "compress-bullets")
	if err != nil {
		return nil, &Error{Message: "failed to load prompt", Cause: err}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxFailures := opts.MaxFailures
	if maxFailures == 0 {
		maxFailures = DefaultOptions().MaxFailures
	}

	settings := gobreaker.Settings{
		Name:        "llm-compression",
		MaxRequests: 1,
		Timeout:     opts.CoolDown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &LLMCompressor{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
		timeout: opts.Timeout,
		prompt:  prompt,
		logger:  logger,
	}, nil
}

type compressResponse struct {
	Bullets []string `json:"bullets"`
}

// Compress returns the rewritten texts, or an error when the model fails or
// its answer is unusable. The input slice is never modified.
func (c *LLMCompressor) Compress(ctx context.Context, texts []string, maxChars int) ([]string, error) {
	if len(texts) == 0 {
		return texts, nil
	}
	if maxChars <= 0 {
		return nil, &Error{Message: fmt.Sprintf("invalid character budget %d", maxChars)}
	}

	prompt := prompts.Format(c.prompt, map[string]string{
		"MaxChars": strconv.Itoa(maxChars),
		"Items":    numbered(texts),
	})

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := c.breaker.Execute(func() (string, error) {
		return c.client.GenerateJSON(ctx, prompt)
	})
	if err != nil {
		return nil, &Error{Message: "model request failed", Cause: err}
	}
	c.logger.Debug("compression response received",
		zap.String("model", c.client.Model()),
		zap.Int("items", len(texts)),
		zap.Duration("elapsed", time.Since(start)))

	var resp compressResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, &Error{Message: "failed to parse model response", Cause: err}
	}

	out := make([]string, 0, len(resp.Bullets))
	for _, b := range resp.Bullets {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if utf8.RuneCountInString(b) > maxChars {
			return nil, &Error{Message: fmt.Sprintf("item of %d characters", utf8.RuneCountInString(b)), Cause: ErrOverBudget}
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		return nil, &Error{Message: "model returned no items", Cause: ErrEmptyResult}
	}
	return out, nil
}

func numbered(texts []string) string {
	var sb strings.Builder
	for i, t := range texts {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, t)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// CompressOrKeep runs c and returns its result, or the original texts when c
// is nil or fails. Failures are logged as warnings.
func CompressOrKeep(ctx context.Context, c Compressor, texts []string, maxChars int, logger *zap.Logger) []string {
	if c == nil || len(texts) == 0 {
		return texts
	}
	out, err := c.Compress(ctx, texts, maxChars)
	if err != nil {
		if logger != nil {
			logger.Warn("compression failed, keeping original text",
				zap.Int("items", len(texts)),
				zap.Int("max_chars", maxChars),
				zap.Error(err))
		}
		return texts
	}
	return out
}
