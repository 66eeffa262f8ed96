package compression

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	// opencensus, pulled in by the Gemini SDK, starts its view worker from init.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type fakeClient struct {
	response string
	err      error
	block    bool
	calls    atomic.Int32
	prompts  []string
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

func (f *fakeClient) Model() string { return "fake-model" }
func (f *fakeClient) Close() error  { return nil }

func newCompressor(t *testing.T, client *fakeClient, opts Options) *LLMCompressor {
	t.Helper()
	c, err := New(client, opts)
	require.NoError(t, err)
	return c
}

func TestNew_RequiresClient(t *testing.T) {
	_, err := New(nil, DefaultOptions())
	assert.Error(t, err)
}

func TestCompress_Success(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"bullets\": [\"Built API\", \"  \", \"Cut latency 40%\"]}\n```"}
	c := newCompressor(t, client, DefaultOptions())

	out, err := c.Compress(context.Background(), []string{"Built a large API for things", "Reduced latency by 40 percent"}, 100)

	require.NoError(t, err)
	assert.Equal(t, []string{"Built API", "Cut latency 40%"}, out)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "at most 100 characters")
	assert.Contains(t, client.prompts[0], "1. Built a large API for things\n2. Reduced latency by 40 percent")
}

func TestCompress_EmptyInputSkipsModel(t *testing.T) {
	client := &fakeClient{}
	c := newCompressor(t, client, DefaultOptions())

	out, err := c.Compress(context.Background(), nil, 100)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, int32(0), client.calls.Load())
}

func TestCompress_Failures(t *testing.T) {
	tests := []struct {
		name     string
		client   *fakeClient
		maxChars int
		wantErr  error
	}{
		{"model error", &fakeClient{err: errors.New("quota exceeded")}, 100, nil},
		{"invalid json", &fakeClient{response: "not json"}, 100, nil},
		{"empty list", &fakeClient{response: `{"bullets": []}`}, 100, ErrEmptyResult},
		{"blank items", &fakeClient{response: `{"bullets": ["", " "]}`}, 100, ErrEmptyResult},
		{"over budget", &fakeClient{response: `{"bullets": ["` + strings.Repeat("x", 20) + `"]}`}, 10, ErrOverBudget},
		{"invalid budget", &fakeClient{response: `{"bullets": ["a"]}`}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCompressor(t, tt.client, DefaultOptions())

			out, err := c.Compress(context.Background(), []string{"original"}, tt.maxChars)

			require.Error(t, err)
			assert.Nil(t, out)
			var compErr *Error
			assert.True(t, errors.As(err, &compErr))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCompress_Timeout(t *testing.T) {
	client := &fakeClient{block: true}
	c := newCompressor(t, client, Options{Timeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := c.Compress(context.Background(), []string{"original"}, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCompress_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	client := &fakeClient{err: errors.New("unavailable")}
	c := newCompressor(t, client, Options{MaxFailures: 2, CoolDown: time.Minute})

	for i := 0; i < 5; i++ {
		_, err := c.Compress(context.Background(), []string{"original"}, 100)
		require.Error(t, err)
	}

	assert.Equal(t, int32(2), client.calls.Load())
}

func TestCompressOrKeep(t *testing.T) {
	original := []string{"first", "second"}

	t.Run("nil compressor", func(t *testing.T) {
		assert.Equal(t, original, CompressOrKeep(context.Background(), nil, original, 100, nil))
	})

	t.Run("failure keeps original and warns", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		c := newCompressor(t, &fakeClient{err: errors.New("boom")}, DefaultOptions())

		out := CompressOrKeep(context.Background(), c, original, 100, zap.New(core))

		assert.Equal(t, original, out)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "compression failed, keeping original text", logs.All()[0].Message)
	})

	t.Run("success", func(t *testing.T) {
		c := newCompressor(t, &fakeClient{response: `{"bullets": ["merged"]}`}, DefaultOptions())
		assert.Equal(t, []string{"merged"}, CompressOrKeep(context.Background(), c, original, 100, zap.NewNop()))
	})
}
