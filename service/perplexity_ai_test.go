package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnavamsip/pdf-assistant/types"
)

// scriptedChat counts calls and delegates to a per-call script.
type scriptedChat struct {
	calls  int
	models []string
	fn     func(call int) (openai.ChatCompletionResponse, error)
}

func (c *scriptedChat) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.calls++
	c.models = append(c.models, req.Model)
	return c.fn(c.calls)
}

func newTestPerplexity(client chatClient, models []string, maxRetries int) *PerplexityService {
	return &PerplexityService{
		pool:       NewCredentialPool([]string{"secret"}),
		gate:       NewRateGate(600000),
		clients:    map[string]chatClient{"key_1": client},
		models:     models,
		maxRetries: maxRetries,
		timeout:    time.Second,
	}
}

func chatReply(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestCompleteFirstModelWins(t *testing.T) {
	client := &scriptedChat{fn: func(int) (openai.ChatCompletionResponse, error) {
		return chatReply("the answer"), nil
	}}
	svc := newTestPerplexity(client, []string{"sonar", "sonar-reasoning"}, 2)

	result, err := svc.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "the answer", result)
	assert.Equal(t, 1, client.calls)
}

func TestCompleteFallsBackToNextModel(t *testing.T) {
	client := &scriptedChat{fn: func(call int) (openai.ChatCompletionResponse, error) {
		if call == 1 {
			return openai.ChatCompletionResponse{}, errors.New("overloaded")
		}
		return chatReply("from fallback"), nil
	}}
	svc := newTestPerplexity(client, []string{"sonar", "sonar-reasoning"}, 2)

	result, err := svc.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "from fallback", result)
	assert.Equal(t, []string{"sonar", "sonar-reasoning"}, client.models)
}

func TestCompleteTreatsEmptyChoicesAsFailure(t *testing.T) {
	client := &scriptedChat{fn: func(call int) (openai.ChatCompletionResponse, error) {
		if call == 1 {
			return openai.ChatCompletionResponse{}, nil
		}
		return chatReply("ok"), nil
	}}
	svc := newTestPerplexity(client, []string{"sonar", "sonar-reasoning"}, 2)

	result, err := svc.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ok", result)

	stats := svc.UsageStats()
	require.Len(t, stats, 1)
	assert.Equal(t, int64(2), stats[0].Requests)
	assert.Equal(t, int64(1), stats[0].Errors)
}

func TestCompleteExhaustsRetriesAcrossModels(t *testing.T) {
	client := &scriptedChat{fn: func(int) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, errors.New("boom")
	}}
	svc := newTestPerplexity(client, []string{"sonar", "sonar-reasoning"}, 2)

	_, err := svc.Complete(context.Background(), "prompt")
	require.ErrorIs(t, err, types.ErrAllAttemptsExhausted)

	// Two outer attempts, two models each.
	assert.Equal(t, 4, client.calls)

	stats := svc.UsageStats()
	require.Len(t, stats, 1)
	assert.Equal(t, int64(4), stats[0].Requests)
	assert.Equal(t, int64(4), stats[0].Errors)
}

func TestCompleteWithModelUsesSingleModel(t *testing.T) {
	client := &scriptedChat{fn: func(int) (openai.ChatCompletionResponse, error) {
		return chatReply("pinned"), nil
	}}
	svc := newTestPerplexity(client, []string{"sonar", "sonar-reasoning"}, 2)

	result, err := svc.CompleteWithModel(context.Background(), "prompt", "sonar-deep-research")
	require.NoError(t, err)
	assert.Equal(t, "pinned", result)
	assert.Equal(t, []string{"sonar-deep-research"}, client.models)
}

func TestCompleteNoCredentials(t *testing.T) {
	svc := &PerplexityService{
		pool:       NewCredentialPool(nil),
		gate:       NewRateGate(600000),
		clients:    map[string]chatClient{},
		models:     []string{"sonar"},
		maxRetries: 2,
		timeout:    time.Second,
	}

	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, types.ErrNoCredentials)
}
