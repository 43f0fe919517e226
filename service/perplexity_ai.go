package service

import (
	"context"
	"log"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/krishnavamsip/pdf-assistant/config"
	"github.com/krishnavamsip/pdf-assistant/types"
)

// chatClient is the slice of the OpenAI client the executor needs; tests
// substitute a scripted implementation.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// PerplexityService executes completions against the Perplexity chat API
// (OpenAI-compatible wire format). Each call picks the best credential,
// walks the model fallback list, and retries with a fresh credential pick
// after a short backoff. The first successful model wins.
type PerplexityService struct {
	pool    *CredentialPool
	gate    *RateGate
	clients map[string]chatClient

	models      []string
	maxTokens   int
	temperature float32
	maxRetries  int
	timeout     time.Duration
	backoff     time.Duration
}

func NewPerplexityService(cfg *config.Config) *PerplexityService {
	pool := NewCredentialPool(cfg.APIKeys)
	clients := make(map[string]chatClient, len(cfg.APIKeys))
	for _, cred := range pool.Credentials() {
		clientConfig := openai.DefaultConfig(cred.Key)
		clientConfig.BaseURL = cfg.AIEndpoint
		clients[cred.ID] = openai.NewClientWithConfig(clientConfig)
	}

	models := cfg.FallbackModels
	if len(models) == 0 {
		models = []string{cfg.Model}
	}

	return &PerplexityService{
		pool:        pool,
		gate:        NewRateGate(cfg.RateLimitPerMinute),
		clients:     clients,
		models:      models,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		maxRetries:  cfg.MaxRetries,
		timeout:     cfg.RequestTimeout(),
		backoff:     time.Second,
	}
}

func (s *PerplexityService) Complete(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, prompt, s.models)
}

func (s *PerplexityService) CompleteWithModel(ctx context.Context, prompt, model string) (string, error) {
	return s.complete(ctx, prompt, []string{model})
}

func (s *PerplexityService) complete(ctx context.Context, prompt string, models []string) (string, error) {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		cred, err := s.pool.Select()
		if err != nil {
			return "", err
		}

		for _, model := range models {
			s.gate.Acquire()

			reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
			resp, err := s.clients[cred.ID].CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
				Model: model,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleUser, Content: prompt},
				},
				MaxTokens:   s.maxTokens,
				Temperature: s.temperature,
			})
			cancel()

			if err != nil || len(resp.Choices) == 0 {
				log.Printf("model %s failed with %s: %v", model, cred.ID, err)
				s.pool.RecordOutcome(cred.ID, false)
				continue
			}

			s.pool.RecordOutcome(cred.ID, true)
			return resp.Choices[0].Message.Content, nil
		}

		// Every model failed for this credential. The pool may now score
		// another credential better, so back off briefly and reselect.
		if attempt < s.maxRetries-1 {
			time.Sleep(s.backoff)
		}
	}

	return "", types.ErrAllAttemptsExhausted
}

func (s *PerplexityService) UsageStats() []types.UsageStats {
	return s.pool.Stats()
}
