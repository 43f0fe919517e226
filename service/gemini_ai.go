package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/krishnavamsip/pdf-assistant/config"
	"github.com/krishnavamsip/pdf-assistant/types"
)

// GeminiService is the alternate AIService provider. Gemini has no model
// fallback list worth walking, so resilience comes from rotating to the
// next API key after a failed call and retrying once.
type GeminiService struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	client     *genai.Client
	modelName  string

	pool        *CredentialPool
	gate        *RateGate
	maxTokens   int32
	temperature float32
}

func NewGeminiService(ctx context.Context, cfg *config.Config) (*GeminiService, error) {
	if len(cfg.GeminiAPIKeys) == 0 {
		return nil, types.ErrNoCredentials
	}

	service := &GeminiService{
		apiKeys:     cfg.GeminiAPIKeys,
		modelName:   cfg.Model,
		pool:        NewCredentialPool(cfg.GeminiAPIKeys),
		gate:        NewRateGate(cfg.RateLimitPerMinute),
		maxTokens:   int32(cfg.MaxTokens),
		temperature: cfg.Temperature,
	}
	if err := service.initClient(ctx); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

// rotateAPIKey swaps in a client for the next key before closing the old
// one, so a concurrent call never captures a client that is about to close.
func (s *GeminiService) rotateAPIKey(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	old := s.client
	s.client = client
	if old != nil {
		old.Close()
	}
	return nil
}

func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	return s.CompleteWithModel(ctx, prompt, s.modelName)
}

func (s *GeminiService) CompleteWithModel(ctx context.Context, prompt, model string) (string, error) {
	credID := s.credID()
	content, err := s.generate(ctx, prompt, model)
	if err == nil {
		s.pool.RecordOutcome(credID, true)
		return content, nil
	}

	log.Printf("gemini call failed with %s, rotating key: %v", credID, err)
	s.pool.RecordOutcome(credID, false)
	if err := s.rotateAPIKey(ctx); err != nil {
		return "", err
	}

	credID = s.credID()
	content, err = s.generate(ctx, prompt, model)
	if err != nil {
		s.pool.RecordOutcome(credID, false)
		return "", types.ErrAllAttemptsExhausted
	}
	s.pool.RecordOutcome(credID, true)
	return content, nil
}

func (s *GeminiService) generate(ctx context.Context, prompt, modelName string) (string, error) {
	s.gate.Acquire()

	s.mu.Lock()
	model := s.client.GenerativeModel(modelName)
	s.mu.Unlock()
	model.SetMaxOutputTokens(s.maxTokens)
	model.SetTemperature(s.temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func (s *GeminiService) credID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Credentials()[s.currentKey].ID
}

func (s *GeminiService) UsageStats() []types.UsageStats {
	return s.pool.Stats()
}
