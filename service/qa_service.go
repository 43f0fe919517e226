package service

import (
	"context"
	"fmt"

	"github.com/krishnavamsip/pdf-assistant/config"
)

// QAService answers a question from a provided context window. The context
// is truncated to the configured ceiling; a failed remote call degrades to
// an inline error message rather than surfacing to the caller.
type QAService struct {
	ai       AIService
	maxChars int
}

func NewQAService(ai AIService, cfg *config.Config) *QAService {
	return &QAService{
		ai:       ai,
		maxChars: cfg.MaxQAChars,
	}
}

// Answer returns the model's answer and the (possibly truncated) context
// that was actually sent.
func (s *QAService) Answer(ctx context.Context, contextText, question string) (string, string) {
	if len(contextText) > s.maxChars {
		contextText = contextText[:runeBoundary(contextText, s.maxChars)] + "..."
	}

	prompt := fmt.Sprintf(`Based on the following context, please answer the question accurately and concisely.
If the answer cannot be found in the context, say "The answer cannot be found in the provided context."

Context:
%s

Question: %s

Please provide a clear, direct answer based only on the information in the context.`,
		contextText, question)

	answer, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		answer = fmt.Sprintf("Error generating answer: %v", err)
	}
	return answer, contextText
}
