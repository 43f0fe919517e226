package service

import (
	"context"

	"github.com/krishnavamsip/pdf-assistant/types"
)

// AIService is the boundary to the remote language model. Implementations
// own credential selection, rate limiting and retries; callers just get a
// completion or an error after every avenue is exhausted.
type AIService interface {
	// Complete sends the prompt using the configured model fallback list.
	Complete(ctx context.Context, prompt string) (string, error)

	// CompleteWithModel pins the request to a single model, skipping the
	// fallback list.
	CompleteWithModel(ctx context.Context, prompt, model string) (string, error)

	// UsageStats reports per-credential request/error counters.
	UsageStats() []types.UsageStats
}
