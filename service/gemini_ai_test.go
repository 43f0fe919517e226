package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGemini(t *testing.T) *GeminiService {
	cfg := testConfig()
	cfg.Model = "gemini-1.5-flash"
	cfg.GeminiAPIKeys = []string{"first-key", "second-key"}
	cfg.RateLimitPerMinute = 6000

	svc, err := NewGeminiService(context.Background(), cfg)
	require.NoError(t, err)
	return svc
}

func TestRotateAPIKeyCyclesKeys(t *testing.T) {
	svc := newTestGemini(t)
	require.Equal(t, 0, svc.currentKey)

	require.NoError(t, svc.rotateAPIKey(context.Background()))
	assert.Equal(t, 1, svc.currentKey)

	require.NoError(t, svc.rotateAPIKey(context.Background()))
	assert.Equal(t, 0, svc.currentKey)
}

func TestRotateAPIKeySwapsClientBeforeClosing(t *testing.T) {
	svc := newTestGemini(t)

	before := svc.client
	require.NoError(t, svc.rotateAPIKey(context.Background()))

	// The published client is always a fresh one; a caller holding the old
	// pointer is never handed a client mid-replacement.
	assert.NotSame(t, before, svc.client)
}

func TestGeminiUsageStatsTracksBothKeys(t *testing.T) {
	svc := newTestGemini(t)

	stats := svc.UsageStats()
	require.Len(t, stats, 2)
	assert.Equal(t, "key_1", stats[0].Credential)
	assert.Equal(t, "key_2", stats[1].Credential)
}
