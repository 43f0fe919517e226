package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnavamsip/pdf-assistant/config"
	"github.com/krishnavamsip/pdf-assistant/types"
)

// stubAI scripts the completion backend for pipeline tests.
type stubAI struct {
	completeFn func(prompt string) (string, error)
}

func (s *stubAI) Complete(ctx context.Context, prompt string) (string, error) {
	return s.completeFn(prompt)
}

func (s *stubAI) CompleteWithModel(ctx context.Context, prompt, model string) (string, error) {
	return s.completeFn(prompt)
}

func (s *stubAI) UsageStats() []types.UsageStats { return nil }

func testConfig() *config.Config {
	return &config.Config{
		MaxSummaryChars:  100000,
		MaxQuizChars:     50000,
		MaxQAChars:       30000,
		MaxChunks:        10,
		FallbackKeywords: []string{"diagnosis", "treatment", "symptoms"},
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	svc := NewSummaryService(&stubAI{}, testConfig())

	_, err := svc.Summarize(context.Background(), "   ", nil)
	assert.Error(t, err)
}

func TestSummarizeShortDocumentSingleRequest(t *testing.T) {
	calls := 0
	ai := &stubAI{completeFn: func(prompt string) (string, error) {
		calls++
		return "## Section 1: Overview", nil
	}}
	svc := NewSummaryService(ai, testConfig())

	var last float64
	summary, err := svc.Summarize(context.Background(), "A short clinical note.", func(fraction float64, status string) {
		last = fraction
	})
	require.NoError(t, err)
	assert.Equal(t, "## Section 1: Overview", summary)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1.0, last)
}

func TestSummarizeShortDocumentFallsBackLocally(t *testing.T) {
	ai := &stubAI{completeFn: func(string) (string, error) {
		return "", errors.New("unavailable")
	}}
	svc := NewSummaryService(ai, testConfig())

	text := "Chapter 1 Fundamentals\nThe diagnosis of the condition requires several criteria to be met.\nFiller line."
	summary, err := svc.Summarize(context.Background(), text, nil)
	require.NoError(t, err)

	assert.Equal(t, svc.fallbackSummary(text, 1), summary)
	assert.Contains(t, summary, "## Chapter 1:")
	assert.Contains(t, summary, "diagnosis")
}

func chunkedDocument() string {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "The treatment plan depends on severity and patient history details.")
	}
	return strings.Join(lines, "\n")
}

func TestSummarizeChunksAndCombines(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSummaryChars = 200

	var prompts []string
	ai := &stubAI{completeFn: func(prompt string) (string, error) {
		prompts = append(prompts, prompt)
		if strings.Contains(prompt, "combine and organize") {
			return "FINAL SUMMARY", nil
		}
		return "CHUNK SUMMARY", nil
	}}
	svc := NewSummaryService(ai, cfg)

	summary, err := svc.Summarize(context.Background(), chunkedDocument(), nil)
	require.NoError(t, err)
	assert.Equal(t, "FINAL SUMMARY", summary)
	assert.Greater(t, len(prompts), 2)
}

func TestSummarizeCombineFailureConcatenates(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSummaryChars = 200

	ai := &stubAI{completeFn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "combine and organize") {
			return "", errors.New("unavailable")
		}
		return "CHUNK SUMMARY", nil
	}}
	svc := NewSummaryService(ai, cfg)

	summary, err := svc.Summarize(context.Background(), chunkedDocument(), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(summary, "## Combined Summary\n\n"))
	assert.Contains(t, summary, "CHUNK SUMMARY")
}

func TestSummarizeMajorityFailureUsesFullTextFallback(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSummaryChars = 200

	ai := &stubAI{completeFn: func(string) (string, error) {
		return "", errors.New("unavailable")
	}}
	svc := NewSummaryService(ai, cfg)

	text := chunkedDocument()
	summary, err := svc.Summarize(context.Background(), text, nil)
	require.NoError(t, err)
	assert.Equal(t, svc.fallbackSummary(text, 1), summary)
}

func TestFallbackSummaryWithoutHeadings(t *testing.T) {
	svc := NewSummaryService(&stubAI{}, testConfig())

	summary := svc.fallbackSummary("plain text without any structure", 3)
	assert.Contains(t, summary, "## Section 3: Content Overview")
}

func TestFallbackSummaryCapsKeyPoints(t *testing.T) {
	svc := NewSummaryService(&stubAI{}, testConfig())

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "The symptoms of this condition include a number of indicators.")
	}
	summary := svc.fallbackSummary(strings.Join(lines, "\n"), 1)

	assert.Contains(t, summary, "### Key Points:")
	assert.Contains(t, summary, "5. The symptoms")
	assert.NotContains(t, summary, "6. The symptoms")
}
