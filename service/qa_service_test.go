package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestAnswerPassesContextAndQuestion(t *testing.T) {
	var seen string
	ai := &stubAI{completeFn: func(prompt string) (string, error) {
		seen = prompt
		return "42", nil
	}}
	svc := NewQAService(ai, testConfig())

	answer, used := svc.Answer(context.Background(), "The meaning of life is 42.", "What is the meaning of life?")
	assert.Equal(t, "42", answer)
	assert.Equal(t, "The meaning of life is 42.", used)
	assert.Contains(t, seen, "The meaning of life is 42.")
	assert.Contains(t, seen, "What is the meaning of life?")
}

func TestAnswerTruncatesLongContext(t *testing.T) {
	cfg := testConfig()
	cfg.MaxQAChars = 100

	ai := &stubAI{completeFn: func(string) (string, error) {
		return "ok", nil
	}}
	svc := NewQAService(ai, cfg)

	_, used := svc.Answer(context.Background(), strings.Repeat("x", 500), "question?")
	assert.Len(t, used, 103)
	assert.True(t, strings.HasSuffix(used, "..."))
}

func TestAnswerTruncationKeepsValidText(t *testing.T) {
	cfg := testConfig()
	cfg.MaxQAChars = 101

	ai := &stubAI{completeFn: func(string) (string, error) {
		return "ok", nil
	}}
	svc := NewQAService(ai, cfg)

	_, used := svc.Answer(context.Background(), strings.Repeat("ü", 200), "question?")
	assert.True(t, strings.HasSuffix(used, "..."))
	assert.True(t, utf8.ValidString(used))
}

func TestAnswerReportsRemoteFailureInline(t *testing.T) {
	ai := &stubAI{completeFn: func(string) (string, error) {
		return "", errors.New("unavailable")
	}}
	svc := NewQAService(ai, testConfig())

	answer, _ := svc.Answer(context.Background(), "some context", "question?")
	assert.True(t, strings.HasPrefix(answer, "Error generating answer:"))
}
