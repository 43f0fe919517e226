package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chapteredText = `Some introductory material before any chapter begins.

Chapter 1: Basics
The study of fundamentals starts here with core ideas.

2. Advanced Topics
Deeper material builds on the fundamentals from before.

Section 3: Appendix
Supplementary tables and reference material.`

func TestDetectChaptersFindsAllHeadingShapes(t *testing.T) {
	svc := NewChapterService()

	chapters := svc.DetectChapters(chapteredText)
	require.Len(t, chapters, 3)

	assert.Equal(t, 1, chapters[0].Number)
	assert.Equal(t, "Basics", chapters[0].Title)
	assert.Equal(t, 2, chapters[1].Number)
	assert.Equal(t, "Advanced Topics", chapters[1].Title)
	assert.Equal(t, 3, chapters[2].Number)
	assert.Equal(t, "Appendix", chapters[2].Title)
}

func TestDetectChaptersPageEstimates(t *testing.T) {
	svc := NewChapterService()

	chapters := svc.DetectChapters(chapteredText)
	require.Len(t, chapters, 3)

	assert.Equal(t, 1, chapters[0].StartPage)
	assert.GreaterOrEqual(t, chapters[1].StartPage, chapters[0].StartPage)
	// The last chapter runs to the end of the document.
	assert.Equal(t, 0, chapters[2].EndPage)
}

func TestDetectChaptersSortsByNumber(t *testing.T) {
	svc := NewChapterService()

	text := "Chapter 2: Second\nbody\nChapter 1: First\nbody"
	chapters := svc.DetectChapters(text)
	require.Len(t, chapters, 2)
	assert.Equal(t, "First", chapters[0].Title)
	assert.Equal(t, "Second", chapters[1].Title)
}

func TestDetectChaptersNoHeadings(t *testing.T) {
	svc := NewChapterService()

	assert.Empty(t, svc.DetectChapters("plain prose with no structure at all"))
}

func TestExtractChapterTextStopsAtNextHeading(t *testing.T) {
	svc := NewChapterService()

	chapters := svc.DetectChapters(chapteredText)
	require.Len(t, chapters, 3)

	body := svc.ExtractChapterText(chapteredText, chapters[0])
	assert.True(t, strings.HasPrefix(body, "Chapter 1: Basics"))
	assert.Contains(t, body, "core ideas")
	assert.NotContains(t, body, "Advanced Topics")
}

func TestExtractChapterTextLastChapterRunsToEnd(t *testing.T) {
	svc := NewChapterService()

	chapters := svc.DetectChapters(chapteredText)
	require.Len(t, chapters, 3)

	body := svc.ExtractChapterText(chapteredText, chapters[2])
	assert.Contains(t, body, "reference material.")
}
