package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEmptyText(t *testing.T) {
	splitter := NewChunkSplitter()

	assert.Nil(t, splitter.Split("", 100))
	assert.Nil(t, splitter.Split("   \n  \n", 100))
}

func TestSplitRespectsLineBoundaries(t *testing.T) {
	splitter := NewChunkSplitter()

	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, strings.Repeat("word ", 10))
	}
	text := strings.Join(lines, "\n")

	chunks := splitter.Split(text, 200)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 200)
	}

	// No content is lost, only whitespace is reshaped.
	want := strings.Join(strings.Fields(text), " ")
	got := strings.Join(strings.Fields(strings.Join(chunks, " ")), " ")
	assert.Equal(t, want, got)
}

func TestSplitSingleLineUsesChapterBoundaries(t *testing.T) {
	splitter := NewChunkSplitter()

	text := strings.Repeat("x", 150) + " Chapter 2: Beta " + strings.Repeat("y", 150)
	chunks := splitter.Split(text, 250)

	require.Len(t, chunks, 2)
	assert.True(t, strings.HasPrefix(chunks[1], "Chapter 2: Beta"))
}

func TestSplitSingleLineWithoutMarkersSlicesFixed(t *testing.T) {
	splitter := NewChunkSplitter()

	text := strings.Repeat("z", 1000)
	chunks := splitter.Split(text, 300)

	require.Len(t, chunks, 4)
	assert.Len(t, chunks[0], 300)
	assert.Len(t, chunks[3], 100)
}

func TestSplitNeverBreaksMultiByteRunes(t *testing.T) {
	splitter := NewChunkSplitter()

	// 600 bytes of two-byte runes with no line or chapter structure forces
	// fixed-size slicing; an odd byte limit would land mid-rune.
	text := strings.Repeat("é", 300)
	chunks := splitter.Split(text, 251)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk))
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestLimitMergesIntoGroups(t *testing.T) {
	splitter := NewChunkSplitter()

	chunks := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	combined := splitter.Limit(chunks, 3)

	require.Len(t, combined, 3)
	assert.Equal(t, "a\n\nb\n\nc\n\nd", combined[0])
	assert.Equal(t, "i\n\nj", combined[2])
}

func TestLimitKeepsBoundedList(t *testing.T) {
	splitter := NewChunkSplitter()

	chunks := []string{"a", "b"}
	assert.Equal(t, chunks, splitter.Limit(chunks, 5))
	assert.Equal(t, chunks, splitter.Limit(chunks, 0))
}

func TestSplitThenLimitBoundsChunkCount(t *testing.T) {
	splitter := NewChunkSplitter()

	var b strings.Builder
	for i := 0; b.Len() < 120000; i++ {
		b.WriteString(strings.Repeat("content ", 20))
		b.WriteString("\n")
	}

	chunks := splitter.Limit(splitter.Split(b.String(), 5000), 10)
	assert.GreaterOrEqual(t, len(chunks), 1)
	assert.LessOrEqual(t, len(chunks), 10)
}
