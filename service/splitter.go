package service

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Heading patterns that mark chapter or section boundaries in extracted
// book text: "Chapter 1:", "3. Title", "Section 2:".
var boundaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)chapter\s+\d+[:\s]`),
	regexp.MustCompile(`\d+\.\s+[A-Z]`),
	regexp.MustCompile(`(?i)section\s+\d+[:\s]`),
}

// ChunkSplitter breaks document text into bounded-size chunks, preferring
// line and chapter boundaries over hard cuts.
type ChunkSplitter struct{}

func NewChunkSplitter() *ChunkSplitter {
	return &ChunkSplitter{}
}

// Split walks the text line by line, flushing the running buffer whenever
// the next line would push it over maxChars. If that still yields a single
// oversized chunk (one giant paragraph, say), it retries on chapter
// boundaries and finally falls back to fixed-size slicing.
func (s *ChunkSplitter) Split(text string, maxChars int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if current.Len()+len(line) > maxChars && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if tail := strings.TrimSpace(current.String()); tail != "" {
		chunks = append(chunks, tail)
	}

	if len(chunks) == 1 && len(text) > maxChars {
		if boundary := s.splitAtBoundaries(text, maxChars); len(boundary) > 1 {
			return boundary
		}
	}

	return chunks
}

// splitAtBoundaries cuts the text at every chapter/section marker offset,
// then force-splits any segment that is still oversized.
func (s *ChunkSplitter) splitAtBoundaries(text string, maxChars int) []string {
	var offsets []int
	for _, pattern := range boundaryPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			offsets = append(offsets, loc[0])
		}
	}

	if len(offsets) == 0 {
		return sliceFixed(text, maxChars)
	}

	sort.Ints(offsets)

	var segments []string
	start := 0
	for _, pos := range offsets {
		if pos <= start {
			continue
		}
		segments = append(segments, text[start:pos])
		start = pos
	}
	if start < len(text) {
		segments = append(segments, text[start:])
	}

	var chunks []string
	for _, segment := range segments {
		if len(segment) > maxChars {
			chunks = append(chunks, sliceFixed(segment, maxChars)...)
			continue
		}
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
	}
	return chunks
}

func sliceFixed(text string, maxChars int) []string {
	var chunks []string
	for start := 0; start < len(text); {
		end := runeBoundary(text, start+maxChars)
		if end <= start {
			end = start + maxChars
			if end > len(text) {
				end = len(text)
			}
		}
		if trimmed := strings.TrimSpace(text[start:end]); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
		start = end
	}
	return chunks
}

// runeBoundary backs a byte index up to the start of the rune it falls
// inside, so a cut never leaves half a multi-byte character behind.
func runeBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// Limit merges adjacent chunks in groups so that at most maxChunks remote
// calls are issued per document. An already-bounded list is returned as is.
func (s *ChunkSplitter) Limit(chunks []string, maxChunks int) []string {
	if maxChunks <= 0 || len(chunks) <= maxChunks {
		return chunks
	}

	group := (len(chunks) + maxChunks - 1) / maxChunks
	combined := make([]string, 0, maxChunks)
	for i := 0; i < len(chunks); i += group {
		end := i + group
		if end > len(chunks) {
			end = len(chunks)
		}
		combined = append(combined, strings.Join(chunks[i:end], "\n\n"))
	}
	return combined
}
