package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/krishnavamsip/pdf-assistant/config"
	"github.com/krishnavamsip/pdf-assistant/types"
)

var headingLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^chapter\s+\d+`),
	regexp.MustCompile(`^\d+\.\s+[A-Z]`),
}

// SummaryService turns document text into a structured summary. Oversized
// documents are chunked, summarized chunk by chunk and recombined with one
// final remote request. Every remote failure degrades to a locally
// synthesized summary so the caller always gets an artifact back.
type SummaryService struct {
	ai        AIService
	splitter  *ChunkSplitter
	maxChars  int
	maxChunks int
	keywords  []string
}

func NewSummaryService(ai AIService, cfg *config.Config) *SummaryService {
	return &SummaryService{
		ai:        ai,
		splitter:  NewChunkSplitter(),
		maxChars:  cfg.MaxSummaryChars,
		maxChunks: cfg.MaxChunks,
		keywords:  cfg.FallbackKeywords,
	}
}

func (s *SummaryService) Summarize(ctx context.Context, text string, progress types.ProgressFunc) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("nothing to summarize")
	}
	if progress == nil {
		progress = func(float64, string) {}
	}

	if len(text) <= s.maxChars {
		progress(0.5, "Processing text...")
		summary, err := s.ai.Complete(ctx, chunkSummaryPrompt(text, 1, 1))
		if err != nil {
			log.Printf("summary request failed, using fallback: %v", err)
			summary = s.fallbackSummary(text, 1)
		}
		progress(1.0, "Summary complete")
		return summary, nil
	}

	chunks := s.splitter.Limit(s.splitter.Split(text, s.maxChars), s.maxChunks)

	summaries := make([]string, 0, len(chunks))
	failures := 0
	for i, chunk := range chunks {
		progress(float64(i+1)/float64(len(chunks))*0.8,
			fmt.Sprintf("Processing chunk %d/%d...", i+1, len(chunks)))

		summary, err := s.ai.Complete(ctx, chunkSummaryPrompt(chunk, i+1, len(chunks)))
		if err != nil {
			log.Printf("chunk %d/%d failed, using fallback: %v", i+1, len(chunks), err)
			failures++
			summary = s.fallbackSummary(chunk, i+1)
		}
		summaries = append(summaries, summary)
	}

	// Past half failures the partial results are not worth combining;
	// summarize the whole document offline instead.
	if failures*2 > len(chunks) {
		progress(0.9, "Using fallback summary generation...")
		summary := s.fallbackSummary(text, 1)
		progress(1.0, "Summary complete")
		return summary, nil
	}

	progress(0.9, "Combining summaries...")
	combined, err := s.ai.Complete(ctx, combineSummariesPrompt(summaries))
	if err != nil {
		log.Printf("combine request failed, concatenating chunk summaries: %v", err)
		combined = "## Combined Summary\n\n" + strings.Join(summaries, "\n\n")
	}

	progress(1.0, "Summary complete")
	return combined, nil
}

// fallbackSummary builds a summary without any remote call: a title from
// the first heading-like line, up to five keyword-hit sentences as key
// points, and a word-count overview.
func (s *SummaryService) fallbackSummary(text string, section int) string {
	var headings []string
	var keyPoints []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, pattern := range headingLinePatterns {
			if pattern.MatchString(line) {
				headings = append(headings, line)
				break
			}
		}

		if len(line) > 20 && len(keyPoints) < 5 && s.hasKeyword(line) {
			keyPoints = append(keyPoints, line)
		}
	}

	var parts []string
	if len(headings) > 0 {
		parts = append(parts, fmt.Sprintf("## Chapter %d: %s", section, headings[0]))
	} else {
		parts = append(parts, fmt.Sprintf("## Section %d: Content Overview", section))
	}

	if len(keyPoints) > 0 {
		points := make([]string, 0, len(keyPoints)+1)
		points = append(points, "### Key Points:")
		for i, sentence := range keyPoints {
			points = append(points, fmt.Sprintf("%d. %s", i+1, sentence))
		}
		parts = append(parts, strings.Join(points, "\n"))
	}

	if words := len(strings.Fields(text)); words > 100 {
		parts = append(parts, fmt.Sprintf(
			"### Content Overview:\nThis section contains approximately %d words of source material, including definitions, key criteria and practical guidance.",
			words))
	}

	return strings.Join(parts, "\n\n")
}

func (s *SummaryService) hasKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range s.keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func chunkSummaryPrompt(text string, chunkNum, totalChunks int) string {
	return fmt.Sprintf(`This is chunk %d of %d from a larger document.
Please provide a comprehensive summary of this section.

IMPORTANT: Skip author information, preface, acknowledgments, and focus ONLY on the actual content.

Structure your summary like this:

## Section %d: [Section Title or Chapter Title]
- **Main Topics**: [List the main topics covered in this section]
- **Key Concepts**: [Important concepts, definitions, or theories introduced]
- **Key Points**: [3-5 most important points from this section]

If you can identify chapter titles or section headers, use them. Otherwise, describe the content clearly.

Text to summarize:
%s

Focus on the actual educational content, not metadata about the book or author.`,
		chunkNum, totalChunks, chunkNum, text)
}

func combineSummariesPrompt(summaries []string) string {
	return fmt.Sprintf(`Please combine and organize the following summaries into a comprehensive, well-structured summary.

IMPORTANT:
1. Remove any duplicate information
2. Organize by chapters or major sections
3. Create a coherent flow
4. Add an overall summary at the end

Structure the final summary like this:

## Chapter 1: [Chapter Title]
- **Main Topics**: [List the main topics covered in this chapter]
- **Key Concepts**: [Important concepts, definitions, or theories introduced]
- **Key Points**: [3-5 most important points from this chapter]

[Continue for all chapters...]

## Overall Summary
- **Total Chapters**: [Number of chapters covered]
- **Main Themes**: [Recurring themes across chapters]
- **Key Takeaways**: [Most important learnings from the entire document]

Summaries to combine:
%s`, strings.Join(summaries, "\n\n"))
}
