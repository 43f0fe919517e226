package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/krishnavamsip/pdf-assistant/types"
)

var (
	reChapterHeading = regexp.MustCompile(`^(?i:chapter)\s+(\d+)[:\s]+(.+)$`)
	reNumberedTitle  = regexp.MustCompile(`^(\d+)[.\s]+([A-Z][^.]*)$`)
	reSectionHeading = regexp.MustCompile(`^(?i:section)\s+(\d+)[:\s]+(.+)$`)
	reAnyHeading     = regexp.MustCompile(`^(?i:chapter|section)\s+\d+`)
)

// ChapterService finds chapter markers in extracted text. The markers feed
// display and chapter-scoped operations only, so the page estimates can be
// rough.
type ChapterService struct{}

func NewChapterService() *ChapterService {
	return &ChapterService{}
}

// DetectChapters scans every line for one of three heading shapes
// ("Chapter 1: Title", "1. Title", "Section 1: Title") and returns the
// matches sorted by chapter number, with page ranges estimated from line
// position.
func (s *ChapterService) DetectChapters(text string) []types.Chapter {
	lines := strings.Split(text, "\n")

	var chapters []types.Chapter
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var match []string
		for _, pattern := range []*regexp.Regexp{reChapterHeading, reNumberedTitle, reSectionHeading} {
			if match = pattern.FindStringSubmatch(line); match != nil {
				break
			}
		}
		if match == nil {
			continue
		}

		number, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		chapters = append(chapters, types.Chapter{
			Number:     number,
			Title:      strings.TrimSpace(match[2]),
			LineNumber: i,
		})
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Number < chapters[j].Number
	})

	totalLines := len(lines)
	for i := range chapters {
		if i == 0 {
			chapters[i].StartPage = 1
		} else {
			chapters[i].StartPage = estimatePage(chapters[i].LineNumber, totalLines)
		}
		if i < len(chapters)-1 {
			chapters[i].EndPage = estimatePage(chapters[i+1].LineNumber, totalLines)
		}
	}

	return chapters
}

// estimatePage maps a line position onto a nominal 100-page book.
func estimatePage(lineNumber, totalLines int) int {
	if totalLines == 0 {
		return 1
	}
	page := lineNumber * 100 / totalLines
	if page < 1 {
		return 1
	}
	return page
}

// ExtractChapterText slices the lines from a chapter's heading up to the
// next chapter-like heading, or the end of the document.
func (s *ChapterService) ExtractChapterText(text string, chapter types.Chapter) string {
	lines := strings.Split(text, "\n")
	if chapter.LineNumber >= len(lines) {
		return ""
	}

	end := len(lines)
	for i := chapter.LineNumber + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if reAnyHeading.MatchString(line) || reNumberedTitle.MatchString(line) {
			end = i
			break
		}
	}

	return strings.Join(lines[chapter.LineNumber:end], "\n")
}
