package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"

	"github.com/krishnavamsip/pdf-assistant/config"
	"github.com/krishnavamsip/pdf-assistant/types"
)

const (
	minSampleParagraph = 80
	quizSections       = 4
)

var frontMatterKeywords = []string{
	"preface", "acknowledgment", "acknowledgement", "copyright",
	"foreword", "dedication", "about the author", "publisher", "isbn",
}

var capitalizedTerm = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)

// QuizService generates multiple choice questions from document text. Long
// documents are sampled away from front matter; the regeneration offset
// cycles the sampled section so repeated requests see fresh material. When
// the remote call or its JSON cannot be used, a local cloze generator
// keeps the feature alive.
type QuizService struct {
	ai       AIService
	maxChars int
}

func NewQuizService(ai AIService, cfg *config.Config) *QuizService {
	return &QuizService{
		ai:       ai,
		maxChars: cfg.MaxQuizChars,
	}
}

// Generate returns at most count validated questions. A short result is
// not an error; callers compare against the requested count.
func (s *QuizService) Generate(ctx context.Context, text string, count, offset int) []types.MCQ {
	if count <= 0 {
		count = 5
	}

	sample := text
	if len(text) > s.maxChars {
		sample = s.sampleText(text, s.maxChars, offset)
	}

	response, err := s.ai.Complete(ctx, quizPrompt(sample, count))
	if err != nil {
		log.Printf("quiz request failed, using fallback generator: %v", err)
		return s.fallbackMCQs(sample, count)
	}

	questions, err := parseMCQs(response)
	if err != nil {
		log.Printf("quiz response unusable, using fallback generator: %v", err)
		return s.fallbackMCQs(sample, count)
	}

	if len(questions) > count {
		questions = questions[:count]
	}
	return questions
}

// parseMCQs extracts the JSON array between the first '[' and the last ']'
// and drops every element that violates the four-option contract.
func parseMCQs(response string) ([]types.MCQ, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON array found", types.ErrResponseParse)
	}

	var raw []types.MCQ
	if err := json.Unmarshal([]byte(response[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrResponseParse, err)
	}

	valid := make([]types.MCQ, 0, len(raw))
	for _, q := range raw {
		if q.Valid() {
			valid = append(valid, q)
		}
	}
	return valid, nil
}

// sampleText picks paragraphs from one quartile of the filtered document,
// cycling quartiles on the regeneration offset. Short paragraphs and front
// matter are discarded first.
func (s *QuizService) sampleText(text string, maxChars, offset int) string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if len(p) < minSampleParagraph || isFrontMatter(p) {
			continue
		}
		paragraphs = append(paragraphs, p)
	}

	if len(paragraphs) < quizSections {
		// Too little structure to sample from; take a window starting a
		// quarter of the way in, past typical front matter.
		start := runeBoundary(text, len(text)/4)
		end := runeBoundary(text, start+maxChars)
		return text[start:end]
	}

	section := ((offset % quizSections) + quizSections) % quizSections
	sample := s.collectSection(paragraphs, section, maxChars)

	// A thin quartile borrows from the adjacent one.
	if len(sample) < maxChars/2 {
		next := s.collectSection(paragraphs, (section+1)%quizSections, maxChars-len(sample))
		if next != "" {
			sample = sample + "\n\n" + next
		}
	}

	if len(sample) > maxChars {
		sample = sample[:runeBoundary(sample, maxChars)] + "..."
	}
	return sample
}

func (s *QuizService) collectSection(paragraphs []string, section, budget int) string {
	size := len(paragraphs) / quizSections
	start := section * size
	end := start + size
	if section == quizSections-1 {
		end = len(paragraphs)
	}

	var picked []string
	used := 0
	for _, p := range paragraphs[start:end] {
		if used+len(p) > budget && used > 0 {
			break
		}
		picked = append(picked, p)
		used += len(p) + 2
	}
	return strings.Join(picked, "\n\n")
}

func isFrontMatter(paragraph string) bool {
	lower := strings.ToLower(paragraph)
	for _, keyword := range frontMatterKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// fallbackMCQs synthesizes cloze questions offline: capitalized terms are
// the answer pool, long sentences the stems; one occurrence of the chosen
// term is blanked out and three random distractors complete the options.
func (s *QuizService) fallbackMCQs(text string, count int) []types.MCQ {
	var sentences []string
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > 20 {
			sentences = append(sentences, sentence)
		}
	}

	terms := uniqueTerms(text)
	if len(terms) < 4 {
		return nil
	}

	var questions []types.MCQ
	for _, sentence := range sentences {
		if len(questions) >= count {
			break
		}

		inSentence := capitalizedTerm.FindAllString(sentence, -1)
		if len(inSentence) == 0 {
			continue
		}
		answer := inSentence[rand.Intn(len(inSentence))]

		var distractors []string
		for _, i := range rand.Perm(len(terms)) {
			if terms[i] == answer {
				continue
			}
			distractors = append(distractors, terms[i])
			if len(distractors) == 3 {
				break
			}
		}
		if len(distractors) < 3 {
			continue
		}

		options := append(distractors, answer)
		rand.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, types.MCQ{
			Question: "Fill in the blank: " + strings.Replace(sentence, answer, "_____", 1),
			Options:  options,
			Answer:   answer,
		})
	}
	return questions
}

func uniqueTerms(text string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, term := range capitalizedTerm.FindAllString(text, -1) {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}

func quizPrompt(text string, count int) string {
	return fmt.Sprintf(`Generate %d multiple choice questions based on the following text.

CRITICAL REQUIREMENTS:
1. Focus EXCLUSIVELY on MAIN CONTENT, KEY CONCEPTS, and IMPORTANT TOPICS from the actual educational material
2. STRICTLY AVOID questions about author, preface, acknowledgments, publication details, or front matter
3. Create questions that test understanding of the actual subject matter
4. Distribute questions across different sections of the content
5. Include questions about definitions, concepts, processes, and key facts
6. Cover different difficulty levels, from basic concepts to advanced topics

Question Types to Include:
- Definition questions (What is X?)
- Concept understanding (How does X work?)
- Application questions (Which of the following is an example of X?)
- Comparison questions (What is the difference between X and Y?)
- Process questions (What are the steps in X?)

For each question, provide a clear question, four answer options, and the correct answer.

Format your response as a JSON array with this structure:
[
    {
        "question": "Question text here?",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "answer": "Correct option text"
    }
]

Text to base questions on:
%s`, count, text)
}
